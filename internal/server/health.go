package server

import (
	"context"
	"fmt"
	"net/http"
	"runtime"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"
	"golang.org/x/sync/errgroup"
)

const gb = 1024 * 1024 * 1024

// healthHandler reports store status alongside host metrics. The probes run
// concurrently; a failed host probe is reported in place rather than failing
// the whole response.
func (s *Server) healthHandler(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	var mu sync.Mutex
	res := map[string]any{
		"status": "online",
		"runtime": map[string]any{
			"uptime":     time.Since(s.startTime).Round(time.Second).String(),
			"start_time": s.startTime.Format(time.RFC3339),
			"go_version": runtime.Version(),
			"goroutines": runtime.NumGoroutine(),
		},
	}
	set := func(key string, v any) {
		mu.Lock()
		res[key] = v
		mu.Unlock()
	}

	g, grpCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		stats := s.db.Health()
		set("store", stats)
		if stats["status"] != "up" {
			set("status", "degraded")
		}
		return nil
	})
	g.Go(func() error {
		v, err := mem.VirtualMemoryWithContext(grpCtx)
		if err != nil {
			set("memory", map[string]string{"error": err.Error()})
			return nil
		}
		set("memory", map[string]any{
			"total_gb":     fmt.Sprintf("%.2f GB", float64(v.Total)/gb),
			"used_gb":      fmt.Sprintf("%.2f GB", float64(v.Used)/gb),
			"used_percent": fmt.Sprintf("%.2f%%", v.UsedPercent),
		})
		return nil
	})
	g.Go(func() error {
		d, err := disk.UsageWithContext(grpCtx, s.dataDir)
		if err != nil {
			set("disk", map[string]string{"error": err.Error()})
			return nil
		}
		set("disk", map[string]any{
			"path":         d.Path,
			"total_gb":     fmt.Sprintf("%.2f GB", float64(d.Total)/gb),
			"free_gb":      fmt.Sprintf("%.2f GB", float64(d.Free)/gb),
			"used_percent": fmt.Sprintf("%.2f%%", d.UsedPercent),
		})
		return nil
	})
	g.Go(func() error {
		pct, err := cpu.PercentWithContext(grpCtx, 200*time.Millisecond, false)
		if err != nil || len(pct) == 0 {
			set("cpu", map[string]string{"error": fmt.Sprint("cpu usage unavailable: ", err)})
			return nil
		}
		set("cpu", map[string]any{
			"usage_percent": fmt.Sprintf("%.2f%%", pct[0]),
			"cores":         runtime.NumCPU(),
		})
		return nil
	})

	_ = g.Wait()

	code := http.StatusOK
	if res["status"] != "online" {
		code = http.StatusServiceUnavailable
	}
	return c.JSON(code, res)
}
