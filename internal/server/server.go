/*
Package server implements the application's network transport layer.
It initializes the HTTP server, configures timeouts, and wires the planner
and body-record store into the router.
*/
package server

import (
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"healthcube/internal/config"
	"healthcube/internal/database"
	"healthcube/internal/user"
)

// Server defines the configuration and dependencies for the HTTP service.
type Server struct {
	// port specifies the TCP port the server will listen on.
	port int

	// indexFile is the single-page frontend served at "/".
	indexFile string

	// dataDir is the directory holding the body-record file; /health reports its disk.
	dataDir string

	// db provides access to the body-record store.
	db database.Service

	handler   *user.Handler
	startTime time.Time
}

func newServer(cfg config.Config, db database.Service, planner user.Planner) *Server {
	return &Server{
		port:      cfg.Port,
		indexFile: cfg.IndexFile,
		dataDir:   filepath.Dir(cfg.BodyDataFile),
		db:        db,
		handler:   user.NewHandler(planner, db),
		startTime: time.Now(),
	}
}

// NewServer returns a configured *http.Server. The write timeout leaves room
// for a full model call on top of the usual response budget.
func NewServer(cfg config.Config, db database.Service, planner user.Planner) *http.Server {
	app := newServer(cfg, db, planner)

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", app.port),
		Handler:      app.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: cfg.LLM.Timeout + 30*time.Second,
	}
}
