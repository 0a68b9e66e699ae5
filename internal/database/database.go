package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"healthcube/internal/models"
	"healthcube/internal/utility"
)

// ErrNotFound is returned by Delete when no record carries the id.
var ErrNotFound = errors.New("body record not found")

// Service represents the body-measurement record store.
type Service interface {
	// Health returns a map of health status information.
	// The keys and values in the map are service-specific.
	Health() map[string]string

	// Close releases the store. The JSON file is never held open, so this
	// only logs.
	Close()

	Append(ctx context.Context, in models.BodyRecordInput) (models.BodyRecord, error)
	List(ctx context.Context) ([]models.BodyRecord, error)
	Delete(ctx context.Context, id int) error
}

type service struct {
	path string
	now  func() time.Time

	// mu serialises every read-modify-write cycle on the file.
	mu sync.Mutex

	// lastID is the highest id this store has seen, in the file or issued.
	// It survives deletes, so a deleted id is never handed out again.
	lastID int
}

type Option func(*service)

// WithClock overrides the time source used to stamp new records.
func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

// NewService returns a store backed by the JSON array at path. The file is
// created on the first write.
func NewService(path string, opts ...Option) Service {
	s := &service{path: path, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) Append(ctx context.Context, in models.BodyRecordInput) (models.BodyRecord, error) {
	if err := ctx.Err(); err != nil {
		return models.BodyRecord{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		return models.BodyRecord{}, err
	}

	nextID := s.lastID + 1
	s.lastID = nextID

	now := s.now()
	rec := models.BodyRecord{
		ID:      nextID,
		Date:    now.Format(time.DateOnly),
		Time:    now.Format("15:04"),
		Weight:  in.Weight,
		Height:  in.Height,
		Chest:   in.Chest,
		Waist:   in.Waist,
		Hip:     in.Hip,
		BodyFat: in.BodyFat,
		Gender:  in.Gender,
		Age:     in.Age,
		BMI:     BMI(in.Weight, in.Height),
		WHR:     WHR(in.Waist, in.Hip),
	}

	if err := s.save(append(records, rec)); err != nil {
		return models.BodyRecord{}, err
	}

	log.Debug().Int("id", rec.ID).Str("file", s.path).Msg("body record appended")
	return rec, nil
}

// List returns every stored record in insertion order. A missing file is an
// empty store.
func (s *service) List(ctx context.Context) ([]models.BodyRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load()
}

func (s *service) Delete(ctx context.Context, id int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		return err
	}

	kept := make([]models.BodyRecord, 0, len(records))
	for _, r := range records {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	if len(kept) == len(records) {
		return ErrNotFound
	}

	if err := s.save(kept); err != nil {
		return err
	}

	log.Debug().Int("id", id).Str("file", s.path).Msg("body record deleted")
	return nil
}

// Health reports whether the data file can be read and how many records it holds.
func (s *service) Health() map[string]string {
	stats := make(map[string]string)
	stats["file"] = s.path

	records, err := s.List(context.Background())
	if err != nil {
		stats["status"] = "down"
		stats["error"] = fmt.Sprintf("store unreadable: %v", err)
		log.Error().Err(err).Str("file", s.path).Msg("body record store down")
		return stats
	}

	stats["status"] = "up"
	stats["records"] = strconv.Itoa(len(records))

	if info, err := os.Stat(s.path); err == nil {
		stats["size_bytes"] = strconv.FormatInt(info.Size(), 10)
		stats["modified"] = info.ModTime().Format(time.RFC3339)
	} else {
		stats["message"] = "No records have been written yet."
	}

	return stats
}

func (s *service) Close() {
	log.Info().Str("file", s.path).Msg("Closed body record store")
}

/* =================================================================================
								FILE I/O
=================================================================================*/

func (s *service) load() ([]models.BodyRecord, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []models.BodyRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read body records: %w", err)
	}

	records := []models.BodyRecord{}
	if len(data) == 0 {
		return records, nil
	}
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode body records %s: %w", s.path, err)
	}
	if records == nil {
		records = []models.BodyRecord{}
	}
	for _, r := range records {
		s.lastID = max(s.lastID, r.ID)
	}
	return records, nil
}

// save replaces the file atomically: the array is written to a sibling temp
// file which is then renamed over the original.
func (s *service) save(records []models.BodyRecord) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode body records: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op once renamed

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replace %s: %w", s.path, err)
	}
	return nil
}

/* =================================================================================
								DERIVED METRICS
=================================================================================*/

// BMI is weight (kg) over height (m) squared, rounded to one decimal.
func BMI(weightKg, heightCm float64) float64 {
	m := heightCm / 100
	return utility.RoundTo(weightKg/(m*m), 1)
}

// WHR is waist over hip rounded to two decimals, or nil when either is
// missing or zero.
func WHR(waist, hip *float64) *float64 {
	if waist == nil || hip == nil || *waist == 0 || *hip == 0 {
		return nil
	}
	v := utility.RoundTo(*waist / *hip, 2)
	return &v
}
