// Package docstore owns the single on-disk JSON document. All mutations run
// as whole-document load-mutate-save cycles under one mutex, so interleaved
// operations can never lose a write.
package docstore

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"workforce/config"
	"workforce/internal/domain/entity"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ErrNoDocument indicates the document file does not exist yet.
var ErrNoDocument = errors.New("document file does not exist")

// Store is the document store. It holds no document in memory between
// cycles; every operation re-reads the file, applies one mutation and writes
// the file back.
type Store struct {
	path   string
	admin  entity.SuperAdmin
	domain string
	logger *slog.Logger

	// mu spans the whole load-mutate-save cycle, not individual reads or
	// writes.
	mu  sync.Mutex
	now func() time.Time
}

// Params holds dependencies for the Store, injected by Fx.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// New creates the document store from configuration.
func New(params Params) *Store {
	admin := entity.SuperAdmin{
		ChatID:   params.Config.Admin.SuperAdminID,
		Username: params.Config.Admin.Username,
		Role:     "superadmin",
	}

	return NewStore(params.Config.Document.Path, admin, params.Config.ShortDomain(), params.Logger)
}

// NewStore creates a document store over path.
func NewStore(path string, admin entity.SuperAdmin, domain string, logger *slog.Logger) *Store {
	return &Store{
		path:   path,
		admin:  admin,
		domain: domain,
		logger: logger,
		now:    time.Now,
	}
}

// Path returns the location of the document file.
func (s *Store) Path() string {
	return s.path
}

// Initialize seeds a fresh document if none exists, repairs missing sections
// of an existing one, bumps the startup counter and rolls the daily counters
// over if the stored day is stale. Called once at process start, after
// restore has had its chance to run.
func (s *Store) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.load()
	now := s.now()

	doc.Statistics.StartupCount++
	startedAt := now.UTC()
	doc.Statistics.LastStartup = &startedAt
	doc.Admin = s.admin
	doc.Statistics.RolloverDay(now)

	if err := s.save(doc); err != nil {
		return err
	}

	s.logger.Info("Document store initialized",
		slog.String("path", s.path),
		slog.Int("startupCount", doc.Statistics.StartupCount),
	)

	return nil
}

// Update runs one exclusive load-mutate-save cycle. The mutation sees the
// document after day rollover; a mutation error aborts the cycle without
// writing. A save failure is returned to the caller so a dropped write is
// never reported as success.
func (s *Store) Update(fn func(doc *entity.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := s.load()
	doc.Statistics.RolloverDay(s.now())

	if err := fn(doc); err != nil {
		return err
	}

	return s.save(doc)
}

// View runs fn against a freshly loaded document without writing it back.
func (s *Store) View(fn func(doc *entity.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return fn(s.load())
}

// Bytes returns the raw persisted document, as the backup synchronizer
// mirrors the file byte-for-byte. Returns ErrNoDocument if nothing has been
// saved yet.
func (s *Store) Bytes() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, ErrNoDocument
	}
	if err != nil {
		return nil, errors.Wrap(err, "read document file")
	}

	return data, nil
}

// ReplaceBytes overwrites the persisted document with data pulled from the
// remote mirror. The payload must parse as a document; a corrupt snapshot is
// rejected rather than clobbering the local file.
func (s *Store) ReplaceBytes(data []byte) error {
	var doc entity.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return errors.Wrap(err, "remote snapshot is not a valid document")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.writeFile(data)
}

// load parses the persisted document. Absent file: a freshly initialized
// document. Malformed file: log and serve an in-memory-only skeleton rather
// than failing the caller.
func (s *Store) load() *entity.Document {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return entity.NewDocument(s.admin, s.domain, s.now())
	}
	if err != nil {
		s.logger.Error("Failed to read document file, serving empty skeleton",
			slog.String("path", s.path),
			slog.Any("error", err),
		)

		return entity.NewDocument(s.admin, s.domain, s.now())
	}

	doc := &entity.Document{}
	if err := json.Unmarshal(data, doc); err != nil {
		s.logger.Error("Failed to parse document file, serving empty skeleton",
			slog.String("path", s.path),
			slog.Any("error", err),
		)

		return entity.NewDocument(s.admin, s.domain, s.now())
	}

	doc.Normalize()

	return doc
}

// save recomputes the derived statistics from the entity maps and replaces
// the persisted document. After any successful save totalWorkers,
// totalOrders and pendingWorkers are an exact function of the maps.
func (s *Store) save(doc *entity.Document) error {
	doc.RecomputeStatistics(s.now())
	doc.Statistics.Domain = s.domain

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshal document")
	}

	return s.writeFile(data)
}

// writeFile replaces the document file atomically: write a sibling temp file
// and rename it over the target, so a failed save leaves the previous
// version intact.
func (s *Store) writeFile(data []byte) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "create document directory")
	}

	tmp, err := os.CreateTemp(dir, ".database-*.json")
	if err != nil {
		return errors.Wrap(err, "create temp document file")
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())

		return errors.Wrap(err, "write temp document file")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())

		return errors.Wrap(err, "close temp document file")
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())

		return errors.Wrap(err, "replace document file")
	}

	return nil
}
