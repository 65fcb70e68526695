// Package tracker holds the technology collection for one session, persisting
// it after every change and orchestrating roadmap import and export.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/jonathan/techtracker/internal/collection"
	"github.com/jonathan/techtracker/internal/ids"
	"github.com/jonathan/techtracker/internal/roadmap"
	"github.com/jonathan/techtracker/internal/store"
	"github.com/jonathan/techtracker/internal/types"
	"go.uber.org/zap"
)

// ErrNothingToExport is returned by Export when the collection is empty
var ErrNothingToExport = errors.New("no technologies to export")

// ImportMode chooses how imported records combine with the collection
type ImportMode string

const (
	// ImportMerge appends imported records to the collection
	ImportMerge ImportMode = "merge"
	// ImportReplace discards the collection before adding imported records
	ImportReplace ImportMode = "replace"
)

// Options configures a Session
type Options struct {
	Seed        bool // seed starter technologies when the store has none
	RoadmapName string
	Now         func() time.Time
	NewID       ids.Generator
}

// Session owns the technology collection for one run
type Session struct {
	mu          sync.Mutex
	store       store.Store
	logger      *zap.Logger
	records     []types.TechnologyRecord
	roadmapName string
	now         func() time.Time
	newID       ids.Generator
}

// Open reads the collection from s once. A missing key yields the starter
// technologies when opts.Seed is set and an empty collection otherwise.
func Open(ctx context.Context, s store.Store, logger *zap.Logger, opts Options) (*Session, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewID == nil {
		opts.NewID = ids.New
	}

	var records []types.TechnologyRecord
	found, err := s.Load(ctx, store.KeyTechnologies, &records)
	if err != nil {
		return nil, fmt.Errorf("failed to load technologies: %w", err)
	}
	if !found && opts.Seed {
		records = starterTechnologies(opts.Now())
		logger.Debug("Seeded starter technologies", zap.Int("count", len(records)))
	}

	records, err = sanitize(records, logger)
	if err != nil {
		return nil, err
	}

	logger.Debug("Loaded technologies", zap.Int("count", len(records)), zap.Bool("found", found))

	return &Session{
		store:       s,
		logger:      logger,
		records:     records,
		roadmapName: opts.RoadmapName,
		now:         opts.Now,
		newID:       opts.NewID,
	}, nil
}

// sanitize normalizes stored records and rejects a collection that breaks
// the status or id invariants
func sanitize(records []types.TechnologyRecord, logger *zap.Logger) ([]types.TechnologyRecord, error) {
	out := make([]types.TechnologyRecord, 0, len(records))
	seen := make(map[string]struct{}, len(records))
	for _, rec := range records {
		rec.Normalize()
		if !rec.Status.Valid() {
			return nil, fmt.Errorf("stored technology %s has invalid status %q", rec.ID, rec.Status)
		}
		if _, dup := seen[rec.ID]; dup {
			logger.Warn("Dropping technology with duplicate id", zap.String("id", rec.ID))
			continue
		}
		seen[rec.ID] = struct{}{}
		out = append(out, rec)
	}
	return out, nil
}

// Technologies returns a copy of the collection
func (s *Session) Technologies() []types.TechnologyRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return collection.Copy(s.records)
}

// List returns the records matching f
func (s *Session) List(f collection.Filter) []types.TechnologyRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return collection.Apply(s.records, f)
}

// Categories returns the categories in use
func (s *Session) Categories() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return collection.Categories(s.records)
}

// Get returns one record
func (s *Session) Get(id string) (types.TechnologyRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := collection.Find(s.records, id)
	if !ok {
		return types.TechnologyRecord{}, fmt.Errorf("%w: %s", collection.ErrNotFound, id)
	}
	return rec.Clone(), nil
}

// Stats summarises the collection
func (s *Session) Stats() collection.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return collection.Summarize(s.records)
}

// Add creates a manual record
func (s *Session) Add(ctx context.Context, input types.NewTechnologyInput) (types.TechnologyRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, rec, err := collection.Add(s.records, input, s.now(), s.newID)
	if err != nil {
		return types.TechnologyRecord{}, err
	}
	s.commit(ctx, next, "add", zap.String("id", rec.ID))
	return rec, nil
}

// SetStatus moves a record to another status
func (s *Session) SetStatus(ctx context.Context, id string, status types.Status) error {
	return s.apply(ctx, "set-status", func(records []types.TechnologyRecord) ([]types.TechnologyRecord, error) {
		return collection.UpdateStatus(records, id, status)
	}, zap.String("id", id), zap.String("status", string(status)))
}

// SetNotes replaces a record's notes
func (s *Session) SetNotes(ctx context.Context, id, notes string) error {
	return s.apply(ctx, "set-notes", func(records []types.TechnologyRecord) ([]types.TechnologyRecord, error) {
		return collection.UpdateNotes(records, id, notes)
	}, zap.String("id", id))
}

// AddResource attaches a user resource link to a record
func (s *Session) AddResource(ctx context.Context, id, link string) error {
	return s.apply(ctx, "add-resource", func(records []types.TechnologyRecord) ([]types.TechnologyRecord, error) {
		return collection.AddUserResource(records, id, link)
	}, zap.String("id", id), zap.String("url", link))
}

// Delete removes a record
func (s *Session) Delete(ctx context.Context, id string) error {
	return s.apply(ctx, "delete", func(records []types.TechnologyRecord) ([]types.TechnologyRecord, error) {
		return collection.Delete(records, id)
	}, zap.String("id", id))
}

// ClearAll removes every record
func (s *Session) ClearAll(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.commit(ctx, collection.ReplaceAll(s.records, nil, s.newID), "clear")
}

// Import parses roadmap JSON and adds its technologies. On any failure the
// collection is left unchanged and nothing is written. It returns the
// number of imported records.
func (s *Session) Import(ctx context.Context, data []byte, mode ImportMode) (int, error) {
	doc, err := roadmap.Parse(data)
	if err != nil {
		return 0, err
	}
	return s.importDocument(ctx, doc, mode)
}

// ImportSample imports one of the built-in roadmaps by name
func (s *Session) ImportSample(ctx context.Context, name string, mode ImportMode) (int, error) {
	doc, err := roadmap.FindSample(name)
	if err != nil {
		return 0, err
	}
	return s.importDocument(ctx, doc, mode)
}

func (s *Session) importDocument(ctx context.Context, doc *types.RoadmapDocument, mode ImportMode) (int, error) {
	transformer := &roadmap.Transformer{Now: s.now, NewID: s.newID}
	imported, err := transformer.Transform(doc)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var next []types.TechnologyRecord
	switch mode {
	case ImportReplace:
		next = collection.ReplaceAll(s.records, imported, s.newID)
	case ImportMerge, "":
		next = collection.Merge(s.records, imported, s.newID)
	default:
		return 0, fmt.Errorf("unknown import mode %q", mode)
	}

	s.commit(ctx, next, "import",
		zap.String("roadmap", doc.Name),
		zap.String("mode", string(mode)),
		zap.Int("count", len(imported)))
	return len(imported), nil
}

// Export renders the collection as roadmap JSON and returns it with a
// suggested file name. A blank name uses the configured default, and
// roadmap.DefaultName when none is configured.
func (s *Session) Export(name string) ([]byte, string, error) {
	s.mu.Lock()
	records := collection.Copy(s.records)
	s.mu.Unlock()

	if len(records) == 0 {
		return nil, "", ErrNothingToExport
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = strings.TrimSpace(s.roadmapName)
	}
	if name == "" {
		name = roadmap.DefaultName
	}

	now := s.now()
	exporter := &roadmap.Exporter{Now: func() time.Time { return now }}
	data, err := roadmap.Marshal(exporter.Export(records, name))
	if err != nil {
		return nil, "", err
	}
	return data, roadmap.ExportFileName(name, now), nil
}

// DarkMode reads the display preference flag
func (s *Session) DarkMode(ctx context.Context) (bool, error) {
	return store.LoadOrDefault(ctx, s.store, store.KeyDarkMode, false)
}

// SetDarkMode writes the display preference flag
func (s *Session) SetDarkMode(ctx context.Context, dark bool) error {
	if err := s.store.Save(ctx, store.KeyDarkMode, dark); err != nil {
		return fmt.Errorf("failed to save display preference: %w", err)
	}
	return nil
}

func (s *Session) apply(ctx context.Context, op string, fn func([]types.TechnologyRecord) ([]types.TechnologyRecord, error), fields ...zap.Field) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := fn(s.records)
	if err != nil {
		return err
	}
	s.commit(ctx, next, op, fields...)
	return nil
}

// commit swaps in the new collection and persists it. Callers hold s.mu, so
// writes happen in mutation order. A failed write is logged and otherwise
// ignored; the in-memory collection stays authoritative for the session.
func (s *Session) commit(ctx context.Context, next []types.TechnologyRecord, op string, fields ...zap.Field) {
	s.records = next
	fields = append(fields, zap.String("op", op), zap.Int("total", len(next)))

	if err := s.store.Save(ctx, store.KeyTechnologies, next); err != nil {
		s.logger.Warn("Failed to persist technologies", append(fields, zap.Error(err))...)
		return
	}
	s.logger.Debug("Persisted technologies", fields...)
}
