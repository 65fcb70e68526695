package roadmap

import (
	"time"

	"github.com/jonathan/techtracker/internal/ids"
	"github.com/jonathan/techtracker/internal/types"
)

// DefaultCategory is used when neither the entry nor the roadmap names a category
const DefaultCategory = types.DefaultCategory

// Transformer converts validated roadmaps into technology records
type Transformer struct {
	Now   func() time.Time
	NewID ids.Generator
}

// NewTransformer returns a Transformer using the wall clock and ids.New
func NewTransformer() *Transformer {
	return &Transformer{Now: time.Now, NewID: ids.New}
}

// Transform validates doc and returns one record per entry, in source order.
// Validation failures are returned unchanged and no records are produced.
//
// Field rules, applied per entry:
//
//	id             entry id, else a generated id (also for repeats of an earlier entry id)
//	category       entry category, else roadmap category, else "other"
//	resources      entry resources, else empty
//	status         always not-started
//	notes          always empty
//	userResources  always empty
//	createdAt      time of the import
//	isImported     true
//	originalId     entry id as given
func (t *Transformer) Transform(doc *types.RoadmapDocument) ([]types.TechnologyRecord, error) {
	if err := CheckDocument(doc); err != nil {
		return nil, err
	}

	createdAt := t.Now().UTC().Format(time.RFC3339Nano)

	// Source ids are reserved up front so a generated id can never shadow one.
	taken := make(map[string]struct{}, len(doc.Technologies))
	for _, entry := range doc.Technologies {
		if entry.ID != "" {
			taken[entry.ID] = struct{}{}
		}
	}
	newID := ids.Unique(t.NewID, taken)

	// A source id repeated within the roadmap is kept by its first entry only.
	used := make(map[string]struct{}, len(doc.Technologies))
	records := make([]types.TechnologyRecord, 0, len(doc.Technologies))
	for _, entry := range doc.Technologies {
		id := entry.ID
		if _, dup := used[id]; dup {
			id = ""
		}
		id = firstNonEmpty(id, newID)
		used[id] = struct{}{}

		records = append(records, types.TechnologyRecord{
			ID:            id,
			Title:         entry.Title,
			Description:   entry.Description,
			Category:      firstNonEmpty(entry.Category, constant(doc.Category), constant(DefaultCategory)),
			Status:        types.StatusNotStarted,
			Notes:         "",
			Resources:     append([]string{}, entry.Resources...),
			UserResources: []string{},
			CreatedAt:     createdAt,
			IsImported:    true,
			OriginalID:    entry.ID,
		})
	}

	return records, nil
}

// Transform runs the default Transformer
func Transform(doc *types.RoadmapDocument) ([]types.TechnologyRecord, error) {
	return NewTransformer().Transform(doc)
}

// firstNonEmpty returns value if set, otherwise the first fallback producing a non-empty string
func firstNonEmpty(value string, fallbacks ...func() string) string {
	if value != "" {
		return value
	}
	for _, fb := range fallbacks {
		if v := fb(); v != "" {
			return v
		}
	}
	return ""
}

func constant(s string) func() string {
	return func() string { return s }
}
