package collection

import (
	"strings"

	"github.com/jonathan/techtracker/internal/types"
)

// All disables a status or category constraint
const All = "all"

// Filter selects records. Empty fields and "all" place no constraint.
type Filter struct {
	Query    string // case-insensitive substring of title or description
	Status   string
	Category string
}

// Matches reports whether rec satisfies every predicate of f
func (f Filter) Matches(rec types.TechnologyRecord) bool {
	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		if !strings.Contains(strings.ToLower(rec.Title), q) &&
			!strings.Contains(strings.ToLower(rec.Description), q) {
			return false
		}
	}
	if f.Status != "" && f.Status != All && string(rec.Status) != f.Status {
		return false
	}
	if f.Category != "" && f.Category != All && rec.Category != f.Category {
		return false
	}
	return true
}

// Apply returns the matching records in their original order
func Apply(records []types.TechnologyRecord, f Filter) []types.TechnologyRecord {
	out := make([]types.TechnologyRecord, 0, len(records))
	for _, rec := range records {
		if f.Matches(rec) {
			out = append(out, rec.Clone())
		}
	}
	return out
}

// Categories returns the distinct categories in first-seen order
func Categories(records []types.TechnologyRecord) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, rec := range records {
		if _, ok := seen[rec.Category]; ok {
			continue
		}
		seen[rec.Category] = struct{}{}
		out = append(out, rec.Category)
	}
	return out
}
