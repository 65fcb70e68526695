package collection

import "github.com/jonathan/techtracker/internal/types"

// Stats summarises progress across a collection
type Stats struct {
	Total      int                  `json:"total"`
	ByStatus   map[types.Status]int `json:"byStatus"`
	ByCategory map[string]int       `json:"byCategory"`
	Imported   int                  `json:"imported"`
	Percent    int                  `json:"percentCompleted"` // completed share, rounded down
}

// Summarize counts records per status and category
func Summarize(records []types.TechnologyRecord) Stats {
	stats := Stats{
		Total:      len(records),
		ByStatus:   make(map[types.Status]int, len(types.Statuses)),
		ByCategory: make(map[string]int),
	}
	for _, s := range types.Statuses {
		stats.ByStatus[s] = 0
	}

	for _, rec := range records {
		stats.ByStatus[rec.Status]++
		stats.ByCategory[rec.Category]++
		if rec.IsImported {
			stats.Imported++
		}
	}

	if stats.Total > 0 {
		stats.Percent = stats.ByStatus[types.StatusCompleted] * 100 / stats.Total
	}
	return stats
}
