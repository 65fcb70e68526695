package tracker

import (
	"time"

	"github.com/jonathan/techtracker/internal/types"
)

// starterTechnologies is the collection a brand new store starts with
func starterTechnologies(now time.Time) []types.TechnologyRecord {
	createdAt := now.UTC().Format(time.RFC3339Nano)
	starter := []types.TechnologyRecord{
		{
			ID:          "1",
			Title:       "React Components",
			Description: "Functional components, hooks and JSX",
			Category:    "frontend",
			Status:      types.StatusCompleted,
			Notes:       "Covered useState, useEffect, useContext",
		},
		{
			ID:          "2",
			Title:       "Material-UI",
			Description: "The Material Design component library",
			Category:    "ui-library",
			Status:      types.StatusInProgress,
			Notes:       "Worked through ThemeProvider and customization",
		},
		{
			ID:          "3",
			Title:       "Node.js",
			Description: "Server-side JavaScript platform",
			Category:    "backend",
			Status:      types.StatusNotStarted,
		},
		{
			ID:          "4",
			Title:       "MongoDB",
			Description: "NoSQL document database",
			Category:    "database",
			Status:      types.StatusNotStarted,
		},
	}
	for i := range starter {
		starter[i].CreatedAt = createdAt
		starter[i].Normalize()
	}
	return starter
}
