package roadmap

import (
	"errors"
	"fmt"

	"github.com/jonathan/techtracker/internal/types"
)

// ErrUnknownSample is returned by FindSample for names that match no built-in roadmap
var ErrUnknownSample = errors.New("unknown sample roadmap")

// Samples returns the built-in roadmaps offered for one-click import.
// A fresh copy is returned on every call.
func Samples() []types.RoadmapDocument {
	return []types.RoadmapDocument{
		{
			Name:        "Frontend Developer Roadmap 2024",
			Description: "A complete path for learning frontend development",
			Category:    "frontend",
			Technologies: []types.RoadmapEntry{
				{
					ID:          "fe_1",
					Title:       "HTML & CSS",
					Description: "Markup and styling fundamentals",
					Category:    "frontend",
					Resources:   []string{"https://developer.mozilla.org/en-US/docs/Learn/HTML", "https://developer.mozilla.org/en-US/docs/Learn/CSS"},
				},
				{
					ID:          "fe_2",
					Title:       "JavaScript",
					Description: "Programming fundamentals in JavaScript",
					Category:    "frontend",
					Resources:   []string{"https://javascript.info/"},
				},
				{
					ID:          "fe_3",
					Title:       "React",
					Description: "A library for building user interfaces",
					Category:    "frontend",
					Resources:   []string{"https://react.dev/learn"},
				},
			},
		},
		{
			Name:        "Backend Developer Roadmap",
			Description: "A path for learning server-side development",
			Category:    "backend",
			Technologies: []types.RoadmapEntry{
				{
					ID:          "be_1",
					Title:       "Node.js",
					Description: "JavaScript runtime on the server",
					Category:    "backend",
					Resources:   []string{"https://nodejs.org/en/docs/"},
				},
				{
					ID:          "be_2",
					Title:       "Express.js",
					Description: "Web application framework for Node.js",
					Category:    "backend",
					Resources:   []string{"https://expressjs.com/"},
				},
				{
					ID:          "be_3",
					Title:       "Databases (SQL)",
					Description: "Relational database fundamentals",
					Category:    "database",
					Resources:   []string{"https://www.postgresql.org/docs/"},
				},
			},
		},
	}
}

// FindSample looks up a built-in roadmap by exact name
func FindSample(name string) (*types.RoadmapDocument, error) {
	for _, sample := range Samples() {
		if sample.Name == name {
			return &sample, nil
		}
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownSample, name)
}
