// Package schemas embeds the JSON Schemas describing the roadmap file formats.
package schemas

import "embed"

const (
	// Roadmap is the import format
	Roadmap = "roadmap.schema.json"
	// RoadmapExport is the format written by export
	RoadmapExport = "roadmap_export.schema.json"
)

// Files holds every schema in this directory
//
//go:embed *.schema.json
var Files embed.FS

// Names lists the embedded schema file names
var Names = []string{Roadmap, RoadmapExport}
