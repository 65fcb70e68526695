package types

// RoadmapVersion is the wire format version written by every export
const RoadmapVersion = "1.0.0"

// RoadmapDocument is a validated roadmap as read from an import file or a sample
type RoadmapDocument struct {
	Version      string         `json:"version,omitempty"`
	Name         string         `json:"name"`
	Description  string         `json:"description"`
	Category     string         `json:"category,omitempty"`
	Technologies []RoadmapEntry `json:"technologies"`
}

// RoadmapEntry is one technology inside an imported roadmap
type RoadmapEntry struct {
	ID          string   `json:"id,omitempty"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category,omitempty"`
	Resources   []string `json:"resources,omitempty"`
}

// ExportDocument is the portable roadmap written on export
type ExportDocument struct {
	Version      string        `json:"version"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	Category     string        `json:"category"`
	Technologies []ExportEntry `json:"technologies"`
}

// ExportEntry is one exported technology, carrying the user's tracking fields
type ExportEntry struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Category      string   `json:"category"`
	Resources     []string `json:"resources"`
	Status        Status   `json:"status"`
	Notes         string   `json:"notes"`
	UserResources []string `json:"userResources"`
}
