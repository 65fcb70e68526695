package roadmap

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/jonathan/techtracker/internal/types"
)

// ExportCategory is written as the roadmap category of every export
const ExportCategory = "mixed"

// DefaultName names an export when the caller gives a blank name
const DefaultName = "My Roadmap"

const dateLayout = "2006-01-02"

var whitespaceRun = regexp.MustCompile(`\s+`)

// Exporter converts technology records into a portable roadmap document
type Exporter struct {
	Now func() time.Time
}

// NewExporter returns an Exporter using the wall clock
func NewExporter() *Exporter {
	return &Exporter{Now: time.Now}
}

// Export builds the roadmap document for records, in input order.
// Entries keep their external identity: originalId when present, else id.
func (e *Exporter) Export(records []types.TechnologyRecord, name string) *types.ExportDocument {
	doc := &types.ExportDocument{
		Version:      types.RoadmapVersion,
		Name:         name,
		Description:  fmt.Sprintf("Roadmap exported on %s", e.Now().Format(dateLayout)),
		Category:     ExportCategory,
		Technologies: make([]types.ExportEntry, 0, len(records)),
	}

	for _, rec := range records {
		id := rec.OriginalID
		if id == "" {
			id = rec.ID
		}
		doc.Technologies = append(doc.Technologies, types.ExportEntry{
			ID:            id,
			Title:         rec.Title,
			Description:   rec.Description,
			Category:      rec.Category,
			Resources:     nonNil(rec.Resources),
			Status:        rec.Status,
			Notes:         rec.Notes,
			UserResources: nonNil(rec.UserResources),
		})
	}

	return doc
}

// Export runs the default Exporter
func Export(records []types.TechnologyRecord, name string) *types.ExportDocument {
	return NewExporter().Export(records, name)
}

// Marshal renders an export document as indented JSON text
func Marshal(doc *types.ExportDocument) ([]byte, error) {
	jsonBytes, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal roadmap: %w", err)
	}
	return jsonBytes, nil
}

// ExportFileName derives a download file name from the roadmap name and date,
// e.g. "My Roadmap" -> "My_Roadmap_2026-10-15.json".
func ExportFileName(name string, now time.Time) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultName
	}
	base := whitespaceRun.ReplaceAllString(name, "_")
	return fmt.Sprintf("%s_%s.json", base, now.Format(dateLayout))
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return append([]string{}, s...)
}
