package roadmap

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/jonathan/techtracker/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testExporter() *Exporter {
	return &Exporter{Now: func() time.Time { return fixedNow }}
}

func TestExport_DocumentHeader(t *testing.T) {
	doc := testExporter().Export([]types.TechnologyRecord{{ID: "tech_1", Title: "Go", Description: "Language"}}, "My Roadmap")

	assert.Equal(t, "1.0.0", doc.Version)
	assert.Equal(t, "My Roadmap", doc.Name)
	assert.Equal(t, "Roadmap exported on 2026-10-15", doc.Description)
	assert.Equal(t, "mixed", doc.Category)
}

func TestExport_Entries(t *testing.T) {
	records := []types.TechnologyRecord{
		{
			ID:            "tech_1700000000000_abc",
			Title:         "React",
			Description:   "UI library",
			Category:      "frontend",
			Status:        types.StatusCompleted,
			Notes:         "hooks done",
			Resources:     []string{"https://react.dev/learn"},
			UserResources: []string{"https://example.com/hooks"},
			IsImported:    true,
			OriginalID:    "fe_3",
		},
		{
			ID:          "tech_2",
			Title:       "Go",
			Description: "Language",
			Category:    "backend",
			Status:      types.StatusInProgress,
		},
	}

	doc := testExporter().Export(records, "Mine")

	want := []types.ExportEntry{
		{
			ID:            "fe_3",
			Title:         "React",
			Description:   "UI library",
			Category:      "frontend",
			Resources:     []string{"https://react.dev/learn"},
			Status:        types.StatusCompleted,
			Notes:         "hooks done",
			UserResources: []string{"https://example.com/hooks"},
		},
		{
			ID:            "tech_2",
			Title:         "Go",
			Description:   "Language",
			Category:      "backend",
			Resources:     []string{},
			Status:        types.StatusInProgress,
			Notes:         "",
			UserResources: []string{},
		},
	}
	if diff := cmp.Diff(want, doc.Technologies); diff != "" {
		t.Errorf("Export() entries mismatch (-want +got):\n%s", diff)
	}
}

func TestExport_EmitsAllFields(t *testing.T) {
	doc := testExporter().Export([]types.TechnologyRecord{{ID: "tech_1", Title: "Go", Description: "Language"}}, "Mine")

	jsonBytes, err := Marshal(doc)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(jsonBytes, &raw))
	for _, key := range []string{"version", "name", "description", "category", "technologies"} {
		assert.Contains(t, raw, key)
	}

	entry := raw["technologies"].([]any)[0].(map[string]any)
	for _, key := range []string{"id", "title", "description", "category", "resources", "status", "notes", "userResources"} {
		assert.Contains(t, entry, key)
	}
	assert.Equal(t, []any{}, entry["resources"])
	assert.Equal(t, []any{}, entry["userResources"])
	assert.True(t, strings.HasPrefix(string(jsonBytes), "{\n  \"version\""))
}

func TestExport_DoesNotMutateRecords(t *testing.T) {
	records := []types.TechnologyRecord{{ID: "tech_1", Title: "Go", Description: "Language", Resources: []string{"https://go.dev"}}}

	doc := testExporter().Export(records, "Mine")
	doc.Technologies[0].Resources[0] = "changed"

	assert.Equal(t, "https://go.dev", records[0].Resources[0])
	assert.Nil(t, records[0].UserResources)
}

func TestExport_RoundTrip(t *testing.T) {
	source := Samples()[1]
	imported, err := testTransformer().Transform(&source)
	require.NoError(t, err)

	// Track some progress before exporting.
	imported[0].Status = types.StatusCompleted
	imported[0].Notes = "done"
	imported[1].UserResources = []string{"https://example.com/express"}

	jsonBytes, err := Marshal(testExporter().Export(imported, "Backend"))
	require.NoError(t, err)

	doc, err := Parse(jsonBytes)
	require.NoError(t, err)
	reimported, err := testTransformer().Transform(doc)
	require.NoError(t, err)
	require.Len(t, reimported, len(imported))

	type portable struct {
		ID, Title, Description, Category string
		Resources                        []string
	}
	project := func(recs []types.TechnologyRecord) []portable {
		out := make([]portable, 0, len(recs))
		for _, r := range recs {
			out = append(out, portable{r.OriginalID, r.Title, r.Description, r.Category, r.Resources})
		}
		return out
	}
	if diff := cmp.Diff(project(imported), project(reimported)); diff != "" {
		t.Errorf("round trip mismatch (-before +after):\n%s", diff)
	}

	// The export itself carries the tracked values.
	var exported types.ExportDocument
	require.NoError(t, json.Unmarshal(jsonBytes, &exported))
	assert.Equal(t, types.StatusCompleted, exported.Technologies[0].Status)
	assert.Equal(t, "done", exported.Technologies[0].Notes)
	assert.Equal(t, []string{"https://example.com/express"}, exported.Technologies[1].UserResources)
}

func TestExport_RoundTripKeepsGeneratedIDs(t *testing.T) {
	doc := &types.RoadmapDocument{Name: "x", Description: "y", Technologies: []types.RoadmapEntry{{Title: "A", Description: "B"}}}
	first, err := testTransformer().Transform(doc)
	require.NoError(t, err)

	jsonBytes, err := Marshal(testExporter().Export(first, "x"))
	require.NoError(t, err)
	second, err := Parse(jsonBytes)
	require.NoError(t, err)

	assert.Equal(t, first[0].ID, second.Technologies[0].ID)
}

func TestExportFileName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"My Roadmap", "My_Roadmap_2026-10-15.json"},
		{"  spaced   out\tname ", "spaced_out_name_2026-10-15.json"},
		{"", "My_Roadmap_2026-10-15.json"},
		{" \t ", "My_Roadmap_2026-10-15.json"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, ExportFileName(tt.name, fixedNow))
		})
	}
}
