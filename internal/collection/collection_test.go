package collection

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jonathan/techtracker/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 10, 15, 9, 30, 0, 0, time.UTC)

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("tech_%d", n)
	}
}

func sampleRecords() []types.TechnologyRecord {
	return []types.TechnologyRecord{
		{ID: "1", Title: "React Components", Description: "Functional components and hooks", Category: "frontend", Status: types.StatusCompleted, Resources: []string{}, UserResources: []string{}},
		{ID: "2", Title: "Express.js", Description: "Node web framework", Category: "backend", Status: types.StatusInProgress, Resources: []string{"https://expressjs.com/"}, UserResources: []string{}},
		{ID: "3", Title: "MongoDB", Description: "NoSQL database", Category: "database", Status: types.StatusNotStarted, Resources: []string{}, UserResources: []string{}},
		{ID: "4", Title: "React Router", Description: "Client-side routing", Category: "frontend", Status: types.StatusInProgress, Resources: []string{}, UserResources: []string{}},
	}
}

func TestAdd_DefaultsAndTrimming(t *testing.T) {
	records := sampleRecords()

	out, rec, err := Add(records, types.NewTechnologyInput{Title: "  Go ", Description: "Language", Category: "backend"}, fixedNow, sequentialIDs())
	require.NoError(t, err)

	require.Len(t, out, 5)
	assert.Len(t, records, 4, "input slice must not change")
	assert.Equal(t, rec, out[4])
	assert.Equal(t, "tech_1", rec.ID)
	assert.Equal(t, "Go", rec.Title)
	assert.Equal(t, types.StatusNotStarted, rec.Status)
	assert.Equal(t, []string{}, rec.Resources)
	assert.Equal(t, []string{}, rec.UserResources)
	assert.Equal(t, "2026-10-15T09:30:00Z", rec.CreatedAt)
	assert.False(t, rec.IsImported)
	assert.Empty(t, rec.OriginalID)
}

func TestAdd_DefaultCategory(t *testing.T) {
	_, rec, err := Add(nil, types.NewTechnologyInput{Title: "Go", Description: "Language", Category: "  "}, fixedNow, sequentialIDs())
	require.NoError(t, err)
	assert.Equal(t, types.DefaultCategory, rec.Category)
}

func TestAdd_RegeneratesCollidingID(t *testing.T) {
	records := []types.TechnologyRecord{{ID: "tech_1", Title: "A", Description: "B"}}

	_, rec, err := Add(records, types.NewTechnologyInput{Title: "Go", Description: "Language"}, fixedNow, sequentialIDs())
	require.NoError(t, err)
	assert.Equal(t, "tech_2", rec.ID)
}

func TestAdd_RejectsInvalidInput(t *testing.T) {
	_, _, err := Add(nil, types.NewTechnologyInput{Title: "", Description: "Language"}, fixedNow, sequentialIDs())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid technology")

	_, _, err = Add(nil, types.NewTechnologyInput{Title: "Go", Description: " "}, fixedNow, sequentialIDs())
	assert.Error(t, err)
}

func TestUpdateStatus_AnyTransition(t *testing.T) {
	records := sampleRecords()

	for _, from := range types.Statuses {
		for _, to := range types.Statuses {
			records[0].Status = from
			out, err := UpdateStatus(records, "1", to)
			require.NoError(t, err)
			assert.Equal(t, to, out[0].Status)
			assert.Equal(t, from, records[0].Status, "input must not change")
		}
	}
}

func TestUpdateStatus_KeepsCreatedAt(t *testing.T) {
	records := sampleRecords()
	records[2].CreatedAt = "2024-01-01T00:00:00Z"

	out, err := UpdateStatus(records, "3", types.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-01T00:00:00Z", out[2].CreatedAt)
}

func TestUpdateStatus_Errors(t *testing.T) {
	_, err := UpdateStatus(sampleRecords(), "1", "finished")
	assert.True(t, errors.Is(err, ErrInvalidStatus))

	_, err = UpdateStatus(sampleRecords(), "missing", types.StatusCompleted)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestUpdateNotes(t *testing.T) {
	out, err := UpdateNotes(sampleRecords(), "3", "start with the aggregation pipeline")
	require.NoError(t, err)
	assert.Equal(t, "start with the aggregation pipeline", out[2].Notes)
}

func TestAddUserResource(t *testing.T) {
	records := sampleRecords()

	out, err := AddUserResource(records, "2", " https://expressjs.com/en/guide/routing.html ")
	require.NoError(t, err)

	assert.Equal(t, []string{"https://expressjs.com/"}, out[1].Resources, "provenance resources are untouched")
	assert.Equal(t, []string{"https://expressjs.com/en/guide/routing.html"}, out[1].UserResources)
	assert.Empty(t, records[1].UserResources, "input must not change")
}

func TestAddUserResource_Errors(t *testing.T) {
	records := sampleRecords()

	_, err := AddUserResource(records, "2", "not a url")
	assert.True(t, errors.Is(err, ErrInvalidResource))

	_, err = AddUserResource(records, "2", "https://expressjs.com/")
	assert.True(t, errors.Is(err, ErrDuplicateResource))

	_, err = AddUserResource(records, "missing", "https://example.com")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestDelete(t *testing.T) {
	records := sampleRecords()

	out, err := Delete(records, "2")
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, []string{"1", "3", "4"}, []string{out[0].ID, out[1].ID, out[2].ID})
	assert.Len(t, records, 4)

	_, err = Delete(records, "missing")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestReplaceAll(t *testing.T) {
	incoming := []types.TechnologyRecord{{ID: "x", Title: "X", Description: "Y"}}

	out := ReplaceAll(sampleRecords(), incoming, sequentialIDs())
	require.Len(t, out, 1)
	assert.Equal(t, "x", out[0].ID)

	cleared := ReplaceAll(sampleRecords(), nil, sequentialIDs())
	assert.NotNil(t, cleared)
	assert.Empty(t, cleared)
}

func TestReplaceAll_ReassignsRepeatedIDs(t *testing.T) {
	incoming := []types.TechnologyRecord{
		{ID: "a", Title: "First", OriginalID: "a", IsImported: true},
		{ID: "a", Title: "Second", OriginalID: "a", IsImported: true},
	}

	out := ReplaceAll(sampleRecords(), incoming, sequentialIDs())

	require.Len(t, out, 2)
	assert.Equal(t, "a", out[0].ID)
	assert.Equal(t, "tech_1", out[1].ID)
	assert.Equal(t, "a", out[1].OriginalID)
	assert.Equal(t, "a", incoming[1].ID, "input slice must not change")
}

func TestMerge_AppendsInOrder(t *testing.T) {
	incoming := []types.TechnologyRecord{
		{ID: "fe_1", Title: "HTML", OriginalID: "fe_1", IsImported: true},
		{ID: "fe_2", Title: "JS", OriginalID: "fe_2", IsImported: true},
	}

	out := Merge(sampleRecords(), incoming, sequentialIDs())
	require.Len(t, out, 6)
	assert.Equal(t, "fe_1", out[4].ID)
	assert.Equal(t, "fe_2", out[5].ID)
}

func TestMerge_ReassignsCollidingIDs(t *testing.T) {
	incoming := []types.TechnologyRecord{
		{ID: "fe_1", Title: "HTML", OriginalID: "fe_1", IsImported: true},
	}

	once := Merge(nil, incoming, sequentialIDs())
	twice := Merge(once, incoming, sequentialIDs())

	require.Len(t, twice, 2)
	assert.Equal(t, "fe_1", twice[0].ID)
	assert.Equal(t, "tech_1", twice[1].ID)
	assert.Equal(t, "fe_1", twice[1].OriginalID, "external identity is kept for export")

	ids := map[string]bool{}
	for _, rec := range twice {
		assert.False(t, ids[rec.ID])
		ids[rec.ID] = true
	}
}

func TestFind(t *testing.T) {
	rec, ok := Find(sampleRecords(), "3")
	require.True(t, ok)
	assert.Equal(t, "MongoDB", rec.Title)

	_, ok = Find(sampleRecords(), "nope")
	assert.False(t, ok)
}
