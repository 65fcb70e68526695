// Package collection applies add, update, delete and replace operations to a
// list of technology records. Every operation returns a new slice and leaves
// its input untouched.
package collection

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/jonathan/techtracker/internal/ids"
	"github.com/jonathan/techtracker/internal/types"
)

var (
	// ErrNotFound is returned when no record has the requested id
	ErrNotFound = errors.New("technology not found")
	// ErrInvalidStatus is returned for status values outside the three tracked states
	ErrInvalidStatus = errors.New("invalid status")
	// ErrInvalidResource is returned for resource links that are not absolute URLs
	ErrInvalidResource = errors.New("invalid resource URL")
	// ErrDuplicateResource is returned when a record already lists the link
	ErrDuplicateResource = errors.New("resource already added")
)

// Find returns the record with the given id
func Find(records []types.TechnologyRecord, id string) (types.TechnologyRecord, bool) {
	for _, rec := range records {
		if rec.ID == id {
			return rec, true
		}
	}
	return types.TechnologyRecord{}, false
}

// Add validates input and appends a new manual record. The id comes from
// newID and is regenerated while it collides with an existing record.
func Add(records []types.TechnologyRecord, input types.NewTechnologyInput, now time.Time, newID ids.Generator) ([]types.TechnologyRecord, types.TechnologyRecord, error) {
	if err := input.Validate(); err != nil {
		return nil, types.TechnologyRecord{}, fmt.Errorf("invalid technology: %w", err)
	}

	category := strings.TrimSpace(input.Category)
	if category == "" {
		category = types.DefaultCategory
	}

	rec := types.TechnologyRecord{
		ID:            ids.Unique(newID, idSet(records))(),
		Title:         strings.TrimSpace(input.Title),
		Description:   strings.TrimSpace(input.Description),
		Category:      category,
		Status:        types.StatusNotStarted,
		Notes:         input.Notes,
		Resources:     []string{},
		UserResources: []string{},
		CreatedAt:     now.UTC().Format(time.RFC3339Nano),
	}

	return append(clone(records), rec), rec, nil
}

// UpdateStatus sets the status of one record. Any state may move to any other.
func UpdateStatus(records []types.TechnologyRecord, id string, status types.Status) ([]types.TechnologyRecord, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	return update(records, id, func(rec *types.TechnologyRecord) error {
		rec.Status = status
		return nil
	})
}

// UpdateNotes replaces the notes of one record
func UpdateNotes(records []types.TechnologyRecord, id, notes string) ([]types.TechnologyRecord, error) {
	return update(records, id, func(rec *types.TechnologyRecord) error {
		rec.Notes = notes
		return nil
	})
}

// AddUserResource appends a user-contributed link to one record.
// Provenance resources are never modified.
func AddUserResource(records []types.TechnologyRecord, id, link string) ([]types.TechnologyRecord, error) {
	link = strings.TrimSpace(link)
	u, err := url.Parse(link)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidResource, link)
	}

	return update(records, id, func(rec *types.TechnologyRecord) error {
		for _, existing := range rec.AllResources() {
			if existing == link {
				return fmt.Errorf("%w: %s", ErrDuplicateResource, link)
			}
		}
		rec.UserResources = append(rec.UserResources, link)
		return nil
	})
}

// Delete removes one record
func Delete(records []types.TechnologyRecord, id string) ([]types.TechnologyRecord, error) {
	out := make([]types.TechnologyRecord, 0, len(records))
	found := false
	for _, rec := range records {
		if rec.ID == id {
			found = true
			continue
		}
		out = append(out, rec.Clone())
	}
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return out, nil
}

// ReplaceAll discards records and returns a copy of incoming. Ids repeated
// within incoming are reassigned the same way Merge does.
func ReplaceAll(_ []types.TechnologyRecord, incoming []types.TechnologyRecord, newID ids.Generator) []types.TechnologyRecord {
	return Merge(nil, incoming, newID)
}

// Merge appends incoming after records. An incoming record whose id is
// already taken receives a fresh id from newID; its originalId is kept so
// export still reports the external identity.
func Merge(records, incoming []types.TechnologyRecord, newID ids.Generator) []types.TechnologyRecord {
	taken := idSet(records)
	unique := ids.Unique(newID, taken)

	out := clone(records)
	for _, rec := range incoming {
		rec = rec.Clone()
		if _, exists := taken[rec.ID]; exists || rec.ID == "" {
			rec.ID = unique()
		} else {
			taken[rec.ID] = struct{}{}
		}
		out = append(out, rec)
	}
	return out
}

func update(records []types.TechnologyRecord, id string, fn func(rec *types.TechnologyRecord) error) ([]types.TechnologyRecord, error) {
	out := clone(records)
	for i := range out {
		if out[i].ID == id {
			if err := fn(&out[i]); err != nil {
				return nil, err
			}
			return out, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Copy returns a deep copy of records
func Copy(records []types.TechnologyRecord) []types.TechnologyRecord {
	return clone(records)
}

func clone(records []types.TechnologyRecord) []types.TechnologyRecord {
	out := make([]types.TechnologyRecord, 0, len(records))
	for _, rec := range records {
		out = append(out, rec.Clone())
	}
	return out
}

func idSet(records []types.TechnologyRecord) map[string]struct{} {
	set := make(map[string]struct{}, len(records))
	for _, rec := range records {
		set[rec.ID] = struct{}{}
	}
	return set
}
