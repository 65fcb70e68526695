// Package types provides type definitions for structured data used throughout the techtracker system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Status is the learning progress of a single technology
type Status string

const (
	StatusNotStarted Status = "not-started"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

// DefaultCategory is used when neither the user nor a roadmap names a category
const DefaultCategory = "other"

// Statuses lists every valid status in display order
var Statuses = []Status{StatusNotStarted, StatusInProgress, StatusCompleted}

// Valid reports whether s is one of the three tracked statuses
func (s Status) Valid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// ParseStatus converts user input into a Status. Matching is case-insensitive
// and accepts underscores in place of hyphens.
func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(raw)), "_", "-"))
	if !s.Valid() {
		return "", fmt.Errorf("invalid status %q: must be one of not-started, in-progress, completed", raw)
	}
	return s, nil
}

// TechnologyRecord is the internal unit tracking one technology's learning progress
type TechnologyRecord struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Category      string   `json:"category"`
	Status        Status   `json:"status"`
	Notes         string   `json:"notes"`
	Resources     []string `json:"resources"`     // Links supplied by the roadmap source
	UserResources []string `json:"userResources"` // Links added by the user after creation
	CreatedAt     string   `json:"createdAt"`     // RFC 3339, set once
	IsImported    bool     `json:"isImported"`
	OriginalID    string   `json:"originalId,omitempty"`
}

// Normalize replaces nil resource slices with empty ones and fills a missing status.
// Records loaded from older stores may lack these fields.
func (r *TechnologyRecord) Normalize() {
	if r.Resources == nil {
		r.Resources = []string{}
	}
	if r.UserResources == nil {
		r.UserResources = []string{}
	}
	if r.Status == "" {
		r.Status = StatusNotStarted
	}
}

// Clone returns a deep copy so callers can update a record without aliasing slices
func (r TechnologyRecord) Clone() TechnologyRecord {
	c := r
	c.Resources = append([]string{}, r.Resources...)
	c.UserResources = append([]string{}, r.UserResources...)
	return c
}

// AllResources returns provenance and user resources together, provenance first
func (r TechnologyRecord) AllResources() []string {
	all := make([]string, 0, len(r.Resources)+len(r.UserResources))
	all = append(all, r.Resources...)
	return append(all, r.UserResources...)
}

// NewTechnologyInput is a manual add request. New records always start
// not-started; status changes are separate actions.
type NewTechnologyInput struct {
	Title       string `json:"title" validate:"required,notblank"`
	Description string `json:"description" validate:"required,notblank"`
	Category    string `json:"category,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// Validate validates the NewTechnologyInput using the validator.
func (in *NewTechnologyInput) Validate() error {
	validate := validator.New()
	if err := validate.RegisterValidation("notblank", notBlank); err != nil {
		return err
	}
	return validate.Struct(in)
}

func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
