package roadmap

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/jonathan/techtracker/internal/types"
)

// Parse decodes roadmap JSON text and validates it.
// Malformed JSON fails with a ParseError before any validation runs.
func Parse(data []byte) (*types.RoadmapDocument, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, &ParseError{Message: "input is not valid JSON", Cause: err}
	}
	if dec.More() {
		return nil, &ParseError{Message: "unexpected data after JSON value"}
	}

	return Validate(raw)
}

// Validate checks a decoded JSON value against the roadmap shape and
// converts it into a RoadmapDocument. Checks run in order: name,
// description, technologies is a list, technologies is non-empty.
// Individual entries are not validated; fields of the wrong type are
// treated as absent. raw is never modified.
func Validate(raw any) (*types.RoadmapDocument, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, &InvalidShapeError{Message: "roadmap must be a JSON object"}
	}

	name := stringField(obj, "name")
	if isBlank(name) {
		return nil, &MissingFieldError{Field: "name"}
	}
	description := stringField(obj, "description")
	if isBlank(description) {
		return nil, &MissingFieldError{Field: "description"}
	}
	list, ok := obj["technologies"].([]any)
	if !ok {
		return nil, &InvalidShapeError{Message: "technologies must be a list"}
	}
	if len(list) == 0 {
		return nil, &EmptyRoadmapError{}
	}

	doc := &types.RoadmapDocument{
		Version:      stringField(obj, "version"),
		Name:         name,
		Description:  description,
		Category:     stringField(obj, "category"),
		Technologies: make([]types.RoadmapEntry, 0, len(list)),
	}
	for _, item := range list {
		entry, _ := item.(map[string]any)
		doc.Technologies = append(doc.Technologies, types.RoadmapEntry{
			ID:          idField(entry),
			Title:       stringField(entry, "title"),
			Description: stringField(entry, "description"),
			Category:    stringField(entry, "category"),
			Resources:   stringsField(entry, "resources"),
		})
	}

	return doc, nil
}

// CheckDocument applies the Validate rules to an already typed document.
// A nil Technologies slice counts as absent.
func CheckDocument(doc *types.RoadmapDocument) error {
	if doc == nil {
		return &InvalidShapeError{Message: "roadmap must be a JSON object"}
	}
	if isBlank(doc.Name) {
		return &MissingFieldError{Field: "name"}
	}
	if isBlank(doc.Description) {
		return &MissingFieldError{Field: "description"}
	}
	if doc.Technologies == nil {
		return &InvalidShapeError{Message: "technologies must be a list"}
	}
	if len(doc.Technologies) == 0 {
		return &EmptyRoadmapError{}
	}
	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func stringField(obj map[string]any, key string) string {
	s, _ := obj[key].(string)
	return s
}

// idField accepts string ids and numeric ids, rendering numbers in decimal
func idField(obj map[string]any) string {
	switch v := obj["id"].(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return ""
}

// stringsField returns nil when the field is absent or not a list.
// Non-string items are skipped.
func stringsField(obj map[string]any, key string) []string {
	list, ok := obj[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
