package models

import (
	"encoding/json"
	"strings"
)

// AllSentinel is the filter value meaning "no constraint"
const AllSentinel = "Tout"

// FilterRequest is the client's feed query. Empty fields are unconstrained.
type FilterRequest struct {
	StartCursor   string
	Source        string
	AnatomicalTag string
	ContentTag    string
}

// NewFilterRequest trims every field and clears filters set to the sentinel
func NewFilterRequest(cursor, source, anatomicalTag, contentTag string) FilterRequest {
	return FilterRequest{
		StartCursor:   strings.TrimSpace(cursor),
		Source:        filterValue(source),
		AnatomicalTag: filterValue(anatomicalTag),
		ContentTag:    filterValue(contentTag),
	}
}

// ParseFilterRequest decodes a JSON request body leniently: an empty or
// unparsable body, or a field that is not a string, is treated as absent.
func ParseFilterRequest(body []byte) FilterRequest {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return FilterRequest{}
	}
	return NewFilterRequest(
		stringField(raw, "start_cursor"),
		stringField(raw, "source"),
		stringField(raw, "tag_anatomique"),
		stringField(raw, "tag_contenu"),
	)
}

// IsEmpty reports whether no filter dimension is constrained
func (f FilterRequest) IsEmpty() bool {
	return f.Source == "" && f.AnatomicalTag == "" && f.ContentTag == ""
}

func stringField(raw map[string]json.RawMessage, key string) string {
	msg, ok := raw[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(msg, &s); err != nil {
		return ""
	}
	return s
}

func filterValue(v string) string {
	v = strings.TrimSpace(v)
	if strings.EqualFold(v, AllSentinel) {
		return ""
	}
	return v
}
