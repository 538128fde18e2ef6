// Package articles turns upstream database records into feed articles and
// enforces the filter dimensions the upstream query could not express.
package articles

import (
	"time"

	"github.com/kinewatch-api/internal/models"
	"github.com/kinewatch-api/internal/notion"
	"github.com/kinewatch-api/internal/schema"
)

// Mapper converts pages using a resolved role map.
type Mapper struct {
	roles          *schema.RoleMap
	anatomicalCols []string
	contentCols    []string
}

// NewMapper prepares a mapper for one request. Tags are collected from every
// multi_select column whose name carries the tag group keyword, plus the
// column chosen for the role.
func NewMapper(roles *schema.RoleMap) *Mapper {
	return &Mapper{
		roles:          roles,
		anatomicalCols: tagColumns(roles, schema.RoleAnatomicalTag, schema.AnatomicalKeyword),
		contentCols:    tagColumns(roles, schema.RoleContentTag, schema.ContentKeyword),
	}
}

func tagColumns(roles *schema.RoleMap, role schema.Role, keyword string) []string {
	cols := roles.TagColumns(keyword)
	seen := make(map[string]bool, len(cols)+2)
	for _, c := range cols {
		seen[c] = true
	}
	for _, c := range []string{roles.Name(role), roles.DefaultName(role)} {
		if c != "" && !seen[c] {
			seen[c] = true
			cols = append(cols, c)
		}
	}
	return cols
}

// MapAll converts every page, preserving order.
func (m *Mapper) MapAll(pages []notion.Page) []models.Article {
	out := make([]models.Article, 0, len(pages))
	for _, p := range pages {
		out = append(out, m.Map(p))
	}
	return out
}

// Map converts a single page. Missing columns yield empty values.
func (m *Mapper) Map(page notion.Page) models.Article {
	return models.Article{
		ID:              page.ID,
		Title:           m.text(page, schema.RoleTitle),
		Author:          m.text(page, schema.RoleAuthor),
		PublicationDate: optional(calendarDate(m.text(page, schema.RoleDate))),
		Link:            m.text(page, schema.RoleLink),
		ImageURL:        optional(m.text(page, schema.RoleImage)),
		AnatomicalTags:  collectLabels(page, m.anatomicalCols),
		ContentTags:     collectLabels(page, m.contentCols),
	}
}

// text reads the role's resolved column, then its default column when the
// first lookup is empty.
func (m *Mapper) text(page notion.Page, role schema.Role) string {
	if v, ok := page.Properties[m.roles.Name(role)]; ok {
		if s := v.Text(); s != "" {
			return s
		}
	}
	if v, ok := page.Properties[m.roles.DefaultName(role)]; ok {
		return v.Text()
	}
	return ""
}

func collectLabels(page notion.Page, cols []string) []string {
	labels := make([]string, 0)
	seen := make(map[string]bool)
	for _, col := range cols {
		v, ok := page.Properties[col]
		if !ok {
			continue
		}
		for _, label := range v.Labels() {
			if label == "" || seen[label] {
				continue
			}
			seen[label] = true
			labels = append(labels, label)
		}
	}
	return labels
}

// calendarDate reduces an ISO 8601 date or datetime to YYYY-MM-DD. Values
// that do not start with a calendar date are returned unchanged.
func calendarDate(s string) string {
	if len(s) < len(time.DateOnly) {
		return s
	}
	if _, err := time.Parse(time.DateOnly, s[:len(time.DateOnly)]); err != nil {
		return s
	}
	return s[:len(time.DateOnly)]
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
