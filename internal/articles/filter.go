package articles

import (
	"github.com/kinewatch-api/internal/models"
	"github.com/kinewatch-api/internal/query"
	"github.com/kinewatch-api/internal/textnorm"
)

// Filter drops articles that fail a requested dimension the upstream query
// did not enforce. Dimensions marked applied are trusted and not re-checked.
// Comparison is on canonical text.
func Filter(list []models.Article, f models.FilterRequest, applied query.Applied) []models.Article {
	checkSource := f.Source != "" && !applied.Source
	checkAnatomical := f.AnatomicalTag != "" && !applied.AnatomicalTag
	checkContent := f.ContentTag != "" && !applied.ContentTag

	if !checkSource && !checkAnatomical && !checkContent {
		return list
	}

	out := make([]models.Article, 0, len(list))
	for _, a := range list {
		if checkSource && !textnorm.Equal(a.Author, f.Source) {
			continue
		}
		if checkAnatomical && !containsLabel(a.AnatomicalTags, f.AnatomicalTag) {
			continue
		}
		if checkContent && !containsLabel(a.ContentTags, f.ContentTag) {
			continue
		}
		out = append(out, a)
	}
	return out
}

func containsLabel(labels []string, want string) bool {
	canonical := textnorm.Canonicalize(want)
	for _, l := range labels {
		if textnorm.Canonicalize(l) == canonical {
			return true
		}
	}
	return false
}
