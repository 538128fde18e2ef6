// Package catalog holds the fixed filter vocabulary offered to the web
// client. It is configuration, not derived from the upstream schema.
package catalog

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/kinewatch-api/internal/models"
	"github.com/kinewatch-api/internal/textnorm"
	"gopkg.in/yaml.v3"
)

//go:embed vocabulary.yaml
var defaultVocabulary []byte

// Source is a publication the feed aggregates.
type Source struct {
	Name string `yaml:"name" json:"name"`
	Logo string `yaml:"logo" json:"logo,omitempty"`
}

// Vocabulary is the set of filter values the client can pick from.
type Vocabulary struct {
	Sources        []Source `yaml:"sources"`
	AnatomicalTags []string `yaml:"tags_anatomique"`
	ContentTags    []string `yaml:"tags_contenu"`
}

// Default returns the embedded vocabulary.
func Default() (*Vocabulary, error) {
	return Parse(defaultVocabulary)
}

// Parse decodes a YAML vocabulary file.
func Parse(data []byte) (*Vocabulary, error) {
	var v Vocabulary
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("parsing vocabulary: %w", err)
	}
	for i, s := range v.Sources {
		if strings.TrimSpace(s.Name) == "" {
			return nil, fmt.Errorf("vocabulary source %d has no name", i)
		}
	}
	return &v, nil
}

// SourceOptions returns the source filter values, "Tout" first.
func (v *Vocabulary) SourceOptions() []string {
	names := make([]string, 0, len(v.Sources))
	for _, s := range v.Sources {
		names = append(names, s.Name)
	}
	return withSentinel(names)
}

// AnatomicalOptions returns the anatomical tag filter values, "Tout" first.
func (v *Vocabulary) AnatomicalOptions() []string {
	return withSentinel(v.AnatomicalTags)
}

// ContentOptions returns the content tag filter values, "Tout" first.
func (v *Vocabulary) ContentOptions() []string {
	return withSentinel(v.ContentTags)
}

// Logos maps source names to logo paths.
func (v *Vocabulary) Logos() map[string]string {
	logos := make(map[string]string, len(v.Sources))
	for _, s := range v.Sources {
		if s.Logo != "" {
			logos[s.Name] = s.Logo
		}
	}
	return logos
}

// LookupSource finds the catalogue source for an upstream author label:
// exact name first, then normalized or canonical equality.
func (v *Vocabulary) LookupSource(name string) (Source, bool) {
	if name == "" {
		return Source{}, false
	}
	for _, s := range v.Sources {
		if s.Name == name {
			return s, true
		}
	}
	normalized := textnorm.Normalize(name)
	canonical := textnorm.Canonicalize(name)
	for _, s := range v.Sources {
		if textnorm.Normalize(s.Name) == normalized || textnorm.Canonicalize(s.Name) == canonical {
			return s, true
		}
	}
	return Source{}, false
}

// DisplayName returns the catalogue spelling of name, or name itself when
// it is not a known source.
func (v *Vocabulary) DisplayName(name string) string {
	if s, ok := v.LookupSource(name); ok {
		return s.Name
	}
	return name
}

func withSentinel(values []string) []string {
	out := make([]string, 0, len(values)+1)
	out = append(out, models.AllSentinel)
	for _, val := range values {
		if val != models.AllSentinel {
			out = append(out, val)
		}
	}
	return out
}
