// Package schema maps the upstream database's declared columns onto the
// logical roles the article feed needs, and reconciles client tag labels
// with the columns' legal options.
package schema

import (
	"sort"
	"strings"

	"github.com/kinewatch-api/internal/notion"
	"github.com/kinewatch-api/internal/textnorm"
)

// Role is a logical field the feed reads from the upstream schema.
type Role string

const (
	RoleTitle         Role = "title"
	RoleAuthor        Role = "author"
	RoleDate          Role = "date"
	RoleLink          Role = "link"
	RoleImage         Role = "image"
	RoleAnatomicalTag Role = "anatomical_tag"
	RoleContentTag    Role = "content_tag"
)

// Roles lists every role in resolution order.
var Roles = []Role{
	RoleTitle, RoleAuthor, RoleDate, RoleLink, RoleImage, RoleAnatomicalTag, RoleContentTag,
}

// RoleSpec drives the resolution of one role.
type RoleSpec struct {
	// DefaultName is used when neither pass finds a column.
	DefaultName string
	// PreferredNames are tried in order before the heuristic pass.
	PreferredNames []string
	// Keywords must all appear in the canonical column name. Empty matches any name.
	Keywords []string
	// Types are the acceptable declared column types.
	Types []notion.PropertyType
}

// accepts reports whether t is one of the acceptable types.
func (s RoleSpec) accepts(t notion.PropertyType) bool {
	for _, want := range s.Types {
		if t == want {
			return true
		}
	}
	return false
}

// Keyword tokens shared by the tag-group roles and the tag collectors.
const (
	AnatomicalKeyword = "anatom"
	ContentKeyword    = "contenu"
)

// DefaultSpecs are the role specifications of the article database.
// A database has a single title column, so the title role needs no keyword.
var DefaultSpecs = map[Role]RoleSpec{
	RoleTitle: {
		DefaultName:    "Titre",
		PreferredNames: []string{"Titre", "Title", "Nom", "Name"},
		Types:          []notion.PropertyType{notion.PropertyTypeTitle},
	},
	RoleAuthor: {
		DefaultName:    "Auteur",
		PreferredNames: []string{"Auteur", "Author", "Source"},
		Keywords:       []string{"auteur"},
		Types:          []notion.PropertyType{notion.PropertyTypeRichText, notion.PropertyTypeSelect},
	},
	RoleDate: {
		DefaultName:    "Date de publication",
		PreferredNames: []string{"Date de publication", "Date publication", "Date"},
		Keywords:       []string{"date"},
		Types:          []notion.PropertyType{notion.PropertyTypeDate},
	},
	RoleLink: {
		DefaultName:    "Lien",
		PreferredNames: []string{"Lien", "URL", "Link"},
		Keywords:       []string{"lien"},
		Types:          []notion.PropertyType{notion.PropertyTypeURL},
	},
	RoleImage: {
		DefaultName:    "URL de l'image",
		PreferredNames: []string{"URL de l'image", "Image", "Couverture"},
		Keywords:       []string{"image"},
		Types:          []notion.PropertyType{notion.PropertyTypeURL, notion.PropertyTypeFiles},
	},
	RoleAnatomicalTag: {
		DefaultName:    "Tag anatomique",
		PreferredNames: []string{"Tag anatomique", "Tags anatomiques"},
		Keywords:       []string{AnatomicalKeyword},
		Types:          []notion.PropertyType{notion.PropertyTypeMultiSelect},
	},
	RoleContentTag: {
		DefaultName:    "Tag contenu",
		PreferredNames: []string{"Tag contenu", "Tags contenu"},
		Keywords:       []string{ContentKeyword},
		Types:          []notion.PropertyType{notion.PropertyTypeMultiSelect},
	},
}

// ResolveRole returns the column that plays the role described by spec:
// the first preferred name declared with an acceptable type, else the first
// column (by name order) of an acceptable type whose canonical name contains
// every canonical keyword. ok is false when no column qualifies.
func ResolveRole(props map[string]notion.PropertySchema, spec RoleSpec) (name string, ok bool) {
	for _, preferred := range spec.PreferredNames {
		if p, exists := props[preferred]; exists && spec.accepts(p.Type) {
			return preferred, true
		}
	}

	keywords := make([]string, 0, len(spec.Keywords))
	for _, k := range spec.Keywords {
		keywords = append(keywords, textnorm.Canonicalize(k))
	}

	for _, candidate := range sortedNames(props) {
		if !spec.accepts(props[candidate].Type) {
			continue
		}
		if containsAll(textnorm.Canonicalize(candidate), keywords) {
			return candidate, true
		}
	}
	return "", false
}

// RoleMap is the resolved column name of every role for one database.
type RoleMap struct {
	names    map[Role]string
	defaults map[Role]string
	resolved map[Role]bool
	schema   *notion.Database
}

// Resolve builds the role map of db using DefaultSpecs.
func Resolve(db *notion.Database) *RoleMap {
	return ResolveWith(db, DefaultSpecs)
}

// ResolveWith builds the role map of db. Roles without a qualifying column
// fall back to their spec's DefaultName.
func ResolveWith(db *notion.Database, specs map[Role]RoleSpec) *RoleMap {
	var props map[string]notion.PropertySchema
	if db != nil {
		props = db.Properties
	}

	m := &RoleMap{
		names:    make(map[Role]string, len(specs)),
		defaults: make(map[Role]string, len(specs)),
		resolved: make(map[Role]bool, len(specs)),
		schema:   db,
	}
	for role, spec := range specs {
		m.defaults[role] = spec.DefaultName
		if name, ok := ResolveRole(props, spec); ok {
			m.names[role] = name
			m.resolved[role] = true
			continue
		}
		m.names[role] = spec.DefaultName
	}
	return m
}

// Name returns the column name for role. It is never empty for a role
// present in the specs the map was built from.
func (m *RoleMap) Name(role Role) string {
	return m.names[role]
}

// DefaultName returns the hardcoded fallback column name for role.
func (m *RoleMap) DefaultName(role Role) string {
	return m.defaults[role]
}

// Resolved reports whether role matched a declared column rather than
// falling back to its default name.
func (m *RoleMap) Resolved(role Role) bool {
	return m.resolved[role]
}

// Type returns the declared type of the column chosen for role, or "" when
// the column is not declared.
func (m *RoleMap) Type(role Role) notion.PropertyType {
	t, _ := m.schema.PropertyType(m.names[role])
	return t
}

// Options returns the legal option labels of the column chosen for role.
func (m *RoleMap) Options(role Role) []string {
	return m.ColumnOptions(m.names[role])
}

// ColumnOptions returns the legal option labels of the named column.
func (m *RoleMap) ColumnOptions(name string) []string {
	if m.schema == nil {
		return nil
	}
	p, ok := m.schema.Properties[name]
	if !ok {
		return nil
	}
	return p.Options()
}

// TagColumns returns every multi_select column whose canonical name contains
// keyword, in name order.
func (m *RoleMap) TagColumns(keyword string) []string {
	if m.schema == nil {
		return nil
	}
	token := textnorm.Canonicalize(keyword)
	var cols []string
	for _, name := range sortedNames(m.schema.Properties) {
		if m.schema.Properties[name].Type != notion.PropertyTypeMultiSelect {
			continue
		}
		if strings.Contains(textnorm.Canonicalize(name), token) {
			cols = append(cols, name)
		}
	}
	return cols
}

// Schema returns the schema description the map was built from.
func (m *RoleMap) Schema() *notion.Database {
	return m.schema
}

func containsAll(s string, tokens []string) bool {
	for _, tok := range tokens {
		if !strings.Contains(s, tok) {
			return false
		}
	}
	return true
}

func sortedNames(props map[string]notion.PropertySchema) []string {
	names := make([]string, 0, len(props))
	for name := range props {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
