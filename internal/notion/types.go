package notion

import "strings"

// PropertyType is the declared type of a database column.
type PropertyType string

const (
	PropertyTypeTitle       PropertyType = "title"
	PropertyTypeRichText    PropertyType = "rich_text"
	PropertyTypeSelect      PropertyType = "select"
	PropertyTypeMultiSelect PropertyType = "multi_select"
	PropertyTypeStatus      PropertyType = "status"
	PropertyTypeDate        PropertyType = "date"
	PropertyTypeURL         PropertyType = "url"
	PropertyTypeFiles       PropertyType = "files"
	PropertyTypeNumber      PropertyType = "number"
	PropertyTypeCheckbox    PropertyType = "checkbox"
)

// SelectOption is one legal option of a select, status or multi_select column,
// or one chosen value on a page.
type SelectOption struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// OptionList is the per-type metadata of option-bearing columns.
type OptionList struct {
	Options []SelectOption `json:"options"`
}

// PropertySchema describes one declared column of a database.
type PropertySchema struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Type        PropertyType `json:"type"`
	Select      *OptionList  `json:"select,omitempty"`
	MultiSelect *OptionList  `json:"multi_select,omitempty"`
	Status      *OptionList  `json:"status,omitempty"`
}

// Options returns the legal option labels of the column, or nil when the
// column type carries no enumerated options.
func (p PropertySchema) Options() []string {
	var list *OptionList
	switch p.Type {
	case PropertyTypeSelect:
		list = p.Select
	case PropertyTypeMultiSelect:
		list = p.MultiSelect
	case PropertyTypeStatus:
		list = p.Status
	}
	if list == nil {
		return nil
	}
	names := make([]string, 0, len(list.Options))
	for _, opt := range list.Options {
		names = append(names, opt.Name)
	}
	return names
}

// Database is the schema description of a database.
type Database struct {
	ID         string                    `json:"id"`
	Title      []RichText                `json:"title,omitempty"`
	Properties map[string]PropertySchema `json:"properties"`
}

// PropertyType returns the declared type of the named column.
func (d *Database) PropertyType(name string) (PropertyType, bool) {
	if d == nil {
		return "", false
	}
	p, ok := d.Properties[name]
	if !ok {
		return "", false
	}
	return p.Type, true
}

// RichText is a single text run.
type RichText struct {
	PlainText string `json:"plain_text"`
}

// DateValue is the value of a date column. Start is an ISO 8601 date or datetime.
type DateValue struct {
	Start string  `json:"start"`
	End   *string `json:"end,omitempty"`
}

// FileURL holds the address of a hosted or external file.
type FileURL struct {
	URL string `json:"url"`
}

// File is one entry of a files column.
type File struct {
	Name     string   `json:"name,omitempty"`
	Type     string   `json:"type,omitempty"`
	File     *FileURL `json:"file,omitempty"`
	External *FileURL `json:"external,omitempty"`
}

// URL returns the file address regardless of hosting.
func (f File) URL() string {
	if f.External != nil && f.External.URL != "" {
		return f.External.URL
	}
	if f.File != nil {
		return f.File.URL
	}
	return ""
}

// PropertyValue is the value of one column on a page. Only the field matching
// Type is populated.
type PropertyValue struct {
	ID          string         `json:"id,omitempty"`
	Type        PropertyType   `json:"type"`
	Title       []RichText     `json:"title,omitempty"`
	RichText    []RichText     `json:"rich_text,omitempty"`
	Select      *SelectOption  `json:"select,omitempty"`
	Status      *SelectOption  `json:"status,omitempty"`
	MultiSelect []SelectOption `json:"multi_select,omitempty"`
	Date        *DateValue     `json:"date,omitempty"`
	URL         *string        `json:"url,omitempty"`
	Files       []File         `json:"files,omitempty"`
}

// Text flattens the value into a single string. Text runs are concatenated,
// option values yield their name, files yield the first address.
func (v PropertyValue) Text() string {
	switch v.Type {
	case PropertyTypeTitle:
		return joinPlainText(v.Title)
	case PropertyTypeRichText:
		return joinPlainText(v.RichText)
	case PropertyTypeSelect:
		if v.Select != nil {
			return v.Select.Name
		}
	case PropertyTypeStatus:
		if v.Status != nil {
			return v.Status.Name
		}
	case PropertyTypeMultiSelect:
		return strings.Join(v.Labels(), ", ")
	case PropertyTypeDate:
		if v.Date != nil {
			return v.Date.Start
		}
	case PropertyTypeURL:
		if v.URL != nil {
			return *v.URL
		}
	case PropertyTypeFiles:
		for _, f := range v.Files {
			if u := f.URL(); u != "" {
				return u
			}
		}
	}
	return ""
}

// Labels returns the option names carried by a select, status or
// multi_select value.
func (v PropertyValue) Labels() []string {
	switch v.Type {
	case PropertyTypeMultiSelect:
		labels := make([]string, 0, len(v.MultiSelect))
		for _, opt := range v.MultiSelect {
			labels = append(labels, opt.Name)
		}
		return labels
	case PropertyTypeSelect:
		if v.Select != nil {
			return []string{v.Select.Name}
		}
	case PropertyTypeStatus:
		if v.Status != nil {
			return []string{v.Status.Name}
		}
	}
	return nil
}

func joinPlainText(runs []RichText) string {
	if len(runs) == 0 {
		return ""
	}
	var b strings.Builder
	for _, r := range runs {
		b.WriteString(r.PlainText)
	}
	return b.String()
}

// Page is a database record.
type Page struct {
	ID         string                   `json:"id"`
	Properties map[string]PropertyValue `json:"properties"`
}

// TextCondition matches title and rich_text columns.
type TextCondition struct {
	Equals string `json:"equals"`
}

// SelectCondition matches select and status columns.
type SelectCondition struct {
	Equals string `json:"equals"`
}

// MultiSelectCondition matches multi_select columns.
type MultiSelectCondition struct {
	Contains string `json:"contains"`
}

// Filter is a query filter expression: either a single property condition or
// a compound And / Or of nested filters.
type Filter struct {
	Property    string                `json:"property,omitempty"`
	Title       *TextCondition        `json:"title,omitempty"`
	RichText    *TextCondition        `json:"rich_text,omitempty"`
	Select      *SelectCondition      `json:"select,omitempty"`
	Status      *SelectCondition      `json:"status,omitempty"`
	MultiSelect *MultiSelectCondition `json:"multi_select,omitempty"`
	And         []Filter              `json:"and,omitempty"`
	Or          []Filter              `json:"or,omitempty"`
}

// SortDirection orders query results.
type SortDirection string

const (
	SortAscending  SortDirection = "ascending"
	SortDescending SortDirection = "descending"
)

// Sort orders query results by a property.
type Sort struct {
	Property  string        `json:"property"`
	Direction SortDirection `json:"direction"`
}

// QueryRequest is the body of a database query.
type QueryRequest struct {
	Filter      *Filter `json:"filter,omitempty"`
	Sorts       []Sort  `json:"sorts,omitempty"`
	PageSize    int     `json:"page_size,omitempty"`
	StartCursor string  `json:"start_cursor,omitempty"`
}

// QueryResponse is one page of query results.
type QueryResponse struct {
	Results    []Page  `json:"results"`
	HasMore    bool    `json:"has_more"`
	NextCursor *string `json:"next_cursor"`
}
