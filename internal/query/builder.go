// Package query composes upstream database queries from a client filter
// request and a resolved schema role map.
package query

import (
	"github.com/kinewatch-api/internal/models"
	"github.com/kinewatch-api/internal/notion"
	"github.com/kinewatch-api/internal/schema"
)

// PageSize is the number of records requested per page.
const PageSize = 100

// Applied records which filter dimensions the upstream query enforces.
// A requested dimension left false must be enforced locally.
type Applied struct {
	Source        bool
	AnatomicalTag bool
	ContentTag    bool
}

// Values are the filter values to send upstream, reconciled with the
// legal options of their columns.
type Values struct {
	Source        string
	AnatomicalTag string
	ContentTag    string
}

// Plan is a ready-to-send query and the dimensions it enforces.
type Plan struct {
	Request *notion.QueryRequest
	Applied Applied
}

// ResolveValues maps each requested filter value onto the best matching
// option of the column resolved for its role. Columns without options
// leave the value unchanged.
func ResolveValues(roles *schema.RoleMap, f models.FilterRequest) Values {
	return Values{
		Source:        resolve(roles, schema.RoleAuthor, f.Source),
		AnatomicalTag: resolve(roles, schema.RoleAnatomicalTag, f.AnatomicalTag),
		ContentTag:    resolve(roles, schema.RoleContentTag, f.ContentTag),
	}
}

func resolve(roles *schema.RoleMap, role schema.Role, requested string) string {
	if requested == "" {
		return ""
	}
	return schema.ResolveOption(requested, roles.Options(role))
}

// Build composes the query for f. Each requested dimension gets a native
// clause only when its column type supports one; several clauses are and'ed.
// The page size, the descending date sort and the incoming cursor are always
// attached.
func Build(roles *schema.RoleMap, f models.FilterRequest, v Values) Plan {
	var (
		filters []notion.Filter
		applied Applied
	)

	if f.Source != "" {
		if clause, ok := equalityClause(roles.Name(schema.RoleAuthor), roles.Type(schema.RoleAuthor), v.Source); ok {
			filters = append(filters, clause)
			applied.Source = true
		}
	}

	if f.AnatomicalTag != "" {
		if clause, ok := tagClause(roles, schema.RoleAnatomicalTag, schema.AnatomicalKeyword, f.AnatomicalTag, v.AnatomicalTag); ok {
			filters = append(filters, clause)
			applied.AnatomicalTag = true
		}
	}

	if f.ContentTag != "" {
		if clause, ok := tagClause(roles, schema.RoleContentTag, schema.ContentKeyword, f.ContentTag, v.ContentTag); ok {
			filters = append(filters, clause)
			applied.ContentTag = true
		}
	}

	req := &notion.QueryRequest{
		PageSize:    PageSize,
		StartCursor: f.StartCursor,
		Sorts:       []notion.Sort{{Property: roles.Name(schema.RoleDate), Direction: notion.SortDescending}},
	}

	switch len(filters) {
	case 0:
	case 1:
		req.Filter = &filters[0]
	default:
		req.Filter = &notion.Filter{And: filters}
	}

	return Plan{Request: req, Applied: applied}
}

// equalityClause builds an equals condition shaped for the column type.
func equalityClause(property string, typ notion.PropertyType, value string) (notion.Filter, bool) {
	f := notion.Filter{Property: property}
	switch typ {
	case notion.PropertyTypeRichText:
		f.RichText = &notion.TextCondition{Equals: value}
	case notion.PropertyTypeTitle:
		f.Title = &notion.TextCondition{Equals: value}
	case notion.PropertyTypeSelect:
		f.Select = &notion.SelectCondition{Equals: value}
	case notion.PropertyTypeStatus:
		f.Status = &notion.SelectCondition{Equals: value}
	default:
		return notion.Filter{}, false
	}
	return f, true
}

// tagClause builds a set-contains condition on the role's column, or'ed with
// the same condition on every other multi_select column of the tag group so
// a label held by any of them matches. The role's column must be multi_select.
func tagClause(roles *schema.RoleMap, role schema.Role, keyword, requested, value string) (notion.Filter, bool) {
	name := roles.Name(role)
	if roles.Type(role) != notion.PropertyTypeMultiSelect {
		return notion.Filter{}, false
	}

	clauses := []notion.Filter{containsClause(name, value)}
	for _, col := range roles.TagColumns(keyword) {
		if col == name {
			continue
		}
		clauses = append(clauses, containsClause(col, schema.ResolveOption(requested, roles.ColumnOptions(col))))
	}
	if len(clauses) == 1 {
		return clauses[0], true
	}
	return notion.Filter{Or: clauses}, true
}

func containsClause(property, value string) notion.Filter {
	return notion.Filter{
		Property:    property,
		MultiSelect: &notion.MultiSelectCondition{Contains: value},
	}
}
