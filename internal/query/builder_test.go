package query

import (
	"encoding/json"
	"testing"

	"github.com/kinewatch-api/internal/models"
	"github.com/kinewatch-api/internal/notion"
	"github.com/kinewatch-api/internal/schema"
)

func options(names ...string) *notion.OptionList {
	list := &notion.OptionList{}
	for _, n := range names {
		list.Options = append(list.Options, notion.SelectOption{Name: n})
	}
	return list
}

func testSchema(authorType notion.PropertyType, tagType notion.PropertyType) *notion.Database {
	author := notion.PropertySchema{Name: "Auteur", Type: authorType}
	if authorType == notion.PropertyTypeSelect {
		author.Select = options("Kinesport", "Physio-Network", "Training Thérapie")
	}
	anatomical := notion.PropertySchema{Name: "Tag anatomique", Type: tagType}
	content := notion.PropertySchema{Name: "Tag contenu", Type: tagType}
	if tagType == notion.PropertyTypeMultiSelect {
		anatomical.MultiSelect = options("Épaule", "Genou")
		content.MultiSelect = options("Prévention", "Technique")
	}
	return &notion.Database{Properties: map[string]notion.PropertySchema{
		"Titre":               {Name: "Titre", Type: notion.PropertyTypeTitle},
		"Auteur":              author,
		"Date de publication": {Name: "Date de publication", Type: notion.PropertyTypeDate},
		"Tag anatomique":      anatomical,
		"Tag contenu":         content,
	}}
}

func TestBuild_NoFilters(t *testing.T) {
	roles := schema.Resolve(testSchema(notion.PropertyTypeSelect, notion.PropertyTypeMultiSelect))
	f := models.NewFilterRequest("", "Tout", "", "Tout")

	plan := Build(roles, f, ResolveValues(roles, f))

	if plan.Request.Filter != nil {
		t.Errorf("Expected no filter, got %+v", plan.Request.Filter)
	}
	if plan.Applied != (Applied{}) {
		t.Errorf("Expected no applied flags, got %+v", plan.Applied)
	}
	if plan.Request.PageSize != PageSize {
		t.Errorf("Expected page size %d, got %d", PageSize, plan.Request.PageSize)
	}
	if len(plan.Request.Sorts) != 1 {
		t.Fatalf("Expected one sort, got %d", len(plan.Request.Sorts))
	}
	sort := plan.Request.Sorts[0]
	if sort.Property != "Date de publication" || sort.Direction != notion.SortDescending {
		t.Errorf("Unexpected sort %+v", sort)
	}
	if plan.Request.StartCursor != "" {
		t.Errorf("Expected no cursor, got %q", plan.Request.StartCursor)
	}
}

func TestBuild_SingleFilterIsNotWrapped(t *testing.T) {
	roles := schema.Resolve(testSchema(notion.PropertyTypeSelect, notion.PropertyTypeMultiSelect))
	f := models.NewFilterRequest("cursor-9", "kinesport", "", "")

	plan := Build(roles, f, ResolveValues(roles, f))

	got := plan.Request.Filter
	if got == nil || got.And != nil {
		t.Fatalf("Expected a single clause, got %+v", got)
	}
	if got.Property != "Auteur" || got.Select == nil || got.Select.Equals != "Kinesport" {
		t.Errorf("Expected select equals Kinesport, got %+v", got)
	}
	if !plan.Applied.Source || plan.Applied.AnatomicalTag || plan.Applied.ContentTag {
		t.Errorf("Unexpected applied flags %+v", plan.Applied)
	}
	if plan.Request.StartCursor != "cursor-9" {
		t.Errorf("Expected cursor passthrough, got %q", plan.Request.StartCursor)
	}
}

func TestBuild_TextAuthorUsesRichTextClause(t *testing.T) {
	roles := schema.Resolve(testSchema(notion.PropertyTypeRichText, notion.PropertyTypeMultiSelect))
	f := models.NewFilterRequest("", "Kinesport", "", "")

	plan := Build(roles, f, ResolveValues(roles, f))

	got := plan.Request.Filter
	if got == nil || got.RichText == nil || got.RichText.Equals != "Kinesport" || got.Select != nil {
		t.Fatalf("Expected rich_text equals clause, got %+v", got)
	}
	if !plan.Applied.Source {
		t.Error("Expected source to be applied natively")
	}
}

func TestBuild_MultipleFiltersAreAnded(t *testing.T) {
	roles := schema.Resolve(testSchema(notion.PropertyTypeSelect, notion.PropertyTypeMultiSelect))
	f := models.NewFilterRequest("", "Physio Network", "epaule", "prevention")

	plan := Build(roles, f, ResolveValues(roles, f))

	got := plan.Request.Filter
	if got == nil || len(got.And) != 3 {
		t.Fatalf("Expected and of 3 clauses, got %+v", got)
	}
	if got.And[0].Select.Equals != "Physio-Network" {
		t.Errorf("Expected resolved source option, got %q", got.And[0].Select.Equals)
	}
	if got.And[1].Property != "Tag anatomique" || got.And[1].MultiSelect.Contains != "Épaule" {
		t.Errorf("Unexpected anatomical clause %+v", got.And[1])
	}
	if got.And[2].Property != "Tag contenu" || got.And[2].MultiSelect.Contains != "Prévention" {
		t.Errorf("Unexpected content clause %+v", got.And[2])
	}
	if plan.Applied != (Applied{Source: true, AnatomicalTag: true, ContentTag: true}) {
		t.Errorf("Unexpected applied flags %+v", plan.Applied)
	}
}

func TestBuild_UnsupportedTypesAreNotApplied(t *testing.T) {
	roles := schema.Resolve(testSchema(notion.PropertyTypeNumber, notion.PropertyTypeSelect))
	f := models.NewFilterRequest("", "Kinesport", "Genou", "Technique")

	plan := Build(roles, f, ResolveValues(roles, f))

	if plan.Request.Filter != nil {
		t.Errorf("Expected no native filter, got %+v", plan.Request.Filter)
	}
	if plan.Applied != (Applied{}) {
		t.Errorf("Expected no applied flags, got %+v", plan.Applied)
	}
}

func TestBuild_UnknownOptionIsSentUnchanged(t *testing.T) {
	roles := schema.Resolve(testSchema(notion.PropertyTypeSelect, notion.PropertyTypeMultiSelect))
	f := models.NewFilterRequest("", "", "Coude", "")

	plan := Build(roles, f, ResolveValues(roles, f))

	got := plan.Request.Filter
	if got == nil || got.MultiSelect == nil || got.MultiSelect.Contains != "Coude" {
		t.Fatalf("Expected unchanged label, got %+v", got)
	}
	if !plan.Applied.AnatomicalTag {
		t.Error("Expected anatomical tag to be applied natively")
	}
}

func TestBuild_WireShape(t *testing.T) {
	roles := schema.Resolve(testSchema(notion.PropertyTypeSelect, notion.PropertyTypeMultiSelect))
	f := models.NewFilterRequest("", "", "", "Technique")

	plan := Build(roles, f, ResolveValues(roles, f))

	raw, err := json.Marshal(plan.Request)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"filter":{"property":"Tag contenu","multi_select":{"contains":"Technique"}},"sorts":[{"property":"Date de publication","direction":"descending"}],"page_size":100}`
	if string(raw) != want {
		t.Errorf("Unexpected wire body:\n got %s\nwant %s", raw, want)
	}
}

func TestBuild_TagGroupSpanningColumnsIsOred(t *testing.T) {
	db := testSchema(notion.PropertyTypeSelect, notion.PropertyTypeMultiSelect)
	db.Properties["Tags contenu (ancien)"] = notion.PropertySchema{
		Name:        "Tags contenu (ancien)",
		Type:        notion.PropertyTypeMultiSelect,
		MultiSelect: options("prevention", "Technique"),
	}
	roles := schema.Resolve(db)
	f := models.NewFilterRequest("", "", "", "Prévention")

	plan := Build(roles, f, ResolveValues(roles, f))

	got := plan.Request.Filter
	if got == nil || len(got.Or) != 2 || got.And != nil {
		t.Fatalf("Expected or of 2 clauses, got %+v", got)
	}
	if got.Or[0].Property != "Tag contenu" || got.Or[0].MultiSelect.Contains != "Prévention" {
		t.Errorf("Unexpected primary clause %+v", got.Or[0])
	}
	if got.Or[1].Property != "Tags contenu (ancien)" || got.Or[1].MultiSelect.Contains != "prevention" {
		t.Errorf("Expected legacy column clause with its own option spelling, got %+v", got.Or[1])
	}
	if !plan.Applied.ContentTag {
		t.Error("Expected content tag to be applied natively")
	}
}
