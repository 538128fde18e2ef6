package benchmark

import (
	"context"
	"fmt"
	"testing"

	"github.com/kinewatch-api/internal/articles"
	"github.com/kinewatch-api/internal/mocks"
	"github.com/kinewatch-api/internal/models"
	"github.com/kinewatch-api/internal/notion"
	"github.com/kinewatch-api/internal/query"
	"github.com/kinewatch-api/internal/repository"
	"github.com/kinewatch-api/internal/schema"
	"github.com/kinewatch-api/internal/service"
	"github.com/kinewatch-api/internal/textnorm"
	"github.com/rs/zerolog"
)

var anatomicalLabels = []string{"Épaule", "Genou", "Rachis", "Hanche", "Cheville", "Coude", "Poignet"}

func options(names ...string) *notion.OptionList {
	list := &notion.OptionList{}
	for _, n := range names {
		list.Options = append(list.Options, notion.SelectOption{Name: n})
	}
	return list
}

func benchSchema() *notion.Database {
	return &notion.Database{Properties: map[string]notion.PropertySchema{
		"Titre":               {Name: "Titre", Type: notion.PropertyTypeTitle},
		"Auteur":              {Name: "Auteur", Type: notion.PropertyTypeRichText},
		"Date de publication": {Name: "Date de publication", Type: notion.PropertyTypeDate},
		"Lien":                {Name: "Lien", Type: notion.PropertyTypeURL},
		"URL de l'image":      {Name: "URL de l'image", Type: notion.PropertyTypeFiles},
		"Tag anatomique":      {Name: "Tag anatomique", Type: notion.PropertyTypeSelect, Select: options(anatomicalLabels...)},
		"Tag contenu":         {Name: "Tag contenu", Type: notion.PropertyTypeMultiSelect, MultiSelect: options("Prévention", "Technique")},
	}}
}

// benchPages builds one full upstream page of records
func benchPages() []notion.Page {
	pages := make([]notion.Page, query.PageSize)
	for i := range pages {
		link := fmt.Sprintf("https://example.com/articles/%d", i)
		pages[i] = notion.Page{
			ID: fmt.Sprintf("page-%03d", i),
			Properties: map[string]notion.PropertyValue{
				"Titre":               {Type: notion.PropertyTypeTitle, Title: []notion.RichText{{PlainText: fmt.Sprintf("Rééducation %d", i)}}},
				"Auteur":              {Type: notion.PropertyTypeRichText, RichText: []notion.RichText{{PlainText: "Kinesport"}}},
				"Date de publication": {Type: notion.PropertyTypeDate, Date: &notion.DateValue{Start: "2024-05-02T09:30:00.000+02:00"}},
				"Lien":                {Type: notion.PropertyTypeURL, URL: &link},
				"Tag anatomique":      {Type: notion.PropertyTypeSelect, Select: &notion.SelectOption{Name: anatomicalLabels[i%len(anatomicalLabels)]}},
				"Tag contenu":         {Type: notion.PropertyTypeMultiSelect, MultiSelect: []notion.SelectOption{{Name: "Prévention"}}},
			},
		}
	}
	return pages
}

// BenchmarkCanonicalize benchmarks accent folding and punctuation stripping
func BenchmarkCanonicalize(b *testing.B) {
	inputs := []string{"Tags de contenu (ancien)", "  ÉPAULE  ", "Training Thérapie", "URL de l'image"}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		for _, s := range inputs {
			textnorm.Canonicalize(s)
		}
	}
}

// BenchmarkResolveOption benchmarks the worst case: a value that only
// matches at the canonical level
func BenchmarkResolveOption(b *testing.B) {
	opts := []string{"Épaule", "Genou", "Rachis", "Hanche", "Cheville", "Coude", "Poignet", "Training Thérapie"}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		schema.ResolveOption("training-therapie", opts)
	}
}

// BenchmarkResolveRoles benchmarks schema role resolution
func BenchmarkResolveRoles(b *testing.B) {
	db := benchSchema()

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		schema.Resolve(db)
	}
}

// BenchmarkMapAndFilter benchmarks normalizing a full page with a local
// fallback filter
func BenchmarkMapAndFilter(b *testing.B) {
	roles := schema.Resolve(benchSchema())
	mapper := articles.NewMapper(roles)
	pages := benchPages()
	f := models.FilterRequest{AnatomicalTag: "genou"}

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		articles.Filter(mapper.MapAll(pages), f, query.Applied{})
	}

	b.ReportMetric(float64(len(pages)*b.N)/b.Elapsed().Seconds(), "records/sec")
}

// BenchmarkListArticles benchmarks the full request path against a mock upstream
func BenchmarkListArticles(b *testing.B) {
	repo := mocks.NewMockArticleRepository(benchSchema(), benchPages()...)
	svc := service.NewServices(&repository.Repositories{Article: repo}, zerolog.Nop())
	req := models.FilterRequest{Source: "Kinesport", AnatomicalTag: "Genou", ContentTag: "prevention"}
	ctx := context.Background()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		if _, err := svc.Article.ListArticles(ctx, req); err != nil {
			b.Fatal(err)
		}
	}
}
