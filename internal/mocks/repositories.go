package mocks

import (
	"context"

	"github.com/kinewatch-api/internal/notion"
	"github.com/kinewatch-api/internal/repository"
)

// MockArticleRepository is a mock implementation of ArticleRepository
type MockArticleRepository struct {
	Schema     *notion.Database
	Pages      []notion.Page
	HasMore    bool
	NextCursor *string

	SchemaError error
	QueryError  error
	SchemaFunc  func(ctx context.Context) (*notion.Database, error)
	QueryFunc   func(ctx context.Context, req *notion.QueryRequest) (*notion.QueryResponse, error)

	SchemaCalls int
	QueryCalls  int
	Queries     []*notion.QueryRequest
}

// Verify interface compliance
var _ repository.ArticleRepository = (*MockArticleRepository)(nil)

func NewMockArticleRepository(schema *notion.Database, pages ...notion.Page) *MockArticleRepository {
	return &MockArticleRepository{
		Schema: schema,
		Pages:  pages,
	}
}

func (m *MockArticleRepository) GetSchema(ctx context.Context) (*notion.Database, error) {
	m.SchemaCalls++
	if m.SchemaFunc != nil {
		return m.SchemaFunc(ctx)
	}
	if m.SchemaError != nil {
		return nil, m.SchemaError
	}
	return m.Schema, nil
}

func (m *MockArticleRepository) Query(ctx context.Context, req *notion.QueryRequest) (*notion.QueryResponse, error) {
	m.QueryCalls++
	m.Queries = append(m.Queries, req)
	if m.QueryFunc != nil {
		return m.QueryFunc(ctx, req)
	}
	if m.QueryError != nil {
		return nil, m.QueryError
	}
	return &notion.QueryResponse{
		Results:    m.Pages,
		HasMore:    m.HasMore,
		NextCursor: m.NextCursor,
	}, nil
}

// LastQuery returns the most recent query request, or nil
func (m *MockArticleRepository) LastQuery() *notion.QueryRequest {
	if len(m.Queries) == 0 {
		return nil
	}
	return m.Queries[len(m.Queries)-1]
}
