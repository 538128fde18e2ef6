package mocks

import (
	"context"

	"github.com/kinewatch-api/internal/models"
	"github.com/kinewatch-api/internal/schema"
	"github.com/kinewatch-api/internal/service"
)

// MockArticleService is a mock implementation of ArticleService
type MockArticleService struct {
	ListFunc  func(ctx context.Context, req models.FilterRequest) (*models.ArticlesResponse, error)
	RolesFunc func(ctx context.Context) (*schema.RoleMap, error)
	Requests  []models.FilterRequest
	ListCalls int
}

// Verify interface compliance
var _ service.ArticleService = (*MockArticleService)(nil)

func NewMockArticleService() *MockArticleService {
	return &MockArticleService{
		Requests: make([]models.FilterRequest, 0),
	}
}

func (m *MockArticleService) ListArticles(ctx context.Context, req models.FilterRequest) (*models.ArticlesResponse, error) {
	m.ListCalls++
	m.Requests = append(m.Requests, req)
	if m.ListFunc != nil {
		return m.ListFunc(ctx, req)
	}
	return &models.ArticlesResponse{Articles: []models.Article{}}, nil
}

func (m *MockArticleService) ResolveRoles(ctx context.Context) (*schema.RoleMap, error) {
	if m.RolesFunc != nil {
		return m.RolesFunc(ctx)
	}
	return schema.Resolve(nil), nil
}
