package service

import (
	"context"

	"github.com/kinewatch-api/internal/models"
	"github.com/kinewatch-api/internal/repository"
	"github.com/kinewatch-api/internal/schema"
	"github.com/rs/zerolog"
)

// ArticleService defines the interface for feed operations
type ArticleService interface {
	ListArticles(ctx context.Context, req models.FilterRequest) (*models.ArticlesResponse, error)
	ResolveRoles(ctx context.Context) (*schema.RoleMap, error)
}

// Services holds all service interfaces
type Services struct {
	Article ArticleService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, log zerolog.Logger) *Services {
	return &Services{
		Article: newArticleService(repos.Article, log),
	}
}
