package service

import (
	"context"
	"fmt"

	"github.com/kinewatch-api/internal/articles"
	"github.com/kinewatch-api/internal/models"
	"github.com/kinewatch-api/internal/query"
	"github.com/kinewatch-api/internal/repository"
	"github.com/kinewatch-api/internal/schema"
	"github.com/rs/zerolog"
)

// articleService is the concrete implementation of ArticleService
type articleService struct {
	repo repository.ArticleRepository
	log  zerolog.Logger
}

// newArticleService creates a new ArticleService
func newArticleService(repo repository.ArticleRepository, log zerolog.Logger) *articleService {
	return &articleService{
		repo: repo,
		log:  log.With().Str("service", "article").Logger(),
	}
}

// ResolveRoles fetches the schema and resolves the column of every role
func (s *articleService) ResolveRoles(ctx context.Context) (*schema.RoleMap, error) {
	db, err := s.repo.GetSchema(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch schema: %w", err)
	}
	return schema.Resolve(db), nil
}

// ListArticles returns one page of the feed. The schema is fetched first
// because the query depends on it; both calls run once, without retry.
func (s *articleService) ListArticles(ctx context.Context, req models.FilterRequest) (*models.ArticlesResponse, error) {
	roles, err := s.ResolveRoles(ctx)
	if err != nil {
		return nil, err
	}

	values := query.ResolveValues(roles, req)
	plan := query.Build(roles, req, values)

	s.log.Debug().
		Str("source", values.Source).
		Str("tag_anatomique", values.AnatomicalTag).
		Str("tag_contenu", values.ContentTag).
		Bool("source_native", plan.Applied.Source).
		Bool("tag_anatomique_native", plan.Applied.AnatomicalTag).
		Bool("tag_contenu_native", plan.Applied.ContentTag).
		Bool("has_cursor", req.StartCursor != "").
		Msg("Querying articles")

	resp, err := s.repo.Query(ctx, plan.Request)
	if err != nil {
		return nil, fmt.Errorf("query articles: %w", err)
	}

	mapped := articles.NewMapper(roles).MapAll(resp.Results)
	kept := articles.Filter(mapped, req, plan.Applied)

	if dropped := len(mapped) - len(kept); dropped > 0 {
		s.log.Debug().
			Int("fetched", len(mapped)).
			Int("dropped", dropped).
			Msg("Applied local filters")
	}

	out := &models.ArticlesResponse{
		Articles: kept,
		HasMore:  resp.HasMore,
	}
	if resp.HasMore && resp.NextCursor != nil && *resp.NextCursor != "" {
		cursor := *resp.NextCursor
		out.NextCursor = &cursor
	}
	return out, nil
}
