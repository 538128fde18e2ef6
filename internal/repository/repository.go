package repository

import (
	"context"

	"github.com/kinewatch-api/internal/notion"
)

// ArticleRepository defines the read operations on the article database
type ArticleRepository interface {
	GetSchema(ctx context.Context) (*notion.Database, error)
	Query(ctx context.Context, req *notion.QueryRequest) (*notion.QueryResponse, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	Article ArticleRepository
}

// New creates all repositories on top of the upstream client
func New(client *notion.Client, databaseID string) *Repositories {
	return &Repositories{
		Article: NewArticleRepo(client, databaseID),
	}
}
