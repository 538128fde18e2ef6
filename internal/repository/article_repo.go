package repository

import (
	"context"

	"github.com/kinewatch-api/internal/notion"
)

// articleRepo is the concrete implementation of ArticleRepository
type articleRepo struct {
	client     *notion.Client
	databaseID string
}

// NewArticleRepo creates a new article repository bound to one database
func NewArticleRepo(client *notion.Client, databaseID string) ArticleRepository {
	return &articleRepo{client: client, databaseID: databaseID}
}

// GetSchema fetches the declared columns of the article database
func (r *articleRepo) GetSchema(ctx context.Context) (*notion.Database, error) {
	return r.client.RetrieveDatabase(ctx, r.databaseID)
}

// Query fetches one page of records
func (r *articleRepo) Query(ctx context.Context, req *notion.QueryRequest) (*notion.QueryResponse, error) {
	return r.client.QueryDatabase(ctx, r.databaseID, req)
}
