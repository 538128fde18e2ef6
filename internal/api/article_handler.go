package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kinewatch-api/internal/config"
	"github.com/kinewatch-api/internal/models"
	"github.com/kinewatch-api/internal/service"
	"github.com/rs/zerolog"
)

// maxRequestBody bounds the JSON filter body
const maxRequestBody = 64 << 10

// ArticleHandler handles feed endpoints
type ArticleHandler struct {
	services *service.Services
	cfg      *config.Config
	log      zerolog.Logger
}

// NewArticleHandler creates a new ArticleHandler
func NewArticleHandler(services *service.Services, cfg *config.Config, log zerolog.Logger) *ArticleHandler {
	return &ArticleHandler{
		services: services,
		cfg:      cfg,
		log:      log.With().Str("handler", "article").Logger(),
	}
}

// ListArticles handles POST /notion-articles and POST /v1/articles
// Body: {start_cursor?, source?, tag_anatomique?, tag_contenu?}
func (h *ArticleHandler) ListArticles(c *gin.Context) {
	var body []byte
	if c.Request.Body != nil {
		// A body that cannot be read is treated like an empty one
		body, _ = io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxRequestBody))
	}
	h.respond(c, models.ParseFilterRequest(body))
}

// ListArticlesQuery handles GET /v1/articles?source=...&tag_anatomique=...
func (h *ArticleHandler) ListArticlesQuery(c *gin.Context) {
	h.respond(c, models.NewFilterRequest(
		c.Query("start_cursor"),
		c.Query("source"),
		c.Query("tag_anatomique"),
		c.Query("tag_contenu"),
	))
}

func (h *ArticleHandler) respond(c *gin.Context, req models.FilterRequest) {
	if !h.cfg.Notion.HasCredential() {
		h.log.Error().Msg("NOTION_API_KEY not configured")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "NOTION_API_KEY not configured"})
		return
	}

	resp, err := h.services.Article.ListArticles(c.Request.Context(), req)
	if err != nil {
		h.log.Error().
			Err(err).
			Str("request_id", c.GetString("request_id")).
			Str("source", req.Source).
			Str("tag_anatomique", req.AnatomicalTag).
			Str("tag_contenu", req.ContentTag).
			Msg("Failed to fetch articles")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch articles"})
		return
	}

	c.JSON(http.StatusOK, resp)
}
