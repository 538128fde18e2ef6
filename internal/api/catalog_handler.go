package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kinewatch-api/internal/catalog"
	"github.com/rs/zerolog"
)

// CatalogHandler serves the client filter vocabulary
type CatalogHandler struct {
	vocab *catalog.Vocabulary
	log   zerolog.Logger
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(vocab *catalog.Vocabulary, log zerolog.Logger) *CatalogHandler {
	return &CatalogHandler{
		vocab: vocab,
		log:   log.With().Str("handler", "catalog").Logger(),
	}
}

// GetVocabulary handles GET /v1/vocabulary
func (h *CatalogHandler) GetVocabulary(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"sources":         h.vocab.SourceOptions(),
		"tags_anatomique": h.vocab.AnatomicalOptions(),
		"tags_contenu":    h.vocab.ContentOptions(),
		"logos":           h.vocab.Logos(),
	})
}

// LookupSource handles GET /v1/sources/lookup?name=...
func (h *CatalogHandler) LookupSource(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name parameter is required"})
		return
	}

	source, ok := h.vocab.LookupSource(name)
	if !ok {
		h.log.Debug().Str("name", name).Msg("Unknown source")
		c.JSON(http.StatusOK, gin.H{"display_name": name, "logo": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{"display_name": source.Name, "logo": source.Logo})
}
