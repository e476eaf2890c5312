package handler

import (
	"net/http"
	"strings"

	"estate-search/internal/model"
	"estate-search/internal/service"

	"github.com/gin-gonic/gin"
)

// SearchHandler handles search-related HTTP requests
type SearchHandler struct {
	searchService *service.SearchService
	currency      string
}

// NewSearchHandler creates a new search handler; currency is echoed in every search response
func NewSearchHandler(searchService *service.SearchService, currency string) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
		currency:      currency,
	}
}

// Search handles POST /api/v1/search
func (h *SearchHandler) Search(c *gin.Context) {
	var req model.SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if strings.TrimSpace(req.Query) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query must not be blank"})
		return
	}

	// Extraction failures are reported in the body's warning field, never as an error status
	resp := h.searchService.Search(c.Request.Context(), req.Query)
	resp.Currency = h.currency
	c.JSON(http.StatusOK, resp)
}

// ListListings handles GET /api/v1/listings
func (h *SearchHandler) ListListings(c *gin.Context) {
	listings := h.searchService.Listings()
	c.JSON(http.StatusOK, model.ListingsResponse{
		Listings: listings,
		Total:    len(listings),
	})
}
