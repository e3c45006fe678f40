package delivery

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"snapnet-backend/internal/search/usecase"
)

// SearchHandler handles search HTTP requests
type SearchHandler struct {
	searchUsecase usecase.SearchUsecase
	pageSize      int
}

// NewSearchHandler creates a new SearchHandler
func NewSearchHandler(searchUsecase usecase.SearchUsecase, pageSize int) *SearchHandler {
	return &SearchHandler{
		searchUsecase: searchUsecase,
		pageSize:      pageSize,
	}
}

// SearchUsers searches users by username or email substring
// GET /api/search/users?query=...
func (h *SearchHandler) SearchUsers(c *gin.Context) {
	query, page := h.queryParams(c)

	users, totalPages, err := h.searchUsecase.SearchUsers(query, page, h.pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users, "totalPages": totalPages})
}

// SearchPosts searches posts by caption or description substring
// GET /api/search/posts?query=...
func (h *SearchHandler) SearchPosts(c *gin.Context) {
	query, page := h.queryParams(c)

	posts, totalPages, err := h.searchUsecase.SearchPosts(query, page, h.pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts, "totalPages": totalPages})
}

// SearchProducts searches products by name or description substring
// GET /api/search/products?query=...
func (h *SearchHandler) SearchProducts(c *gin.Context) {
	query, page := h.queryParams(c)

	products, totalPages, err := h.searchUsecase.SearchProducts(query, page, h.pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products, "totalPages": totalPages})
}

func (h *SearchHandler) queryParams(c *gin.Context) (string, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	return c.Query("query"), page
}
