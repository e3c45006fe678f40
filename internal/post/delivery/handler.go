package delivery

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"snapnet-backend/internal/post/usecase"
)

// PostHandler handles post, like and comment HTTP requests
type PostHandler struct {
	postUsecase usecase.PostUsecase
	pageSize    int
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postUsecase usecase.PostUsecase, pageSize int) *PostHandler {
	return &PostHandler{
		postUsecase: postUsecase,
		pageSize:    pageSize,
	}
}

type createPostRequest struct {
	Image       string `json:"image" binding:"required"`
	Caption     string `json:"caption"`
	Description string `json:"description"`
}

type updatePostRequest struct {
	Image       string `json:"image"`
	Caption     string `json:"caption"`
	Description string `json:"description"`
}

type addCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// CreatePost creates a new post
// POST /api/posts
func (h *PostHandler) CreatePost(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.postUsecase.CreatePost(c.GetString("userID"), req.Image, req.Caption, req.Description)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"post": post})
}

// GetFeed returns followed authors' posts first, then the rest
// GET /api/posts/feed/user
func (h *PostHandler) GetFeed(c *gin.Context) {
	page := h.pageParam(c)

	posts, totalPages, err := h.postUsecase.GetFeed(c.GetString("userID"), page, h.pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts, "totalPages": totalPages})
}

// Explore returns all posts newest first
// GET /api/posts/explore
func (h *PostHandler) Explore(c *gin.Context) {
	page := h.pageParam(c)

	posts, totalPages, err := h.postUsecase.Explore(page, h.pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts, "totalPages": totalPages})
}

// GetPost returns a post with its author, likes and comments
// GET /api/posts/:id
func (h *PostHandler) GetPost(c *gin.Context) {
	post, err := h.postUsecase.GetPostByID(c.Param("id"))
	if err != nil {
		if err.Error() == "post not found" {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"post": post})
}

// UpdatePost edits a post owned by the caller
// PUT /api/posts/:id
func (h *PostHandler) UpdatePost(c *gin.Context) {
	var req updatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := h.postUsecase.UpdatePost(c.GetString("userID"), c.Param("id"), req.Image, req.Caption, req.Description)
	if err != nil {
		switch err.Error() {
		case "post not found":
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case "forbidden":
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"post": post})
}

// DeletePost removes a post owned by the caller
// DELETE /api/posts/:id
func (h *PostHandler) DeletePost(c *gin.Context) {
	if err := h.postUsecase.DeletePost(c.GetString("userID"), c.Param("id")); err != nil {
		switch err.Error() {
		case "post not found":
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case "forbidden":
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// LikePost likes a post on behalf of the caller
// POST /api/posts/:id/like
func (h *PostHandler) LikePost(c *gin.Context) {
	post, err := h.postUsecase.LikePost(c.GetString("userID"), c.Param("id"))
	if err != nil {
		switch err.Error() {
		case "post not found":
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case "post already liked":
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"post": post})
}

// UnlikePost removes the caller's like from a post
// POST /api/posts/:id/unlike
func (h *PostHandler) UnlikePost(c *gin.Context) {
	if err := h.postUsecase.UnlikePost(c.GetString("userID"), c.Param("id")); err != nil {
		switch err.Error() {
		case "post not found":
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case "post not liked":
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// AddComment adds a comment to a post
// POST /api/posts/:id/comment
func (h *PostHandler) AddComment(c *gin.Context) {
	var req addCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.postUsecase.AddComment(c.GetString("userID"), c.Param("id"), req.Content)
	if err != nil {
		if err.Error() == "post not found" {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}

// DeleteComment removes a comment, allowed for its author or the post's author
// DELETE /api/posts/:postId/comment/:commentId
func (h *PostHandler) DeleteComment(c *gin.Context) {
	if err := h.postUsecase.DeleteComment(c.GetString("userID"), c.Param("commentId")); err != nil {
		switch err.Error() {
		case "comment not found":
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case "forbidden":
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *PostHandler) pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
