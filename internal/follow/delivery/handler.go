package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"snapnet-backend/internal/follow/usecase"
)

// FollowHandler handles follow graph HTTP requests
type FollowHandler struct {
	followUsecase usecase.FollowUsecase
}

// NewFollowHandler creates a new FollowHandler
func NewFollowHandler(followUsecase usecase.FollowUsecase) *FollowHandler {
	return &FollowHandler{
		followUsecase: followUsecase,
	}
}

type toggleFollowRequest struct {
	UserID string `json:"userId" binding:"required"`
}

// ToggleFollow follows the target user, or unfollows when already following
// POST /api/follow
func (h *FollowHandler) ToggleFollow(c *gin.Context) {
	var req toggleFollowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	followed, err := h.followUsecase.ToggleFollow(c.GetString("userID"), req.UserID)
	if err != nil {
		switch err.Error() {
		case "user not found":
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case "cannot follow yourself":
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"followed": followed})
}

// GetFollowers lists the users following the given user
// GET /api/follow/followers/:id
func (h *FollowHandler) GetFollowers(c *gin.Context) {
	followers, err := h.followUsecase.GetFollowers(c.Param("id"))
	if err != nil {
		if err.Error() == "user not found" {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"followers": followers})
}

// GetFollowing lists the users the given user follows
// GET /api/follow/following/:id
func (h *FollowHandler) GetFollowing(c *gin.Context) {
	following, err := h.followUsecase.GetFollowing(c.Param("id"))
	if err != nil {
		if err.Error() == "user not found" {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"following": following})
}
