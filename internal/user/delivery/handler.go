package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"

	userdto "snapnet-backend/internal/user/dto"
	"snapnet-backend/internal/user/usecase"
)

// UserHandler handles user account and auth HTTP requests
type UserHandler struct {
	userUsecase usecase.UserUsecase
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userUsecase usecase.UserUsecase) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
	}
}

// Register creates a new account
// POST /api/users/register
func (h *UserHandler) Register(c *gin.Context) {
	var req userdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.userUsecase.Register(&req)
	if err != nil {
		if err.Error() == "email already registered" {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": resp.Token, "user": resp.User})
}

// Login authenticates an account
// POST /api/users/login
func (h *UserHandler) Login(c *gin.Context) {
	var req userdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.userUsecase.Login(&req)
	if err != nil {
		switch err.Error() {
		case "user not found":
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case "invalid credentials":
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": resp.Token, "user": resp.User})
}

// Logout revokes all of the user's device tokens
// POST /api/users/logout
func (h *UserHandler) Logout(c *gin.Context) {
	userID := c.GetString("userID")

	if err := h.userUsecase.Logout(userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// GetProfile returns a user's public profile
// GET /api/users/user/:id/profile
func (h *UserHandler) GetProfile(c *gin.Context) {
	user, err := h.userUsecase.GetProfile(c.Param("id"))
	if err != nil {
		if err.Error() == "user not found" {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// GetProfileByToken returns the authenticated user's profile
// GET /api/users/user-by-token
func (h *UserHandler) GetProfileByToken(c *gin.Context) {
	user, err := h.userUsecase.GetProfile(c.GetString("userID"))
	if err != nil {
		if err.Error() == "user not found" {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// UpdateProfile updates the authenticated user's profile
// PUT /api/users/user
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req userdto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userUsecase.UpdateProfile(c.GetString("userID"), &req)
	if err != nil {
		if err.Error() == "user not found" {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// InitPasswordReset mails a recovery key to the account's email
// POST /api/users/init-reset-password
func (h *UserHandler) InitPasswordReset(c *gin.Context) {
	var req userdto.InitPasswordResetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.userUsecase.InitiatePasswordReset(req.Email); err != nil {
		if err.Error() == "user not found" {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Recovery key sent to email"})
}

// ResetPassword sets a new password after validating the recovery key
// POST /api/users/reset-password
func (h *UserHandler) ResetPassword(c *gin.Context) {
	var req userdto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.userUsecase.ResetPassword(&req); err != nil {
		switch err.Error() {
		case "user not found":
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case "invalid recovery key":
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password successfully reset"})
}

// GetUserLikes lists a user's likes with their posts
// GET /api/users/user/:id/likes
func (h *UserHandler) GetUserLikes(c *gin.Context) {
	likes, err := h.userUsecase.GetUserLikes(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"likes": likes})
}

// GetUserComments lists a user's comments with their posts
// GET /api/users/user/:id/comments
func (h *UserHandler) GetUserComments(c *gin.Context) {
	comments, err := h.userUsecase.GetUserComments(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// GetUserPosts lists a user's posts
// GET /api/users/user/:id/posts
func (h *UserHandler) GetUserPosts(c *gin.Context) {
	posts, err := h.userUsecase.GetUserPosts(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": posts})
}
