package dto

import userdomain "snapnet-backend/internal/user/domain"

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Avatar   string `json:"avatar"`
	About    string `json:"about"`
	FCMToken string `json:"fcmToken"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	FCMToken string `json:"fcmToken"`
}

type UpdateProfileRequest struct {
	Username string `json:"username"`
	Avatar   string `json:"avatar"`
	About    string `json:"about"`
}

type InitPasswordResetRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	RecoveryKey int    `json:"recoveryKey" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

type TokenResponse struct {
	Token string           `json:"token"`
	User  *userdomain.User `json:"user"`
}
