package usecase

import (
	"errors"
	"math/rand"
	"time"

	"github.com/golang-jwt/jwt/v5"

	postdomain "snapnet-backend/internal/post/domain"
	postrepo "snapnet-backend/internal/post/repository"
	userdomain "snapnet-backend/internal/user/domain"
	userdto "snapnet-backend/internal/user/dto"
	"snapnet-backend/internal/user/repository"
	"snapnet-backend/pkg/config"
)

// UserUsecase defines the user account and auth operations
type UserUsecase interface {
	Register(req *userdto.RegisterRequest) (*userdto.TokenResponse, error)
	Login(req *userdto.LoginRequest) (*userdto.TokenResponse, error)
	Logout(userID string) error
	ValidateToken(tokenString string) (*userdomain.User, error)

	GetProfile(id string) (*userdomain.User, error)
	UpdateProfile(userID string, req *userdto.UpdateProfileRequest) (*userdomain.User, error)
	InitiatePasswordReset(email string) error
	ResetPassword(req *userdto.ResetPasswordRequest) error

	GetUserLikes(userID string) ([]postdomain.Like, error)
	GetUserComments(userID string) ([]postdomain.Comment, error)
	GetUserPosts(userID string) ([]postdomain.Post, error)
}

// RecoveryMailer delivers the password recovery key to the user
type RecoveryMailer interface {
	SendRecoveryKey(email string, recoveryKey int) error
}

// userUsecase implements UserUsecase interface
type userUsecase struct {
	userRepo  repository.UserRepository
	tokenRepo repository.DeviceTokenRepository
	postRepo  postrepo.PostRepository
	mailer    RecoveryMailer
	config    *config.Config
}

// NewUserUsecase creates a new instance of userUsecase
func NewUserUsecase(userRepo repository.UserRepository, tokenRepo repository.DeviceTokenRepository, postRepo postrepo.PostRepository, mailer RecoveryMailer, cfg *config.Config) UserUsecase {
	return &userUsecase{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		postRepo:  postRepo,
		mailer:    mailer,
		config:    cfg,
	}
}

func (u *userUsecase) Register(req *userdto.RegisterRequest) (*userdto.TokenResponse, error) {
	existing, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.New("email already registered")
	}

	hashedPassword, err := repository.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &userdomain.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hashedPassword,
		Avatar:   req.Avatar,
		About:    req.About,
	}
	if err := u.userRepo.Create(user); err != nil {
		return nil, err
	}

	if req.FCMToken != "" {
		if err := u.tokenRepo.SaveToken(user.ID, req.FCMToken); err != nil {
			return nil, err
		}
	}

	token, err := u.generateToken(user)
	if err != nil {
		return nil, err
	}

	return &userdto.TokenResponse{Token: token, User: user}, nil
}

func (u *userUsecase) Login(req *userdto.LoginRequest) (*userdto.TokenResponse, error) {
	user, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("user not found")
	}

	if !repository.CheckPasswordHash(req.Password, user.Password) {
		return nil, errors.New("invalid credentials")
	}

	if req.FCMToken != "" {
		if err := u.tokenRepo.SaveToken(user.ID, req.FCMToken); err != nil {
			return nil, err
		}
	}

	token, err := u.generateToken(user)
	if err != nil {
		return nil, err
	}

	return &userdto.TokenResponse{Token: token, User: user}, nil
}

// Logout revokes every device token the user has registered, on any device
func (u *userUsecase) Logout(userID string) error {
	return u.tokenRepo.DeleteTokensByUserID(userID)
}

func (u *userUsecase) GetProfile(id string) (*userdomain.User, error) {
	user, err := u.userRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("user not found")
	}
	return user, nil
}

func (u *userUsecase) UpdateProfile(userID string, req *userdto.UpdateProfileRequest) (*userdomain.User, error) {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("user not found")
	}

	if req.Username != "" {
		user.Username = req.Username
	}
	if req.Avatar != "" {
		user.Avatar = req.Avatar
	}
	if req.About != "" {
		user.About = req.About
	}

	if err := u.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *userUsecase) InitiatePasswordReset(email string) error {
	user, err := u.userRepo.FindByEmail(email)
	if err != nil {
		return err
	}
	if user == nil {
		return errors.New("user not found")
	}

	user.RecoveryKey = 100000 + rand.Intn(900000)
	if err := u.userRepo.Update(user); err != nil {
		return err
	}

	return u.mailer.SendRecoveryKey(user.Email, user.RecoveryKey)
}

func (u *userUsecase) ResetPassword(req *userdto.ResetPasswordRequest) error {
	user, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return err
	}
	if user == nil {
		return errors.New("user not found")
	}

	if user.RecoveryKey == 0 || user.RecoveryKey != req.RecoveryKey {
		return errors.New("invalid recovery key")
	}

	hashedPassword, err := repository.HashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	user.Password = hashedPassword
	user.RecoveryKey = 0
	return u.userRepo.Update(user)
}

func (u *userUsecase) GetUserLikes(userID string) ([]postdomain.Like, error) {
	return u.postRepo.ListLikesByUser(userID)
}

func (u *userUsecase) GetUserComments(userID string) ([]postdomain.Comment, error) {
	return u.postRepo.ListCommentsByUser(userID)
}

func (u *userUsecase) GetUserPosts(userID string) ([]postdomain.Post, error) {
	return u.postRepo.ListByAuthor(userID)
}

func (u *userUsecase) generateToken(user *userdomain.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"exp":     time.Now().Add(u.config.JWTExpiry).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(u.config.JWTSecret))
}

func (u *userUsecase) ValidateToken(tokenString string) (*userdomain.User, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(u.config.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	userID, ok := claims["user_id"].(string)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("user not found")
	}

	return user, nil
}
