package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	followdomain "snapnet-backend/internal/follow/domain"
	userdomain "snapnet-backend/internal/user/domain"
)

// FollowRepository defines the interface for follow graph persistence
type FollowRepository interface {
	Find(followerID, followingID string) (*followdomain.Follow, error)
	Create(follow *followdomain.Follow) error
	Delete(followerID, followingID string) error
	ListFollowers(userID string) ([]userdomain.User, error)
	ListFollowing(userID string) ([]userdomain.User, error)
}

// followRepository implements FollowRepository using GORM
type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository creates a new instance of followRepository
func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{
		db: db,
	}
}

func (r *followRepository) Find(followerID, followingID string) (*followdomain.Follow, error) {
	var follow followdomain.Follow
	err := r.db.Where("follower_id = ? AND following_id = ?", followerID, followingID).First(&follow).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &follow, nil
}

func (r *followRepository) Create(follow *followdomain.Follow) error {
	follow.CreatedAt = time.Now()
	return r.db.Create(follow).Error
}

func (r *followRepository) Delete(followerID, followingID string) error {
	return r.db.Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&followdomain.Follow{}).Error
}

// ListFollowers returns the users that follow userID
func (r *followRepository) ListFollowers(userID string) ([]userdomain.User, error) {
	var users []userdomain.User
	err := r.db.Model(&userdomain.User{}).
		Joins("JOIN follows ON follows.follower_id = users.id").
		Where("follows.following_id = ?", userID).
		Find(&users).Error
	return users, err
}

// ListFollowing returns the users that userID follows
func (r *followRepository) ListFollowing(userID string) ([]userdomain.User, error) {
	var users []userdomain.User
	err := r.db.Model(&userdomain.User{}).
		Joins("JOIN follows ON follows.following_id = users.id").
		Where("follows.follower_id = ?", userID).
		Find(&users).Error
	return users, err
}
