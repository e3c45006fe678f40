package usecase

import (
	"errors"

	followdomain "snapnet-backend/internal/follow/domain"
	"snapnet-backend/internal/follow/repository"
	"snapnet-backend/internal/notification"
	userdomain "snapnet-backend/internal/user/domain"
	userrepo "snapnet-backend/internal/user/repository"
)

// FollowUsecase defines follow graph operations
type FollowUsecase interface {
	ToggleFollow(userID, targetID string) (followed bool, err error)
	GetFollowers(userID string) ([]userdomain.User, error)
	GetFollowing(userID string) ([]userdomain.User, error)
}

// followUsecase implements FollowUsecase interface
type followUsecase struct {
	followRepo repository.FollowRepository
	userRepo   userrepo.UserRepository
	notifier   *notification.Service
}

// NewFollowUsecase creates a new instance of followUsecase
func NewFollowUsecase(followRepo repository.FollowRepository, userRepo userrepo.UserRepository, notifier *notification.Service) FollowUsecase {
	return &followUsecase{
		followRepo: followRepo,
		userRepo:   userRepo,
		notifier:   notifier,
	}
}

// ToggleFollow follows the target when no edge exists and unfollows
// otherwise. A new edge raises the Follow event once the write commits.
func (u *followUsecase) ToggleFollow(userID, targetID string) (bool, error) {
	target, err := u.userRepo.FindByID(targetID)
	if err != nil {
		return false, err
	}
	if target == nil {
		return false, errors.New("user not found")
	}
	if userID == targetID {
		return false, errors.New("cannot follow yourself")
	}

	existing, err := u.followRepo.Find(userID, targetID)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, u.followRepo.Delete(userID, targetID)
	}

	follow := &followdomain.Follow{FollowerID: userID, FollowingID: targetID}
	if err := u.followRepo.Create(follow); err != nil {
		return false, err
	}

	go u.notifier.UserFollowed(userID, targetID)

	return true, nil
}

func (u *followUsecase) GetFollowers(userID string) ([]userdomain.User, error) {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("user not found")
	}
	return u.followRepo.ListFollowers(userID)
}

func (u *followUsecase) GetFollowing(userID string) ([]userdomain.User, error) {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("user not found")
	}
	return u.followRepo.ListFollowing(userID)
}
