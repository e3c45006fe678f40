package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	followdomain "snapnet-backend/internal/follow/domain"
	"snapnet-backend/internal/notification"
	postdomain "snapnet-backend/internal/post/domain"
	shopdomain "snapnet-backend/internal/shop/domain"
	userdomain "snapnet-backend/internal/user/domain"
)

type fakeFollowRepo struct {
	edges map[string]*followdomain.Follow
}

func edgeKey(followerID, followingID string) string {
	return followerID + "->" + followingID
}

func newFakeFollowRepo() *fakeFollowRepo {
	return &fakeFollowRepo{edges: map[string]*followdomain.Follow{}}
}

func (f *fakeFollowRepo) Find(followerID, followingID string) (*followdomain.Follow, error) {
	return f.edges[edgeKey(followerID, followingID)], nil
}

func (f *fakeFollowRepo) Create(follow *followdomain.Follow) error {
	f.edges[edgeKey(follow.FollowerID, follow.FollowingID)] = follow
	return nil
}

func (f *fakeFollowRepo) Delete(followerID, followingID string) error {
	delete(f.edges, edgeKey(followerID, followingID))
	return nil
}

func (f *fakeFollowRepo) ListFollowers(userID string) ([]userdomain.User, error) {
	return nil, nil
}

func (f *fakeFollowRepo) ListFollowing(userID string) ([]userdomain.User, error) {
	return nil, nil
}

type fakeUserRepo struct {
	users map[string]*userdomain.User
}

func (f *fakeUserRepo) Create(user *userdomain.User) error { return nil }

func (f *fakeUserRepo) FindByID(id string) (*userdomain.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) FindByEmail(email string) (*userdomain.User, error) { return nil, nil }

func (f *fakeUserRepo) Update(user *userdomain.User) error { return nil }

func (f *fakeUserRepo) Search(string, int, int) ([]userdomain.User, int64, error) {
	return nil, 0, nil
}

type nullPosts struct{}

func (nullPosts) FindByID(string) (*postdomain.Post, error) { return nil, nil }

type nullProducts struct{}

func (nullProducts) FindProductByID(string) (*shopdomain.Product, error) { return nil, nil }

type nullTokens struct{}

func (nullTokens) GetTokensByUserID(string) ([]userdomain.DeviceToken, error) { return nil, nil }

func newTestFollowUsecase() (FollowUsecase, *fakeFollowRepo) {
	followRepo := newFakeFollowRepo()
	userRepo := &fakeUserRepo{users: map[string]*userdomain.User{
		"user-a": {ID: "user-a", Username: "alice"},
		"user-b": {ID: "user-b", Username: "bob"},
	}}
	notifier := notification.NewService(userRepo, nullPosts{}, nullProducts{}, nullTokens{}, nil)
	return NewFollowUsecase(followRepo, userRepo, notifier), followRepo
}

func TestToggleFollow_CreatesEdge(t *testing.T) {
	uc, followRepo := newTestFollowUsecase()

	followed, err := uc.ToggleFollow("user-a", "user-b")

	assert.NoError(t, err)
	assert.True(t, followed)
	edge, _ := followRepo.Find("user-a", "user-b")
	assert.NotNil(t, edge)
}

func TestToggleFollow_SecondCallUnfollows(t *testing.T) {
	uc, followRepo := newTestFollowUsecase()

	_, err := uc.ToggleFollow("user-a", "user-b")
	assert.NoError(t, err)

	followed, err := uc.ToggleFollow("user-a", "user-b")

	assert.NoError(t, err)
	assert.False(t, followed)
	edge, _ := followRepo.Find("user-a", "user-b")
	assert.Nil(t, edge)
}

func TestToggleFollow_SelfFollowRejected(t *testing.T) {
	uc, _ := newTestFollowUsecase()

	_, err := uc.ToggleFollow("user-a", "user-a")

	assert.EqualError(t, err, "cannot follow yourself")
}

func TestToggleFollow_UnknownTarget(t *testing.T) {
	uc, _ := newTestFollowUsecase()

	_, err := uc.ToggleFollow("user-a", "ghost")

	assert.EqualError(t, err, "user not found")
}

func TestToggleFollow_OneDirectionOnly(t *testing.T) {
	uc, followRepo := newTestFollowUsecase()

	_, err := uc.ToggleFollow("user-a", "user-b")
	assert.NoError(t, err)

	// the reverse edge is independent
	followed, err := uc.ToggleFollow("user-b", "user-a")
	assert.NoError(t, err)
	assert.True(t, followed)

	edgeAB, _ := followRepo.Find("user-a", "user-b")
	edgeBA, _ := followRepo.Find("user-b", "user-a")
	assert.NotNil(t, edgeAB)
	assert.NotNil(t, edgeBA)
}
