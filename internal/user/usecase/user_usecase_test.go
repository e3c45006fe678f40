package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	postrepo "snapnet-backend/internal/post/repository"
	userdomain "snapnet-backend/internal/user/domain"
	userdto "snapnet-backend/internal/user/dto"
	"snapnet-backend/internal/user/repository"
	"snapnet-backend/pkg/config"
)

type fakeUserRepo struct {
	byEmail map[string]*userdomain.User
	byID    map[string]*userdomain.User
	created []*userdomain.User
	updated []*userdomain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: map[string]*userdomain.User{},
		byID:    map[string]*userdomain.User{},
	}
}

func (f *fakeUserRepo) add(user *userdomain.User) {
	f.byEmail[user.Email] = user
	f.byID[user.ID] = user
}

func (f *fakeUserRepo) Create(user *userdomain.User) error {
	user.ID = "user-" + user.Username
	f.created = append(f.created, user)
	f.add(user)
	return nil
}

func (f *fakeUserRepo) FindByID(id string) (*userdomain.User, error) {
	return f.byID[id], nil
}

func (f *fakeUserRepo) FindByEmail(email string) (*userdomain.User, error) {
	return f.byEmail[email], nil
}

func (f *fakeUserRepo) Update(user *userdomain.User) error {
	f.updated = append(f.updated, user)
	f.add(user)
	return nil
}

func (f *fakeUserRepo) Search(string, int, int) ([]userdomain.User, int64, error) {
	return nil, 0, nil
}

type fakeTokenRepo struct {
	saved   map[string][]string
	deleted []string
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{saved: map[string][]string{}}
}

func (f *fakeTokenRepo) SaveToken(userID, token string) error {
	f.saved[userID] = append(f.saved[userID], token)
	return nil
}

func (f *fakeTokenRepo) GetTokensByUserID(userID string) ([]userdomain.DeviceToken, error) {
	tokens := make([]userdomain.DeviceToken, 0, len(f.saved[userID]))
	for _, token := range f.saved[userID] {
		tokens = append(tokens, userdomain.DeviceToken{UserID: userID, Token: token})
	}
	return tokens, nil
}

func (f *fakeTokenRepo) DeleteTokensByUserID(userID string) error {
	f.deleted = append(f.deleted, userID)
	delete(f.saved, userID)
	return nil
}

// fakePostRepo embeds the interface; user flows under test never touch it
// beyond the listing helpers
type fakePostRepo struct {
	postrepo.PostRepository
}

type fakeMailer struct {
	sentTo   []string
	sentKeys []int
	err      error
}

func (f *fakeMailer) SendRecoveryKey(email string, recoveryKey int) error {
	if f.err != nil {
		return f.err
	}
	f.sentTo = append(f.sentTo, email)
	f.sentKeys = append(f.sentKeys, recoveryKey)
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret: "test-secret",
		JWTExpiry: time.Hour,
	}
}

func newTestUsecase() (UserUsecase, *fakeUserRepo, *fakeTokenRepo, *fakeMailer) {
	userRepo := newFakeUserRepo()
	tokenRepo := newFakeTokenRepo()
	mailer := &fakeMailer{}
	uc := NewUserUsecase(userRepo, tokenRepo, &fakePostRepo{}, mailer, testConfig())
	return uc, userRepo, tokenRepo, mailer
}

func registeredUser(t *testing.T, userRepo *fakeUserRepo) *userdomain.User {
	t.Helper()
	hashed, err := repository.HashPassword("hunter22")
	assert.NoError(t, err)
	user := &userdomain.User{ID: "user-1", Username: "alice", Email: "alice@example.com", Password: hashed}
	userRepo.add(user)
	return user
}

func TestRegister_CreatesUserAndSavesDeviceToken(t *testing.T) {
	uc, userRepo, tokenRepo, _ := newTestUsecase()

	resp, err := uc.Register(&userdto.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "hunter22",
		FCMToken: "device-token-1",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Len(t, userRepo.created, 1)
	assert.NotEqual(t, "hunter22", userRepo.created[0].Password)
	assert.Equal(t, []string{"device-token-1"}, tokenRepo.saved[resp.User.ID])
}

func TestRegister_DuplicateEmail(t *testing.T) {
	uc, userRepo, _, _ := newTestUsecase()
	registeredUser(t, userRepo)

	_, err := uc.Register(&userdto.RegisterRequest{
		Username: "alice2",
		Email:    "alice@example.com",
		Password: "hunter22",
	})

	assert.EqualError(t, err, "email already registered")
}

func TestLogin_SavesDeviceTokenWhenProvided(t *testing.T) {
	uc, userRepo, tokenRepo, _ := newTestUsecase()
	user := registeredUser(t, userRepo)

	resp, err := uc.Login(&userdto.LoginRequest{
		Email:    "alice@example.com",
		Password: "hunter22",
		FCMToken: "device-token-2",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, []string{"device-token-2"}, tokenRepo.saved[user.ID])
}

func TestLogin_NoTokenNoSave(t *testing.T) {
	uc, userRepo, tokenRepo, _ := newTestUsecase()
	registeredUser(t, userRepo)

	_, err := uc.Login(&userdto.LoginRequest{
		Email:    "alice@example.com",
		Password: "hunter22",
	})

	assert.NoError(t, err)
	assert.Empty(t, tokenRepo.saved)
}

func TestLogin_WrongPassword(t *testing.T) {
	uc, userRepo, _, _ := newTestUsecase()
	registeredUser(t, userRepo)

	_, err := uc.Login(&userdto.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong",
	})

	assert.EqualError(t, err, "invalid credentials")
}

func TestLogout_RevokesEveryDeviceToken(t *testing.T) {
	uc, userRepo, tokenRepo, _ := newTestUsecase()
	user := registeredUser(t, userRepo)
	assert.NoError(t, tokenRepo.SaveToken(user.ID, "device-token-1"))
	assert.NoError(t, tokenRepo.SaveToken(user.ID, "device-token-2"))

	assert.NoError(t, uc.Logout(user.ID))

	tokens, err := tokenRepo.GetTokensByUserID(user.ID)
	assert.NoError(t, err)
	assert.Empty(t, tokens)
	assert.Equal(t, []string{user.ID}, tokenRepo.deleted)
}

func TestValidateToken_RoundTrip(t *testing.T) {
	uc, userRepo, _, _ := newTestUsecase()
	user := registeredUser(t, userRepo)

	resp, err := uc.Login(&userdto.LoginRequest{Email: user.Email, Password: "hunter22"})
	assert.NoError(t, err)

	validated, err := uc.ValidateToken(resp.Token)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, validated.ID)
}

func TestValidateToken_Garbage(t *testing.T) {
	uc, _, _, _ := newTestUsecase()

	_, err := uc.ValidateToken("not-a-jwt")
	assert.Error(t, err)
}

func TestInitiatePasswordReset_StoresAndMailsKey(t *testing.T) {
	uc, userRepo, _, mailer := newTestUsecase()
	user := registeredUser(t, userRepo)

	assert.NoError(t, uc.InitiatePasswordReset(user.Email))

	assert.Equal(t, []string{user.Email}, mailer.sentTo)
	assert.Len(t, mailer.sentKeys, 1)
	assert.GreaterOrEqual(t, mailer.sentKeys[0], 100000)
	assert.LessOrEqual(t, mailer.sentKeys[0], 999999)
	assert.Equal(t, mailer.sentKeys[0], user.RecoveryKey)
}

func TestResetPassword_ValidKey(t *testing.T) {
	uc, userRepo, _, _ := newTestUsecase()
	user := registeredUser(t, userRepo)
	user.RecoveryKey = 123456

	err := uc.ResetPassword(&userdto.ResetPasswordRequest{
		Email:       user.Email,
		RecoveryKey: 123456,
		NewPassword: "newpass99",
	})

	assert.NoError(t, err)
	assert.Zero(t, user.RecoveryKey)
	assert.True(t, repository.CheckPasswordHash("newpass99", user.Password))
}

func TestResetPassword_InvalidKey(t *testing.T) {
	uc, userRepo, _, _ := newTestUsecase()
	user := registeredUser(t, userRepo)
	user.RecoveryKey = 123456

	err := uc.ResetPassword(&userdto.ResetPasswordRequest{
		Email:       user.Email,
		RecoveryKey: 654321,
		NewPassword: "newpass99",
	})

	assert.EqualError(t, err, "invalid recovery key")
}

func TestResetPassword_NoPendingKey(t *testing.T) {
	uc, userRepo, _, _ := newTestUsecase()
	user := registeredUser(t, userRepo)

	err := uc.ResetPassword(&userdto.ResetPasswordRequest{
		Email:       user.Email,
		RecoveryKey: 0,
		NewPassword: "newpass99",
	})

	assert.EqualError(t, err, "invalid recovery key")
}

func TestInitiatePasswordReset_MailerFailureSurfaces(t *testing.T) {
	uc, userRepo, _, mailer := newTestUsecase()
	user := registeredUser(t, userRepo)
	mailer.err = errors.New("sendgrid unavailable")

	assert.Error(t, uc.InitiatePasswordReset(user.Email))
}
