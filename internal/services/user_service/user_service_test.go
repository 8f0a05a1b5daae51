package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"restaurant_cms/internal/domain/models"
	"restaurant_cms/internal/storage"
	"restaurant_cms/internal/transport/http/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user models.User) (uuid.UUID, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockUserRepository) UserByEmail(ctx context.Context, email string) (models.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *MockUserRepository) UserByID(ctx context.Context, id uuid.UUID) (models.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.User), args.Error(1)
}

var (
	testCtx = context.Background()
	testLog = slog.New(slog.NewTextHandler(io.Discard, nil))
)

func TestRegisterNewUser_Success(t *testing.T) {
	repo := new(MockUserRepository)
	service := NewUserService(testLog, repo)

	id := uuid.New()
	repo.On("SaveUser", testCtx, mock.MatchedBy(func(user models.User) bool {
		return user.Email == "chef@example.com" &&
			bcrypt.CompareHashAndPassword(user.PassHash, []byte("secret-pass")) == nil
	})).Return(id, nil).Once()

	got, err := service.RegisterNewUser(testCtx, dto.RegisterRequest{
		Name:     "Chef",
		Email:    "chef@example.com",
		Password: "secret-pass",
	})

	assert.NoError(t, err)
	assert.Equal(t, id, got)
	repo.AssertExpectations(t)
}

func TestRegisterNewUser_AlreadyExists(t *testing.T) {
	repo := new(MockUserRepository)
	service := NewUserService(testLog, repo)

	repo.On("SaveUser", testCtx, mock.Anything).
		Return(uuid.Nil, storage.ErrUserExists).Once()

	_, err := service.RegisterNewUser(testCtx, dto.RegisterRequest{
		Name:     "Chef",
		Email:    "chef@example.com",
		Password: "secret-pass",
	})

	assert.ErrorIs(t, err, ErrUserExists)
	repo.AssertExpectations(t)
}

func TestLogin_Success(t *testing.T) {
	repo := new(MockUserRepository)
	service := NewUserService(testLog, repo)

	passHash, _ := bcrypt.GenerateFromPassword([]byte("secret-pass"), bcrypt.DefaultCost)
	stored := models.User{ID: uuid.New(), Email: "chef@example.com", PassHash: passHash}

	repo.On("UserByEmail", testCtx, "chef@example.com").Return(stored, nil).Once()

	user, err := service.Login(testCtx, "chef@example.com", "secret-pass")

	assert.NoError(t, err)
	assert.Equal(t, stored.ID, user.ID)
	repo.AssertExpectations(t)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := new(MockUserRepository)
	service := NewUserService(testLog, repo)

	passHash, _ := bcrypt.GenerateFromPassword([]byte("secret-pass"), bcrypt.DefaultCost)
	stored := models.User{ID: uuid.New(), Email: "chef@example.com", PassHash: passHash}

	repo.On("UserByEmail", testCtx, "chef@example.com").Return(stored, nil).Once()

	_, err := service.Login(testCtx, "chef@example.com", "wrong-pass")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownUser(t *testing.T) {
	repo := new(MockUserRepository)
	service := NewUserService(testLog, repo)

	repo.On("UserByEmail", testCtx, "ghost@example.com").
		Return(models.User{}, storage.ErrUserNotFound).Once()

	_, err := service.Login(testCtx, "ghost@example.com", "whatever")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_RepoErrorSurfaces(t *testing.T) {
	repo := new(MockUserRepository)
	service := NewUserService(testLog, repo)

	expectedErr := errors.New("db down")
	repo.On("UserByEmail", testCtx, "chef@example.com").
		Return(models.User{}, expectedErr).Once()

	_, err := service.Login(testCtx, "chef@example.com", "secret-pass")

	assert.ErrorIs(t, err, expectedErr)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestUserByID_UnknownUser(t *testing.T) {
	repo := new(MockUserRepository)
	service := NewUserService(testLog, repo)

	id := uuid.New()
	repo.On("UserByID", testCtx, id).
		Return(models.User{}, storage.ErrUserNotFound).Once()

	_, err := service.UserByID(testCtx, id)

	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}
