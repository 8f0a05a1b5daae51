package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"restaurant_cms/internal/domain/models"
	"restaurant_cms/internal/lib/logger/sl"
	"restaurant_cms/internal/repository"
	"restaurant_cms/internal/storage"
	"restaurant_cms/internal/transport/http/dto"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
)

type UserService struct {
	log  *slog.Logger
	repo repository.UserRepository
}

func NewUserService(log *slog.Logger, repo repository.UserRepository) *UserService {
	return &UserService{
		log:  log,
		repo: repo,
	}
}

// RegisterNewUser hashes the password and stores the user.
func (s *UserService) RegisterNewUser(ctx context.Context, req dto.RegisterRequest) (uuid.UUID, error) {
	const op = "service.UserService.RegisterNewUser"
	log := s.log.With(
		slog.String("op", op),
		slog.String("email", req.Email),
	)

	log.Info("registering user")

	passHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Error("failed to hash password", sl.Err(err))
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	id, err := s.repo.SaveUser(ctx, models.User{
		Name:     req.Name,
		Email:    req.Email,
		PassHash: passHash,
	})
	if err != nil {
		if errors.Is(err, storage.ErrUserExists) {
			log.Warn("user already exists")
			return uuid.Nil, fmt.Errorf("%s: %w", op, ErrUserExists)
		}

		log.Error("failed to save user", sl.Err(err))
		return uuid.Nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info("user registered", slog.String("user_id", id.String()))

	return id, nil
}

// Login checks the credentials and returns the stored user.
func (s *UserService) Login(ctx context.Context, email, password string) (models.User, error) {
	const op = "service.UserService.Login"
	log := s.log.With(
		slog.String("op", op),
		slog.String("email", email),
	)

	user, err := s.repo.UserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			log.Warn("user not found")
			return models.User{}, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
		}

		log.Error("failed to get user", sl.Err(err))
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := bcrypt.CompareHashAndPassword(user.PassHash, []byte(password)); err != nil {
		log.Warn("invalid password")
		return models.User{}, fmt.Errorf("%s: %w", op, ErrInvalidCredentials)
	}

	log.Info("user logged in", slog.String("user_id", user.ID.String()))

	return user, nil
}

func (s *UserService) UserByID(ctx context.Context, id uuid.UUID) (models.User, error) {
	const op = "service.UserService.UserByID"

	user, err := s.repo.UserByID(ctx, id)
	if err != nil {
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}
