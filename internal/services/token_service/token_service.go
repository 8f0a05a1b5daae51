package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"restaurant_cms/internal/domain/models"
	libjwt "restaurant_cms/internal/lib/jwt"
	"restaurant_cms/internal/lib/logger/sl"
	"restaurant_cms/internal/repository"
)

var (
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidTokenClaims = errors.New("invalid token claims")
)

type TokenService struct {
	log        *slog.Logger
	repo       repository.TokenRepository
	secret     string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewTokenService(log *slog.Logger, repo repository.TokenRepository, secret string, accessTTL, refreshTTL time.Duration) *TokenService {
	return &TokenService{
		log:        log,
		repo:       repo,
		secret:     secret,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// GenerateTokens mints an access/refresh pair and stores the refresh token.
func (s *TokenService) GenerateTokens(ctx context.Context, user models.User) (*models.TokenPair, error) {
	const op = "service.TokenService.GenerateTokens"

	accessToken, err := libjwt.NewToken(user, s.secret, s.accessTTL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	refreshToken, err := libjwt.NewToken(user, s.secret, s.refreshTTL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.repo.SaveRefreshToken(ctx, user.ID.String(), refreshToken, s.refreshTTL); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &models.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// RefreshTokens rotates the pair: the presented refresh token is validated
// against storage and deleted before new tokens are issued.
func (s *TokenService) RefreshTokens(ctx context.Context, refreshToken string) (*models.TokenPair, error) {
	const op = "service.TokenService.RefreshTokens"
	log := s.log.With(slog.String("op", op))

	user, err := libjwt.Verify(refreshToken, s.secret)
	if err != nil {
		if errors.Is(err, libjwt.ErrInvalidTokenClaims) {
			return nil, ErrInvalidTokenClaims
		}
		return nil, ErrInvalidToken
	}

	exists, err := s.repo.GetRefreshToken(ctx, user.ID.String(), refreshToken)
	if err != nil {
		log.Error("failed to check refresh token", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !exists {
		return nil, ErrInvalidToken
	}

	if err := s.repo.DeleteRefreshToken(ctx, user.ID.String(), refreshToken); err != nil {
		log.Error("failed to delete refresh token", sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.GenerateTokens(ctx, user)
}
