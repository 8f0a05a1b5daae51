package jwt

import (
	"errors"
	"time"

	"restaurant_cms/internal/domain/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidTokenClaims = errors.New("invalid token claims")
)

// NewToken mints an HS256 token carrying the user id and email.
func NewToken(user models.User, secret string, duration time.Duration) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["uid"] = user.ID.String()
	claims["email"] = user.Email
	claims["iat"] = time.Now().Unix()
	claims["exp"] = time.Now().Add(duration).Unix()

	return token.SignedString([]byte(secret))
}

// Verify checks the token signature and returns the identity it carries.
func Verify(tokenString, secret string) (models.User, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return models.User{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return models.User{}, ErrInvalidTokenClaims
	}

	uid, ok := claims["uid"].(string)
	if !ok {
		return models.User{}, ErrInvalidTokenClaims
	}

	id, err := uuid.Parse(uid)
	if err != nil {
		return models.User{}, ErrInvalidTokenClaims
	}

	email, ok := claims["email"].(string)
	if !ok {
		return models.User{}, ErrInvalidTokenClaims
	}

	return models.User{ID: id, Email: email}, nil
}
