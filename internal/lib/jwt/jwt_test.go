package jwt

import (
	"testing"
	"time"

	"restaurant_cms/internal/domain/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

var testUser = models.User{
	ID:    uuid.MustParse("123e4567-e89b-12d3-a456-426614174000"),
	Email: "test@example.com",
}

func TestVerify_RoundTrip(t *testing.T) {
	token, err := NewToken(testUser, testSecret, time.Hour)
	require.NoError(t, err)

	user, err := Verify(token, testSecret)

	require.NoError(t, err)
	assert.Equal(t, testUser.ID, user.ID)
	assert.Equal(t, testUser.Email, user.Email)
}

func TestVerify_WrongSecret(t *testing.T) {
	token, err := NewToken(testUser, "other-secret", time.Hour)
	require.NoError(t, err)

	_, err = Verify(token, testSecret)

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Expired(t *testing.T) {
	token, err := NewToken(testUser, testSecret, -time.Minute)
	require.NoError(t, err)

	_, err = Verify(token, testSecret)

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Garbage(t *testing.T) {
	_, err := Verify("not.a.token", testSecret)

	assert.ErrorIs(t, err, ErrInvalidToken)
}
