package slugutil

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMake(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"simple", "Spicy Ramen", "spicy-ramen"},
		{"mixed case and punctuation", "Chef's Special!", "chefs-special"},
		{"multiple spaces", "Late   Night  Menu", "late-night-menu"},
		{"leading and trailing junk", "  --Brunch--  ", "brunch"},
		{"unicode", "Crème Brûlée", "creme-brulee"},
		{"numbers", "2 for 1 Tuesdays", "2-for-1-tuesdays"},
		{"empty", "", "untitled"},
		{"symbols only", "!!! ***", "untitled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Make(tt.title))
		})
	}
}

func TestMake_Properties(t *testing.T) {
	valid := regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

	titles := []string{
		"Spicy Ramen",
		"The BIG breakfast",
		"Fish & Chips (large)",
		"¡Hola señor!",
		"tags, tags, tags...",
		"__under__score__",
	}

	for _, title := range titles {
		got := Make(title)
		assert.Regexp(t, valid, got, "title %q", title)
		assert.Equal(t, strings.ToLower(got), got)
		assert.False(t, strings.HasPrefix(got, "-"))
		assert.False(t, strings.HasSuffix(got, "-"))
		assert.NotContains(t, got, "--")
	}
}

func TestResolveUnique(t *testing.T) {
	ctx := context.Background()

	takenFrom := func(used ...string) Taken {
		set := make(map[string]bool, len(used))
		for _, s := range used {
			set[s] = true
		}
		return func(_ context.Context, slug string, _ uuid.UUID) (bool, error) {
			return set[slug], nil
		}
	}

	t.Run("no collision keeps base slug", func(t *testing.T) {
		got, err := ResolveUnique(ctx, takenFrom(), "Spicy Ramen", uuid.Nil)
		require.NoError(t, err)
		assert.Equal(t, "spicy-ramen", got)
	})

	t.Run("first collision gets -1", func(t *testing.T) {
		got, err := ResolveUnique(ctx, takenFrom("spicy-ramen"), "Spicy Ramen", uuid.Nil)
		require.NoError(t, err)
		assert.Equal(t, "spicy-ramen-1", got)
	})

	t.Run("sequential suffixing", func(t *testing.T) {
		got, err := ResolveUnique(ctx, takenFrom("spicy-ramen", "spicy-ramen-1", "spicy-ramen-2"), "Spicy Ramen", uuid.Nil)
		require.NoError(t, err)
		assert.Equal(t, "spicy-ramen-3", got)
	})

	t.Run("self is excluded on update", func(t *testing.T) {
		self := uuid.New()
		taken := func(_ context.Context, slug string, exclude uuid.UUID) (bool, error) {
			// The only record using "spicy-ramen" is self.
			return slug == "spicy-ramen" && exclude != self, nil
		}

		got, err := ResolveUnique(ctx, taken, "Spicy Ramen", self)
		require.NoError(t, err)
		assert.Equal(t, "spicy-ramen", got)
	})

	t.Run("store error is surfaced", func(t *testing.T) {
		storeErr := errors.New("connection lost")
		taken := func(_ context.Context, _ string, _ uuid.UUID) (bool, error) {
			return false, storeErr
		}

		_, err := ResolveUnique(ctx, taken, "Spicy Ramen", uuid.Nil)
		assert.ErrorIs(t, err, storeErr)
	})

	t.Run("attempt cap", func(t *testing.T) {
		everything := func(_ context.Context, _ string, _ uuid.UUID) (bool, error) {
			return true, nil
		}

		_, err := ResolveUnique(ctx, everything, "Spicy Ramen", uuid.Nil)
		assert.Error(t, err)
	})
}
