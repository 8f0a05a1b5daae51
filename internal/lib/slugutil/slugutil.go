// Package slugutil derives URL-safe slugs from titles and resolves collisions
// against an entity collection.
package slugutil

import (
	"context"
	"fmt"
	"strings"

	gslug "github.com/gosimple/slug"
	"github.com/google/uuid"
)

// fallback is used when a title normalizes to nothing (empty or symbols only).
const fallback = "untitled"

// maxAttempts bounds the collision loop; the storage unique index is the
// backstop for anything beyond it.
const maxAttempts = 1000

// Taken reports whether a slug is already used by another record. exclude
// identifies the record being updated so it does not collide with itself.
type Taken func(ctx context.Context, slug string, exclude uuid.UUID) (bool, error)

// Make normalizes a title into a slug: lowercase, only [a-z0-9-], words joined
// by single hyphens, no leading or trailing hyphen.
func Make(title string) string {
	s := gslug.Make(title)

	// gosimple permits underscores; the strict policy does not.
	s = strings.ReplaceAll(s, "_", "-")
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	s = strings.Trim(s, "-")

	if s == "" {
		return fallback
	}

	return s
}

// ResolveUnique derives a slug from title and suffixes "-1", "-2", ... until
// taken reports it free within the collection.
func ResolveUnique(ctx context.Context, taken Taken, title string, exclude uuid.UUID) (string, error) {
	const op = "slugutil.ResolveUnique"

	base := Make(title)
	candidate := base

	for i := 1; i <= maxAttempts; i++ {
		used, err := taken(ctx, candidate, exclude)
		if err != nil {
			return "", fmt.Errorf("%s: %w", op, err)
		}
		if !used {
			return candidate, nil
		}

		candidate = fmt.Sprintf("%s-%d", base, i)
	}

	return "", fmt.Errorf("%s: no free slug for %q after %d attempts", op, base, maxAttempts)
}
