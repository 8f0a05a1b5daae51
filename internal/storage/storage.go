package storage

import (
	"errors"

	"github.com/jackc/pgconn"
)

var (
	ErrUserExists   = errors.New("user already exists")
	ErrUserNotFound = errors.New("user not found")

	ErrNotFound        = errors.New("record not found")
	ErrImageNotFound   = errors.New("image not found")
	ErrGalleryNotFound = errors.New("gallery not found")
	ErrGalleryExists   = errors.New("gallery already exists")

	// ErrDuplicate covers write-time unique violations (slug or title races
	// that slipped past the application-level check).
	ErrDuplicate = errors.New("duplicate value")
)

const uniqueViolationCode = "23505"

// IsUniqueViolation reports whether err is a postgres unique-index violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
