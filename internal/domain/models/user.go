package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	PassHash     []byte    `db:"pass_hash" json:"-"`
	RegisteredAt time.Time `db:"registered_at" json:"registered_at"`
}
