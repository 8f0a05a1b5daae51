package models

import (
	"time"

	"github.com/google/uuid"
)

// Article is an editorial post. PublishedAt is set iff Published is true.
type Article struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	Title       string     `db:"title" json:"title"`
	Slug        string     `db:"slug" json:"slug"`
	Excerpt     string     `db:"excerpt" json:"excerpt"`
	Content     string     `db:"content" json:"content"`
	CoverImage  *string    `db:"cover_image" json:"cover_image,omitempty"`
	Published   bool       `db:"published" json:"published"`
	PublishedAt *time.Time `db:"published_at" json:"published_at,omitempty"`
	AuthorID    uuid.UUID  `db:"author_id" json:"author_id"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at" json:"updated_at"`
}
