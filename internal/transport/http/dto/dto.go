package dto

import (
	"time"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type CreateEventRequest struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description" validate:"required"`
	Image       string    `json:"image" validate:"required"`
	Date        time.Time `json:"date" validate:"required"`
	Time        string    `json:"time" validate:"required"`
}

// Update requests carry pointers so absent fields keep their stored values.
type UpdateEventRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Image       *string    `json:"image"`
	Date        *time.Time `json:"date"`
	Time        *string    `json:"time"`
}

type CreateMenuItemRequest struct {
	Title       string      `json:"title" validate:"required"`
	Description string      `json:"description" validate:"required"`
	Image       string      `json:"image" validate:"required"`
	Price       float64     `json:"price" validate:"required,gte=0"`
	CategoryID  *uuid.UUID  `json:"category_id"`
	TagIDs      []uuid.UUID `json:"tag_ids"`
}

type UpdateMenuItemRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Image       *string    `json:"image"`
	Price       *float64   `json:"price"`
	CategoryID  *uuid.UUID `json:"category_id"`
}

type CreateMenuRequest struct {
	Title       string      `json:"title" validate:"required"`
	Description string      `json:"description" validate:"required"`
	Image       *string     `json:"image"`
	MenuItemIDs []uuid.UUID `json:"menu_item_ids"`
}

type UpdateMenuRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
}

type TagRequest struct {
	Title string `json:"title" validate:"required"`
}

type CategoryRequest struct {
	Title string `json:"title" validate:"required"`
}

type UploadURLRequest struct {
	FileType string `json:"fileType" validate:"required"`
}

type UploadURLResponse struct {
	UploadURL string `json:"uploadURL"`
	Key       string `json:"key"`
}

type CreateImageRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	URL         string `json:"url" validate:"required,url"`
	Key         string `json:"key" validate:"required"`
}

type UpdateImageRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

type ReorderRequest struct {
	ImageIDs []uuid.UUID `json:"imageIds" validate:"required"`
}

type CreateArticleRequest struct {
	Title      string  `json:"title" validate:"required"`
	Excerpt    string  `json:"excerpt" validate:"required"`
	Content    string  `json:"content" validate:"required"`
	CoverImage *string `json:"cover_image"`
	Published  bool    `json:"published"`
}

type UpdateArticleRequest struct {
	Title      *string `json:"title"`
	Excerpt    *string `json:"excerpt"`
	Content    *string `json:"content"`
	CoverImage *string `json:"cover_image"`
}

type DashboardStats struct {
	Events     int `json:"events"`
	MenuItems  int `json:"menuItems"`
	Categories int `json:"categories"`
	Menus      int `json:"menus"`
}
