package repository

import (
	"context"
	"time"

	"restaurant_cms/internal/domain/models"

	"github.com/google/uuid"
)

type UserRepository interface {
	SaveUser(ctx context.Context, user models.User) (uuid.UUID, error)
	UserByEmail(ctx context.Context, email string) (models.User, error)
	UserByID(ctx context.Context, id uuid.UUID) (models.User, error)
}

type TokenRepository interface {
	SaveRefreshToken(ctx context.Context, userID, token string, exp time.Duration) error
	GetRefreshToken(ctx context.Context, userID, token string) (bool, error)
	DeleteRefreshToken(ctx context.Context, userID, token string) error
	DeleteAllUserTokens(ctx context.Context, userID string) error
}

type ArticleRepository interface {
	SaveArticle(ctx context.Context, article models.Article) (uuid.UUID, error)
	ArticleByID(ctx context.Context, id uuid.UUID) (models.Article, error)
	ArticleBySlug(ctx context.Context, slug string) (models.Article, error)
	PublishedArticles(ctx context.Context) ([]models.Article, error)
	ArticlesByAuthor(ctx context.Context, authorID uuid.UUID) ([]models.Article, error)
	UpdateArticle(ctx context.Context, article models.Article) error
	DeleteArticle(ctx context.Context, id uuid.UUID) error
	SlugTaken(ctx context.Context, slug string, exclude uuid.UUID) (bool, error)
}

type EventRepository interface {
	SaveEvent(ctx context.Context, event models.Event) (uuid.UUID, error)
	EventByID(ctx context.Context, id uuid.UUID) (models.Event, error)
	EventBySlug(ctx context.Context, slug string) (models.Event, error)
	Events(ctx context.Context) ([]models.Event, error)
	UpdateEvent(ctx context.Context, event models.Event) error
	DeleteEvent(ctx context.Context, id uuid.UUID) error
	SlugTaken(ctx context.Context, slug string, exclude uuid.UUID) (bool, error)
	CountEvents(ctx context.Context) (int, error)
}

type MenuRepository interface {
	SaveMenu(ctx context.Context, menu models.Menu) (uuid.UUID, error)
	MenuByID(ctx context.Context, id uuid.UUID) (models.Menu, error)
	MenuBySlug(ctx context.Context, slug string) (models.Menu, error)
	Menus(ctx context.Context) ([]models.Menu, error)
	UpdateMenu(ctx context.Context, menu models.Menu) error
	DeleteMenu(ctx context.Context, id uuid.UUID) error
	AttachItem(ctx context.Context, menuID, itemID uuid.UUID) error
	DetachItem(ctx context.Context, menuID, itemID uuid.UUID) error
	SlugTaken(ctx context.Context, slug string, exclude uuid.UUID) (bool, error)
	CountMenus(ctx context.Context) (int, error)
}

type MenuItemRepository interface {
	SaveMenuItem(ctx context.Context, item models.MenuItem) (uuid.UUID, error)
	MenuItemByID(ctx context.Context, id uuid.UUID) (models.MenuItem, error)
	MenuItemBySlug(ctx context.Context, slug string) (models.MenuItem, error)
	MenuItems(ctx context.Context, limit int) ([]models.MenuItem, error)
	MenuItemsByTag(ctx context.Context, tagID uuid.UUID) ([]models.MenuItem, error)
	MenuItemsByCategory(ctx context.Context, categoryID uuid.UUID) ([]models.MenuItem, error)
	ItemsForMenu(ctx context.Context, menuID uuid.UUID) ([]models.MenuItem, error)
	UpdateMenuItem(ctx context.Context, item models.MenuItem) error
	DeleteMenuItem(ctx context.Context, id uuid.UUID) error
	AttachTag(ctx context.Context, itemID, tagID uuid.UUID) error
	DetachTag(ctx context.Context, itemID, tagID uuid.UUID) error
	SlugTaken(ctx context.Context, slug string, exclude uuid.UUID) (bool, error)
	CountMenuItems(ctx context.Context) (int, error)
}

type TagRepository interface {
	SaveTag(ctx context.Context, tag models.Tag) (uuid.UUID, error)
	TagByID(ctx context.Context, id uuid.UUID) (models.Tag, error)
	Tags(ctx context.Context) ([]models.Tag, error)
	UpdateTag(ctx context.Context, tag models.Tag) error
	DeleteTag(ctx context.Context, id uuid.UUID) error
}

type CategoryRepository interface {
	SaveCategory(ctx context.Context, category models.Category) (uuid.UUID, error)
	CategoryByID(ctx context.Context, id uuid.UUID) (models.Category, error)
	Categories(ctx context.Context) ([]models.Category, error)
	UpdateCategory(ctx context.Context, category models.Category) error
	DeleteCategory(ctx context.Context, id uuid.UUID) error
	CountCategories(ctx context.Context) (int, error)
}

type ImageRepository interface {
	SaveImage(ctx context.Context, image models.Image) (uuid.UUID, error)
	ImageByID(ctx context.Context, id uuid.UUID) (models.Image, error)
	Images(ctx context.Context) ([]models.Image, error)
	UpdateImage(ctx context.Context, image models.Image) error
	DeleteImage(ctx context.Context, id uuid.UUID) error
}

type GalleryRepository interface {
	Gallery(ctx context.Context) (models.Gallery, error)
	CreateGallery(ctx context.Context, lastUpdatedBy uuid.NullUUID) (models.Gallery, error)
	GalleryImages(ctx context.Context, galleryID uuid.UUID) ([]models.Image, error)
	GalleryImageIDs(ctx context.Context, galleryID uuid.UUID) ([]uuid.UUID, error)
	AppendImage(ctx context.Context, galleryID, imageID uuid.UUID, updatedBy uuid.NullUUID) error
	RemoveImage(ctx context.Context, galleryID, imageID uuid.UUID, updatedBy uuid.NullUUID) error
	ReplaceOrder(ctx context.Context, galleryID uuid.UUID, imageIDs []uuid.UUID, updatedBy uuid.NullUUID) error
}
