package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"restaurant_cms/internal/domain/models"
	articlesvc "restaurant_cms/internal/services/article_service"
	gallerysvc "restaurant_cms/internal/services/gallery_service"
	imagesvc "restaurant_cms/internal/services/image_service"
	tokensvc "restaurant_cms/internal/services/token_service"
	usersvc "restaurant_cms/internal/services/user_service"
	"restaurant_cms/internal/storage"
	"restaurant_cms/internal/transport/http/dto"
	"restaurant_cms/internal/transport/http/dto/response"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type UserService interface {
	RegisterNewUser(ctx context.Context, req dto.RegisterRequest) (uuid.UUID, error)
	Login(ctx context.Context, email, password string) (models.User, error)
	UserByID(ctx context.Context, id uuid.UUID) (models.User, error)
}

type TokenService interface {
	GenerateTokens(ctx context.Context, user models.User) (*models.TokenPair, error)
	RefreshTokens(ctx context.Context, refreshToken string) (*models.TokenPair, error)
}

type ArticleService interface {
	CreateArticle(ctx context.Context, authorID uuid.UUID, req dto.CreateArticleRequest) (models.Article, error)
	ArticleByID(ctx context.Context, id, callerID uuid.UUID) (models.Article, error)
	ArticleBySlug(ctx context.Context, slug string, callerID uuid.UUID) (models.Article, error)
	PublishedArticle(ctx context.Context, slug string) (models.Article, error)
	PublishedArticles(ctx context.Context) ([]models.Article, error)
	ArticlesByAuthor(ctx context.Context, authorID uuid.UUID) ([]models.Article, error)
	UpdateArticle(ctx context.Context, id, callerID uuid.UUID, req dto.UpdateArticleRequest) (models.Article, error)
	TogglePublish(ctx context.Context, id, callerID uuid.UUID) (models.Article, error)
	DeleteArticle(ctx context.Context, id, callerID uuid.UUID) error
}

type EventService interface {
	CreateEvent(ctx context.Context, req dto.CreateEventRequest) (models.Event, error)
	EventByID(ctx context.Context, id uuid.UUID) (models.Event, error)
	EventBySlug(ctx context.Context, slug string) (models.Event, error)
	Events(ctx context.Context) ([]models.Event, error)
	UpdateEvent(ctx context.Context, id uuid.UUID, req dto.UpdateEventRequest) (models.Event, error)
	DeleteEvent(ctx context.Context, id uuid.UUID) error
}

type MenuService interface {
	CreateMenu(ctx context.Context, req dto.CreateMenuRequest) (models.Menu, error)
	MenuByID(ctx context.Context, id uuid.UUID) (models.Menu, error)
	MenuBySlug(ctx context.Context, slug string) (models.Menu, error)
	Menus(ctx context.Context) ([]models.Menu, error)
	UpdateMenu(ctx context.Context, id uuid.UUID, req dto.UpdateMenuRequest) (models.Menu, error)
	DeleteMenu(ctx context.Context, id uuid.UUID) error
	AttachItem(ctx context.Context, menuID, itemID uuid.UUID) (models.Menu, error)
	DetachItem(ctx context.Context, menuID, itemID uuid.UUID) (models.Menu, error)
}

type MenuItemService interface {
	CreateMenuItem(ctx context.Context, req dto.CreateMenuItemRequest) (models.MenuItem, error)
	MenuItemByID(ctx context.Context, id uuid.UUID) (models.MenuItem, error)
	MenuItemBySlug(ctx context.Context, slug string) (models.MenuItem, error)
	MenuItems(ctx context.Context, limit int) ([]models.MenuItem, error)
	MenuItemsByTag(ctx context.Context, tagID uuid.UUID) ([]models.MenuItem, error)
	MenuItemsByCategory(ctx context.Context, categoryID uuid.UUID) ([]models.MenuItem, error)
	UpdateMenuItem(ctx context.Context, id uuid.UUID, req dto.UpdateMenuItemRequest) (models.MenuItem, error)
	DeleteMenuItem(ctx context.Context, id uuid.UUID) error
	AttachTag(ctx context.Context, itemID, tagID uuid.UUID) (models.MenuItem, error)
	DetachTag(ctx context.Context, itemID, tagID uuid.UUID) (models.MenuItem, error)
}

type TaxonomyService interface {
	CreateTag(ctx context.Context, title string) (models.Tag, error)
	TagByID(ctx context.Context, id uuid.UUID) (models.Tag, error)
	Tags(ctx context.Context) ([]models.Tag, error)
	UpdateTag(ctx context.Context, id uuid.UUID, title string) (models.Tag, error)
	DeleteTag(ctx context.Context, id uuid.UUID) error
	CreateCategory(ctx context.Context, title string) (models.Category, error)
	CategoryByID(ctx context.Context, id uuid.UUID) (models.Category, error)
	Categories(ctx context.Context) ([]models.Category, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, title string) (models.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}

type ImageService interface {
	PresignUpload(ctx context.Context, fileType string) (dto.UploadURLResponse, error)
	CreateImage(ctx context.Context, callerID uuid.UUID, req dto.CreateImageRequest) (models.Image, error)
	ImageByID(ctx context.Context, id uuid.UUID) (models.Image, error)
	Images(ctx context.Context) ([]models.Image, error)
	UpdateImage(ctx context.Context, id, callerID uuid.UUID, req dto.UpdateImageRequest) (models.Image, error)
	DeleteImage(ctx context.Context, id, callerID uuid.UUID) error
}

type GalleryService interface {
	GetOrCreate(ctx context.Context, caller uuid.NullUUID) (models.Gallery, error)
	AddImage(ctx context.Context, imageID uuid.UUID, caller uuid.NullUUID) (models.Gallery, error)
	RemoveImage(ctx context.Context, imageID uuid.UUID, caller uuid.NullUUID) (models.Gallery, error)
	Reorder(ctx context.Context, imageIDs []uuid.UUID, caller uuid.NullUUID) (models.Gallery, error)
}

type DashboardService interface {
	Stats(ctx context.Context) (dto.DashboardStats, error)
}

type Routers struct {
	log              *slog.Logger
	UserService      UserService
	TokenService     TokenService
	ArticleService   ArticleService
	EventService     EventService
	MenuService      MenuService
	MenuItemService  MenuItemService
	TaxonomyService  TaxonomyService
	ImageService     ImageService
	GalleryService   GalleryService
	DashboardService DashboardService
}

func NewRouter(
	log *slog.Logger,
	users UserService,
	tokens TokenService,
	articles ArticleService,
	events EventService,
	menus MenuService,
	menuItems MenuItemService,
	taxonomy TaxonomyService,
	images ImageService,
	gallery GalleryService,
	dashboard DashboardService,
) *Routers {
	return &Routers{
		log:              log,
		UserService:      users,
		TokenService:     tokens,
		ArticleService:   articles,
		EventService:     events,
		MenuService:      menus,
		MenuItemService:  menuItems,
		TaxonomyService:  taxonomy,
		ImageService:     images,
		GalleryService:   gallery,
		DashboardService: dashboard,
	}
}

// fail translates a service error into the status and message envelope the
// API promises. Everything unrecognized is a 500.
func fail(c echo.Context, err error) error {
	switch {
	case errors.Is(err, storage.ErrDuplicate):
		return c.JSON(http.StatusBadRequest, response.Err("duplicate title"))
	case errors.Is(err, gallerysvc.ErrInvalidOrder):
		return c.JSON(http.StatusBadRequest, response.Err(gallerysvc.ErrInvalidOrder.Error()))
	case errors.Is(err, usersvc.ErrInvalidCredentials):
		return c.JSON(http.StatusUnauthorized, response.Err("invalid credentials"))
	case errors.Is(err, tokensvc.ErrInvalidToken), errors.Is(err, tokensvc.ErrInvalidTokenClaims):
		return c.JSON(http.StatusUnauthorized, response.Err("invalid refresh token"))
	case errors.Is(err, imagesvc.ErrNotOwner), errors.Is(err, articlesvc.ErrNotAuthor):
		return c.JSON(http.StatusForbidden, response.Err("forbidden"))
	case errors.Is(err, usersvc.ErrUserExists):
		return c.JSON(http.StatusBadRequest, response.Err("user already exists"))
	case errors.Is(err, storage.ErrImageNotFound):
		return c.JSON(http.StatusNotFound, response.Err("Image not found"))
	case errors.Is(err, storage.ErrGalleryNotFound):
		return c.JSON(http.StatusNotFound, response.Err("Gallery not found"))
	case errors.Is(err, storage.ErrUserNotFound):
		return c.JSON(http.StatusNotFound, response.Err("User not found"))
	case errors.Is(err, storage.ErrNotFound):
		return c.JSON(http.StatusNotFound, response.Err("not found"))
	default:
		return c.JSON(http.StatusInternalServerError, response.Err("internal server error"))
	}
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, response.Err(message))
}

// pathUUID parses a :param path segment as a uuid.
func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Param(name))
}

// callerID extracts the authenticated user id the jwt middleware stored in
// the context. Routes outside the protected groups get uuid.Nil.
func callerID(c echo.Context) uuid.UUID {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return uuid.Nil
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil
	}

	uid, ok := claims["uid"].(string)
	if !ok {
		return uuid.Nil
	}

	id, err := uuid.Parse(uid)
	if err != nil {
		return uuid.Nil
	}

	return id
}

func nullCaller(c echo.Context) uuid.NullUUID {
	id := callerID(c)
	return uuid.NullUUID{UUID: id, Valid: id != uuid.Nil}
}
