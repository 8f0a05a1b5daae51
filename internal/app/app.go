package app

import (
	"context"
	"log/slog"

	"restaurant_cms/internal/config"
	"restaurant_cms/internal/repository"
	articlesvc "restaurant_cms/internal/services/article_service"
	dashboardsvc "restaurant_cms/internal/services/dashboard_service"
	eventsvc "restaurant_cms/internal/services/event_service"
	gallerysvc "restaurant_cms/internal/services/gallery_service"
	imagesvc "restaurant_cms/internal/services/image_service"
	menuitemsvc "restaurant_cms/internal/services/menu_item_service"
	menusvc "restaurant_cms/internal/services/menu_service"
	taxonomysvc "restaurant_cms/internal/services/taxonomy_service"
	tokensvc "restaurant_cms/internal/services/token_service"
	usersvc "restaurant_cms/internal/services/user_service"
	"restaurant_cms/internal/storage/postgresql"
	redisdb "restaurant_cms/internal/storage/redis"
	"restaurant_cms/internal/storage/s3"
	httprouters "restaurant_cms/internal/transport/http"

	httpapp "restaurant_cms/internal/app/http"

	"time"
)

// statsCacheTTL is how long dashboard counts are served from cache.
const statsCacheTTL = 30 * time.Second

type App struct {
	HTTPServer *httpapp.Server
	Storage    *postgresql.Storage
	Redis      *redisdb.Client
}

func New(log *slog.Logger, cfg *config.Config) *App {
	storage, err := postgresql.New(context.Background(), cfg.DSN)
	if err != nil {
		panic(err)
	}

	if err := storage.Migrate(); err != nil {
		panic(err)
	}

	redisClient := redisdb.NewClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)

	s3Storage, err := s3.New(context.Background(), cfg.S3.Region, cfg.S3.Bucket, cfg.S3.UploadTTL)
	if err != nil {
		panic(err)
	}

	repos := repository.NewRepository(storage.Pool())
	tokenRepo := repository.NewRedisTokenRepo(redisClient)

	userService := usersvc.NewUserService(log, repos.Users)
	tokenService := tokensvc.NewTokenService(log, tokenRepo, cfg.AppSecret, cfg.TokenTTL, cfg.RefreshTTL)
	articleService := articlesvc.NewArticleService(log, repos.Articles)
	eventService := eventsvc.NewEventService(log, repos.Events)
	menuService := menusvc.NewMenuService(log, repos.Menus, repos.MenuItems)
	menuItemService := menuitemsvc.NewMenuItemService(log, repos.MenuItems, repos.Tags)
	taxonomyService := taxonomysvc.NewTaxonomyService(log, repos.Tags, repos.Categories)
	galleryService := gallerysvc.NewGalleryService(log, repos.Gallery, repos.Images)
	imageService := imagesvc.NewImageService(log, repos.Images, s3Storage, galleryService)
	dashboardService := dashboardsvc.NewDashboardService(log, statsCacheTTL,
		repos.Events.CountEvents,
		repos.MenuItems.CountMenuItems,
		repos.Categories.CountCategories,
		repos.Menus.CountMenus,
	)

	routers := httprouters.NewRouter(log,
		userService,
		tokenService,
		articleService,
		eventService,
		menuService,
		menuItemService,
		taxonomyService,
		imageService,
		galleryService,
		dashboardService,
	)

	server := httpapp.New(log, cfg.AppSecret, cfg.HTTP.Host, cfg.HTTP.Port, routers, redisClient.HealthCheck)
	server.BuildRouters()

	return &App{
		HTTPServer: server,
		Storage:    storage,
		Redis:      redisClient,
	}
}

func (a *App) Stop() {
	if err := a.HTTPServer.Stop(); err != nil {
		panic(err)
	}

	a.Storage.Stop()
	_ = a.Redis.Close()
}
