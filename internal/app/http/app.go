package httpapp

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	appmw "restaurant_cms/internal/middleware"
	httprouters "restaurant_cms/internal/transport/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

type Server struct {
	log     *slog.Logger
	e       *echo.Echo
	routers *httprouters.Routers
	host    string
	port    string
	secret  string
	health  func(ctx context.Context) error
}

func New(log *slog.Logger, secret, host, port string, routers *httprouters.Routers, health func(ctx context.Context) error) *Server {
	e := echo.New()
	e.HideBanner = true

	e.Validator = &CustomValidator{validator: validator.New()}

	e.Use(middleware.CORS())
	e.Use(middleware.Recover())
	e.Use(appmw.Prometheus())

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:      true,
		LogStatus:   true,
		LogRemoteIP: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Info("request",
				slog.String("URI", v.URI),
				slog.Int("status", v.Status),
				slog.String("remote ip", v.RemoteIP),
			)

			return nil
		},
	}))

	return &Server{
		log:     log,
		e:       e,
		routers: routers,
		host:    host,
		port:    port,
		secret:  secret,
		health:  health,
	}
}

func (s *Server) MustRun() {
	const op = "http.Server.MustRun"

	s.log.Info(op, slog.String("Start", "server"))

	if err := s.Start(); err != nil {
		panic(err)
	}
}

func (s *Server) Start() error {
	const op = "http.Server.Start"

	if err := s.e.Start(fmt.Sprintf(":%s", s.port)); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("%s server stopped: %w", op, err)
	}

	return nil
}

func (s *Server) Stop() error {
	const op = "http.Server.Stop"

	optCtx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()

	s.log.Info("stopping", op, "http server")

	if err := s.e.Shutdown(optCtx); err != nil {
		return fmt.Errorf("%s could not shutdown server gracefuly: %w", op, err)
	}

	return nil
}

func (s *Server) jwtMiddleware() echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(s.secret),
	})
}

// BuildRouters registers every route. Reads are public, writes sit behind the
// jwt middleware.
func (s *Server) BuildRouters() {
	jwt := s.jwtMiddleware()

	s.e.GET("/health", func(c echo.Context) error {
		if s.health != nil {
			if err := s.health(c.Request().Context()); err != nil {
				return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
			}
		}
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	s.e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := s.e.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", s.routers.Register)
			auth.POST("/login", s.routers.Login)
			auth.POST("/refresh", s.routers.Refresh)
			auth.GET("/me", s.routers.Me, jwt)
		}

		events := api.Group("/events")
		{
			events.GET("", s.routers.ListEvents)
			events.GET("/by-slug/:slug", s.routers.GetEventBySlug)
			events.GET("/:id", s.routers.GetEvent)
			events.POST("", s.routers.CreateEvent, jwt)
			events.PUT("/:id", s.routers.UpdateEvent, jwt)
			events.DELETE("/:id", s.routers.DeleteEvent, jwt)
		}

		menuItems := api.Group("/menu-items")
		{
			menuItems.GET("", s.routers.ListMenuItems)
			menuItems.GET("/by-slug/:slug", s.routers.GetMenuItemBySlug)
			menuItems.GET("/tag/:tagId", s.routers.ListMenuItemsByTag)
			menuItems.GET("/category/:categoryId", s.routers.ListMenuItemsByCategory)
			menuItems.GET("/:id", s.routers.GetMenuItem)
			menuItems.POST("", s.routers.CreateMenuItem, jwt)
			menuItems.PUT("/:id", s.routers.UpdateMenuItem, jwt)
			menuItems.DELETE("/:id", s.routers.DeleteMenuItem, jwt)
			menuItems.POST("/:id/tags/:tagId", s.routers.AttachTagToMenuItem, jwt)
			menuItems.DELETE("/:id/tags/:tagId", s.routers.DetachTagFromMenuItem, jwt)
		}

		menus := api.Group("/menus")
		{
			menus.GET("", s.routers.ListMenus)
			menus.GET("/by-slug/:slug", s.routers.GetMenuBySlug)
			menus.GET("/:id", s.routers.GetMenu)
			menus.POST("", s.routers.CreateMenu, jwt)
			menus.PUT("/:id", s.routers.UpdateMenu, jwt)
			menus.DELETE("/:id", s.routers.DeleteMenu, jwt)
			menus.POST("/:id/menu-items/:menuItemId", s.routers.AttachMenuItem, jwt)
			menus.DELETE("/:id/menu-items/:menuItemId", s.routers.DetachMenuItem, jwt)
		}

		tags := api.Group("/tags")
		{
			tags.GET("", s.routers.ListTags)
			tags.GET("/:id", s.routers.GetTag)
			tags.POST("", s.routers.CreateTag, jwt)
			tags.PUT("/:id", s.routers.UpdateTag, jwt)
			tags.DELETE("/:id", s.routers.DeleteTag, jwt)
		}

		categories := api.Group("/categories")
		{
			categories.GET("", s.routers.ListCategories)
			categories.GET("/:id", s.routers.GetCategory)
			categories.POST("", s.routers.CreateCategory, jwt)
			categories.PUT("/:id", s.routers.UpdateCategory, jwt)
			categories.DELETE("/:id", s.routers.DeleteCategory, jwt)
		}

		images := api.Group("/images")
		{
			images.GET("", s.routers.ListImages)
			images.GET("/:id", s.routers.GetImage)
			images.POST("/upload-url", s.routers.PresignUpload, jwt)
			images.POST("", s.routers.CreateImage, jwt)
			images.PUT("/:id", s.routers.UpdateImage, jwt)
			images.DELETE("/:id", s.routers.DeleteImage, jwt)
		}

		gallery := api.Group("/gallery")
		{
			gallery.GET("", s.routers.GetGallery)
			gallery.POST("/images/:imageId", s.routers.AddGalleryImage, jwt)
			gallery.DELETE("/images/:imageId", s.routers.RemoveGalleryImage, jwt)
			gallery.PUT("/reorder", s.routers.ReorderGallery, jwt)
		}

		articles := api.Group("/articles")
		{
			articles.GET("/public", s.routers.ListPublishedArticles)
			articles.GET("/public/:slug", s.routers.GetPublishedArticle)
			articles.GET("", s.routers.ListOwnArticles, jwt)
			articles.GET("/:idOrSlug", s.routers.GetArticle, jwt)
			articles.POST("", s.routers.CreateArticle, jwt)
			articles.PUT("/:id", s.routers.UpdateArticle, jwt)
			articles.PUT("/:id/publish", s.routers.TogglePublishArticle, jwt)
			articles.DELETE("/:id", s.routers.DeleteArticle, jwt)
		}

		api.GET("/dashboard/stats", s.routers.DashboardStats, jwt)
	}
}
