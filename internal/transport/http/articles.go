package http

import (
	"log/slog"
	"net/http"

	"restaurant_cms/internal/lib/logger/sl"
	"restaurant_cms/internal/transport/http/dto"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ListPublishedArticles is the public feed, newest first.
func (r *Routers) ListPublishedArticles(c echo.Context) error {
	articles, err := r.ArticleService.PublishedArticles(c.Request().Context())
	if err != nil {
		r.log.Error("failed to list published articles", sl.Err(err))
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, articles)
}

func (r *Routers) GetPublishedArticle(c echo.Context) error {
	article, err := r.ArticleService.PublishedArticle(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, article)
}

// ListOwnArticles returns the caller's articles, drafts included.
func (r *Routers) ListOwnArticles(c echo.Context) error {
	articles, err := r.ArticleService.ArticlesByAuthor(c.Request().Context(), callerID(c))
	if err != nil {
		r.log.Error("failed to list articles", sl.Err(err))
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, articles)
}

// GetArticle accepts an id or a slug in the same path segment. Lookups are
// scoped to the caller so drafts never leak between authors.
func (r *Routers) GetArticle(c echo.Context) error {
	ctx := c.Request().Context()
	raw := c.Param("idOrSlug")

	if id, err := uuid.Parse(raw); err == nil {
		article, err := r.ArticleService.ArticleByID(ctx, id, callerID(c))
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(http.StatusOK, article)
	}

	article, err := r.ArticleService.ArticleBySlug(ctx, raw, callerID(c))
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, article)
}

func (r *Routers) CreateArticle(c echo.Context) error {
	const op = "http.routers.CreateArticle"

	log := r.log.With(slog.String("op", op))

	var req dto.CreateArticleRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request format")
	}

	if err := c.Validate(req); err != nil {
		log.Warn("validation failed", sl.Err(err))
		return badRequest(c, err.Error())
	}

	article, err := r.ArticleService.CreateArticle(c.Request().Context(), callerID(c), req)
	if err != nil {
		log.Error("failed to create article", sl.Err(err))
		return fail(c, err)
	}

	return c.JSON(http.StatusCreated, article)
}

func (r *Routers) UpdateArticle(c echo.Context) error {
	const op = "http.routers.UpdateArticle"

	log := r.log.With(slog.String("op", op))

	id, err := pathUUID(c, "id")
	if err != nil {
		return badRequest(c, "invalid article id")
	}

	var req dto.UpdateArticleRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request format")
	}

	article, err := r.ArticleService.UpdateArticle(c.Request().Context(), id, callerID(c), req)
	if err != nil {
		log.Error("failed to update article", sl.Err(err))
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, article)
}

// TogglePublishArticle flips the article's published state.
func (r *Routers) TogglePublishArticle(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return badRequest(c, "invalid article id")
	}

	article, err := r.ArticleService.TogglePublish(c.Request().Context(), id, callerID(c))
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, article)
}

func (r *Routers) DeleteArticle(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return badRequest(c, "invalid article id")
	}

	if err := r.ArticleService.DeleteArticle(c.Request().Context(), id, callerID(c)); err != nil {
		return fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
