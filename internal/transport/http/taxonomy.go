package http

import (
	"log/slog"
	"net/http"

	"restaurant_cms/internal/lib/logger/sl"
	"restaurant_cms/internal/transport/http/dto"

	"github.com/labstack/echo/v4"
)

func (r *Routers) ListTags(c echo.Context) error {
	tags, err := r.TaxonomyService.Tags(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, tags)
}

func (r *Routers) GetTag(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return badRequest(c, "invalid tag id")
	}

	tag, err := r.TaxonomyService.TagByID(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, tag)
}

func (r *Routers) CreateTag(c echo.Context) error {
	const op = "http.routers.CreateTag"

	log := r.log.With(slog.String("op", op))

	var req dto.TagRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request format")
	}

	if err := c.Validate(req); err != nil {
		log.Warn("validation failed", sl.Err(err))
		return badRequest(c, err.Error())
	}

	tag, err := r.TaxonomyService.CreateTag(c.Request().Context(), req.Title)
	if err != nil {
		log.Error("failed to create tag", sl.Err(err))
		return fail(c, err)
	}

	return c.JSON(http.StatusCreated, tag)
}

func (r *Routers) UpdateTag(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return badRequest(c, "invalid tag id")
	}

	var req dto.TagRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request format")
	}

	if err := c.Validate(req); err != nil {
		return badRequest(c, err.Error())
	}

	tag, err := r.TaxonomyService.UpdateTag(c.Request().Context(), id, req.Title)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, tag)
}

func (r *Routers) DeleteTag(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return badRequest(c, "invalid tag id")
	}

	if err := r.TaxonomyService.DeleteTag(c.Request().Context(), id); err != nil {
		return fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (r *Routers) ListCategories(c echo.Context) error {
	categories, err := r.TaxonomyService.Categories(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, categories)
}

func (r *Routers) GetCategory(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return badRequest(c, "invalid category id")
	}

	category, err := r.TaxonomyService.CategoryByID(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, category)
}

func (r *Routers) CreateCategory(c echo.Context) error {
	const op = "http.routers.CreateCategory"

	log := r.log.With(slog.String("op", op))

	var req dto.CategoryRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request format")
	}

	if err := c.Validate(req); err != nil {
		log.Warn("validation failed", sl.Err(err))
		return badRequest(c, err.Error())
	}

	category, err := r.TaxonomyService.CreateCategory(c.Request().Context(), req.Title)
	if err != nil {
		log.Error("failed to create category", sl.Err(err))
		return fail(c, err)
	}

	return c.JSON(http.StatusCreated, category)
}

func (r *Routers) UpdateCategory(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return badRequest(c, "invalid category id")
	}

	var req dto.CategoryRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request format")
	}

	if err := c.Validate(req); err != nil {
		return badRequest(c, err.Error())
	}

	category, err := r.TaxonomyService.UpdateCategory(c.Request().Context(), id, req.Title)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, category)
}

func (r *Routers) DeleteCategory(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return badRequest(c, "invalid category id")
	}

	if err := r.TaxonomyService.DeleteCategory(c.Request().Context(), id); err != nil {
		return fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
