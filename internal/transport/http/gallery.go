package http

import (
	"log/slog"
	"net/http"

	"restaurant_cms/internal/lib/logger/sl"
	"restaurant_cms/internal/transport/http/dto"

	"github.com/labstack/echo/v4"
)

// GetGallery returns the shared gallery, creating it on first access.
func (r *Routers) GetGallery(c echo.Context) error {
	const op = "http.routers.GetGallery"

	gallery, err := r.GalleryService.GetOrCreate(c.Request().Context(), nullCaller(c))
	if err != nil {
		r.log.With(slog.String("op", op)).Error("failed to get gallery", sl.Err(err))
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, gallery)
}

func (r *Routers) AddGalleryImage(c echo.Context) error {
	const op = "http.routers.AddGalleryImage"

	imageID, err := pathUUID(c, "imageId")
	if err != nil {
		return badRequest(c, "invalid image id")
	}

	gallery, err := r.GalleryService.AddImage(c.Request().Context(), imageID, nullCaller(c))
	if err != nil {
		r.log.With(slog.String("op", op)).Error("failed to add gallery image", sl.Err(err))
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, gallery)
}

func (r *Routers) RemoveGalleryImage(c echo.Context) error {
	const op = "http.routers.RemoveGalleryImage"

	imageID, err := pathUUID(c, "imageId")
	if err != nil {
		return badRequest(c, "invalid image id")
	}

	gallery, err := r.GalleryService.RemoveImage(c.Request().Context(), imageID, nullCaller(c))
	if err != nil {
		r.log.With(slog.String("op", op)).Error("failed to remove gallery image", sl.Err(err))
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, gallery)
}

func (r *Routers) ReorderGallery(c echo.Context) error {
	const op = "http.routers.ReorderGallery"

	log := r.log.With(slog.String("op", op))

	var req dto.ReorderRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request format")
	}

	if err := c.Validate(req); err != nil {
		log.Warn("validation failed", sl.Err(err))
		return badRequest(c, err.Error())
	}

	gallery, err := r.GalleryService.Reorder(c.Request().Context(), req.ImageIDs, nullCaller(c))
	if err != nil {
		log.Warn("reorder failed", sl.Err(err))
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, gallery)
}
