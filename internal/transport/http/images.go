package http

import (
	"log/slog"
	"net/http"

	"restaurant_cms/internal/lib/logger/sl"
	"restaurant_cms/internal/transport/http/dto"

	"github.com/labstack/echo/v4"
)

func (r *Routers) ListImages(c echo.Context) error {
	images, err := r.ImageService.Images(c.Request().Context())
	if err != nil {
		r.log.Error("failed to list images", sl.Err(err))
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, images)
}

func (r *Routers) GetImage(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return badRequest(c, "invalid image id")
	}

	image, err := r.ImageService.ImageByID(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, image)
}

// PresignUpload issues a time-limited PUT URL for a direct client upload.
func (r *Routers) PresignUpload(c echo.Context) error {
	const op = "http.routers.PresignUpload"

	log := r.log.With(slog.String("op", op))

	var req dto.UploadURLRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request format")
	}

	if err := c.Validate(req); err != nil {
		log.Warn("validation failed", sl.Err(err))
		return badRequest(c, err.Error())
	}

	res, err := r.ImageService.PresignUpload(c.Request().Context(), req.FileType)
	if err != nil {
		log.Error("failed to presign upload", sl.Err(err))
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, res)
}

func (r *Routers) CreateImage(c echo.Context) error {
	const op = "http.routers.CreateImage"

	log := r.log.With(slog.String("op", op))

	var req dto.CreateImageRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request format")
	}

	if err := c.Validate(req); err != nil {
		log.Warn("validation failed", sl.Err(err))
		return badRequest(c, err.Error())
	}

	image, err := r.ImageService.CreateImage(c.Request().Context(), callerID(c), req)
	if err != nil {
		log.Error("failed to create image", sl.Err(err))
		return fail(c, err)
	}

	return c.JSON(http.StatusCreated, image)
}

func (r *Routers) UpdateImage(c echo.Context) error {
	const op = "http.routers.UpdateImage"

	log := r.log.With(slog.String("op", op))

	id, err := pathUUID(c, "id")
	if err != nil {
		return badRequest(c, "invalid image id")
	}

	var req dto.UpdateImageRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request format")
	}

	image, err := r.ImageService.UpdateImage(c.Request().Context(), id, callerID(c), req)
	if err != nil {
		log.Error("failed to update image", sl.Err(err))
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, image)
}

func (r *Routers) DeleteImage(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return badRequest(c, "invalid image id")
	}

	if err := r.ImageService.DeleteImage(c.Request().Context(), id, callerID(c)); err != nil {
		return fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
