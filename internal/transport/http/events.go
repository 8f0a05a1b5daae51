package http

import (
	"log/slog"
	"net/http"

	"restaurant_cms/internal/lib/logger/sl"
	"restaurant_cms/internal/transport/http/dto"

	"github.com/labstack/echo/v4"
)

func (r *Routers) ListEvents(c echo.Context) error {
	events, err := r.EventService.Events(c.Request().Context())
	if err != nil {
		r.log.Error("failed to list events", sl.Err(err))
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, events)
}

func (r *Routers) GetEvent(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return badRequest(c, "invalid event id")
	}

	event, err := r.EventService.EventByID(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, event)
}

func (r *Routers) GetEventBySlug(c echo.Context) error {
	event, err := r.EventService.EventBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, event)
}

func (r *Routers) CreateEvent(c echo.Context) error {
	const op = "http.routers.CreateEvent"

	log := r.log.With(slog.String("op", op))

	var req dto.CreateEventRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request format")
	}

	if err := c.Validate(req); err != nil {
		log.Warn("validation failed", sl.Err(err))
		return badRequest(c, err.Error())
	}

	event, err := r.EventService.CreateEvent(c.Request().Context(), req)
	if err != nil {
		log.Error("failed to create event", sl.Err(err))
		return fail(c, err)
	}

	return c.JSON(http.StatusCreated, event)
}

func (r *Routers) UpdateEvent(c echo.Context) error {
	const op = "http.routers.UpdateEvent"

	log := r.log.With(slog.String("op", op))

	id, err := pathUUID(c, "id")
	if err != nil {
		return badRequest(c, "invalid event id")
	}

	var req dto.UpdateEventRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request format")
	}

	event, err := r.EventService.UpdateEvent(c.Request().Context(), id, req)
	if err != nil {
		log.Error("failed to update event", sl.Err(err))
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, event)
}

func (r *Routers) DeleteEvent(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return badRequest(c, "invalid event id")
	}

	if err := r.EventService.DeleteEvent(c.Request().Context(), id); err != nil {
		return fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
