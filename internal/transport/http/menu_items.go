package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"restaurant_cms/internal/lib/logger/sl"
	"restaurant_cms/internal/transport/http/dto"

	"github.com/labstack/echo/v4"
)

func (r *Routers) ListMenuItems(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return badRequest(c, "invalid limit")
		}
		limit = parsed
	}

	items, err := r.MenuItemService.MenuItems(c.Request().Context(), limit)
	if err != nil {
		r.log.Error("failed to list menu items", sl.Err(err))
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, items)
}

func (r *Routers) GetMenuItem(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return badRequest(c, "invalid menu item id")
	}

	item, err := r.MenuItemService.MenuItemByID(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, item)
}

func (r *Routers) GetMenuItemBySlug(c echo.Context) error {
	item, err := r.MenuItemService.MenuItemBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, item)
}

func (r *Routers) ListMenuItemsByTag(c echo.Context) error {
	tagID, err := pathUUID(c, "tagId")
	if err != nil {
		return badRequest(c, "invalid tag id")
	}

	items, err := r.MenuItemService.MenuItemsByTag(c.Request().Context(), tagID)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, items)
}

func (r *Routers) ListMenuItemsByCategory(c echo.Context) error {
	categoryID, err := pathUUID(c, "categoryId")
	if err != nil {
		return badRequest(c, "invalid category id")
	}

	items, err := r.MenuItemService.MenuItemsByCategory(c.Request().Context(), categoryID)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, items)
}

func (r *Routers) CreateMenuItem(c echo.Context) error {
	const op = "http.routers.CreateMenuItem"

	log := r.log.With(slog.String("op", op))

	var req dto.CreateMenuItemRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request format")
	}

	if err := c.Validate(req); err != nil {
		log.Warn("validation failed", sl.Err(err))
		return badRequest(c, err.Error())
	}

	item, err := r.MenuItemService.CreateMenuItem(c.Request().Context(), req)
	if err != nil {
		log.Error("failed to create menu item", sl.Err(err))
		return fail(c, err)
	}

	return c.JSON(http.StatusCreated, item)
}

func (r *Routers) UpdateMenuItem(c echo.Context) error {
	const op = "http.routers.UpdateMenuItem"

	log := r.log.With(slog.String("op", op))

	id, err := pathUUID(c, "id")
	if err != nil {
		return badRequest(c, "invalid menu item id")
	}

	var req dto.UpdateMenuItemRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request format")
	}

	item, err := r.MenuItemService.UpdateMenuItem(c.Request().Context(), id, req)
	if err != nil {
		log.Error("failed to update menu item", sl.Err(err))
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, item)
}

func (r *Routers) DeleteMenuItem(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return badRequest(c, "invalid menu item id")
	}

	if err := r.MenuItemService.DeleteMenuItem(c.Request().Context(), id); err != nil {
		return fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (r *Routers) AttachTagToMenuItem(c echo.Context) error {
	itemID, err := pathUUID(c, "id")
	if err != nil {
		return badRequest(c, "invalid menu item id")
	}

	tagID, err := pathUUID(c, "tagId")
	if err != nil {
		return badRequest(c, "invalid tag id")
	}

	item, err := r.MenuItemService.AttachTag(c.Request().Context(), itemID, tagID)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, item)
}

func (r *Routers) DetachTagFromMenuItem(c echo.Context) error {
	itemID, err := pathUUID(c, "id")
	if err != nil {
		return badRequest(c, "invalid menu item id")
	}

	tagID, err := pathUUID(c, "tagId")
	if err != nil {
		return badRequest(c, "invalid tag id")
	}

	item, err := r.MenuItemService.DetachTag(c.Request().Context(), itemID, tagID)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, item)
}
