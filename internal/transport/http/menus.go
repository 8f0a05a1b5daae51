package http

import (
	"log/slog"
	"net/http"

	"restaurant_cms/internal/lib/logger/sl"
	"restaurant_cms/internal/transport/http/dto"

	"github.com/labstack/echo/v4"
)

func (r *Routers) ListMenus(c echo.Context) error {
	menus, err := r.MenuService.Menus(c.Request().Context())
	if err != nil {
		r.log.Error("failed to list menus", sl.Err(err))
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, menus)
}

func (r *Routers) GetMenu(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return badRequest(c, "invalid menu id")
	}

	menu, err := r.MenuService.MenuByID(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, menu)
}

func (r *Routers) GetMenuBySlug(c echo.Context) error {
	menu, err := r.MenuService.MenuBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, menu)
}

func (r *Routers) CreateMenu(c echo.Context) error {
	const op = "http.routers.CreateMenu"

	log := r.log.With(slog.String("op", op))

	var req dto.CreateMenuRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request format")
	}

	if err := c.Validate(req); err != nil {
		log.Warn("validation failed", sl.Err(err))
		return badRequest(c, err.Error())
	}

	menu, err := r.MenuService.CreateMenu(c.Request().Context(), req)
	if err != nil {
		log.Error("failed to create menu", sl.Err(err))
		return fail(c, err)
	}

	return c.JSON(http.StatusCreated, menu)
}

func (r *Routers) UpdateMenu(c echo.Context) error {
	const op = "http.routers.UpdateMenu"

	log := r.log.With(slog.String("op", op))

	id, err := pathUUID(c, "id")
	if err != nil {
		return badRequest(c, "invalid menu id")
	}

	var req dto.UpdateMenuRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request format")
	}

	menu, err := r.MenuService.UpdateMenu(c.Request().Context(), id, req)
	if err != nil {
		log.Error("failed to update menu", sl.Err(err))
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, menu)
}

func (r *Routers) DeleteMenu(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return badRequest(c, "invalid menu id")
	}

	if err := r.MenuService.DeleteMenu(c.Request().Context(), id); err != nil {
		return fail(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (r *Routers) AttachMenuItem(c echo.Context) error {
	menuID, err := pathUUID(c, "id")
	if err != nil {
		return badRequest(c, "invalid menu id")
	}

	itemID, err := pathUUID(c, "menuItemId")
	if err != nil {
		return badRequest(c, "invalid menu item id")
	}

	menu, err := r.MenuService.AttachItem(c.Request().Context(), menuID, itemID)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, menu)
}

func (r *Routers) DetachMenuItem(c echo.Context) error {
	menuID, err := pathUUID(c, "id")
	if err != nil {
		return badRequest(c, "invalid menu id")
	}

	itemID, err := pathUUID(c, "menuItemId")
	if err != nil {
		return badRequest(c, "invalid menu item id")
	}

	menu, err := r.MenuService.DetachItem(c.Request().Context(), menuID, itemID)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, menu)
}
