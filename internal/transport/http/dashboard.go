package http

import (
	"net/http"

	"restaurant_cms/internal/lib/logger/sl"

	"github.com/labstack/echo/v4"
)

func (r *Routers) DashboardStats(c echo.Context) error {
	stats, err := r.DashboardService.Stats(c.Request().Context())
	if err != nil {
		r.log.Error("failed to collect dashboard stats", sl.Err(err))
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, stats)
}
