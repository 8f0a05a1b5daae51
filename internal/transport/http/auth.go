package http

import (
	"log/slog"
	"net/http"

	"restaurant_cms/internal/lib/logger/sl"
	"restaurant_cms/internal/transport/http/dto"
	"restaurant_cms/internal/transport/http/dto/response"

	"github.com/labstack/echo/v4"
)

func (r *Routers) Register(c echo.Context) error {
	const op = "http.routers.Register"

	log := r.log.With(slog.String("op", op))

	var req dto.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request format")
	}

	if err := c.Validate(req); err != nil {
		log.Warn("validation failed", sl.Err(err))
		return badRequest(c, err.Error())
	}

	userID, err := r.UserService.RegisterNewUser(c.Request().Context(), req)
	if err != nil {
		log.Error("registration failed", sl.Err(err))
		return fail(c, err)
	}

	log.Info("user registered", slog.String("user_id", userID.String()))

	return c.JSON(http.StatusCreated, response.ID{ID: userID})
}

func (r *Routers) Login(c echo.Context) error {
	const op = "http.routers.Login"

	log := r.log.With(slog.String("op", op))

	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request format")
	}

	if err := c.Validate(req); err != nil {
		log.Warn("validation failed", sl.Err(err))
		return badRequest(c, err.Error())
	}

	user, err := r.UserService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		log.Warn("login failed", sl.Err(err))
		return fail(c, err)
	}

	tokens, err := r.TokenService.GenerateTokens(c.Request().Context(), user)
	if err != nil {
		log.Error("failed to generate tokens", sl.Err(err))
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, response.Tokens{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	})
}

// Me returns the profile behind the access token.
func (r *Routers) Me(c echo.Context) error {
	const op = "http.routers.Me"

	log := r.log.With(slog.String("op", op))

	user, err := r.UserService.UserByID(c.Request().Context(), callerID(c))
	if err != nil {
		log.Error("failed to load user", sl.Err(err))
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, user)
}

func (r *Routers) Refresh(c echo.Context) error {
	const op = "http.routers.Refresh"

	log := r.log.With(slog.String("op", op))

	var req dto.RefreshRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request format")
	}

	if err := c.Validate(req); err != nil {
		return badRequest(c, err.Error())
	}

	tokens, err := r.TokenService.RefreshTokens(c.Request().Context(), req.RefreshToken)
	if err != nil {
		log.Warn("token refresh failed", sl.Err(err))
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, response.Tokens{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	})
}
