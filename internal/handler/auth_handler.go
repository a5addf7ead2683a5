package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/camknopp/open-mics-near-me/internal/auth"
	"github.com/camknopp/open-mics-near-me/internal/dto"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AuthHandler mints and inspects anonymous sessions. No login providers are
// wired up; a session is just a fresh subject id in a signed token.
type AuthHandler struct {
	secret string
	ttl    time.Duration
}

func NewAuthHandler(secret string, ttl time.Duration) *AuthHandler {
	return &AuthHandler{secret: secret, ttl: ttl}
}

func (h *AuthHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/session", h.CreateSession)
	g.GET("/session", h.GetSession)
}

func (h *AuthHandler) CreateSession(c echo.Context) error {
	session, err := auth.NewSession(h.secret, uuid.NewString(), h.ttl)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create session.").SetInternal(err)
	}

	return c.JSON(http.StatusCreated, dto.SessionResponse{
		Token:     session.Token,
		User:      dto.SessionUser{ID: session.UserID},
		ExpiresAt: session.ExpiresAt,
	})
}

func (h *AuthHandler) GetSession(c echo.Context) error {
	header := c.Request().Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return echo.NewHTTPError(http.StatusUnauthorized, "Missing bearer token.")
	}

	session, err := auth.ParseSession(h.secret, strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid session token.")
	}

	return c.JSON(http.StatusOK, dto.SessionResponse{
		User:      dto.SessionUser{ID: session.UserID},
		ExpiresAt: session.ExpiresAt,
	})
}
