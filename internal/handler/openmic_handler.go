package handler

import (
	"errors"
	"net/http"

	"github.com/camknopp/open-mics-near-me/internal/dto"
	"github.com/camknopp/open-mics-near-me/internal/middleware"
	"github.com/camknopp/open-mics-near-me/internal/service"
	"github.com/labstack/echo/v4"
)

type OpenMicHandler struct {
	svc service.OpenMicService
}

func NewOpenMicHandler(svc service.OpenMicService) *OpenMicHandler {
	return &OpenMicHandler{svc: svc}
}

func (h *OpenMicHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.ListOpenMics)
	g.POST("", h.CreateOpenMic)
	g.GET("/:id", h.GetOpenMic)
	g.PATCH("/:id", h.UpdateOpenMic)
}

func (h *OpenMicHandler) CreateOpenMic(c echo.Context) error {
	var req dto.CreateOpenMicRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	// A signed-in submitter becomes the creator unless the body already
	// names one.
	if req.CreatorID == nil {
		if uid, ok := c.Get(middleware.UserIDKey).(string); ok && uid != "" {
			req.CreatorID = &uid
		}
	}

	mic, err := h.svc.CreateOpenMic(c.Request().Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrVenueDetailsRequired):
			return echo.NewHTTPError(http.StatusBadRequest, "Venue details are required to create a new venue.")
		case errors.Is(err, service.ErrVenueNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "Venue not found.")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create new open mic.").SetInternal(err)
		}
	}

	return c.JSON(http.StatusCreated, dto.ToOpenMicResponse(mic))
}

func (h *OpenMicHandler) GetOpenMic(c echo.Context) error {
	mic, err := h.svc.GetOpenMic(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrOpenMicNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Open mic not found.")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch open mic.").SetInternal(err)
	}

	return c.JSON(http.StatusOK, dto.ToOpenMicResponse(mic))
}

func (h *OpenMicHandler) ListOpenMics(c echo.Context) error {
	mics, err := h.svc.ListOpenMics(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch open mics.").SetInternal(err)
	}

	resp := make([]dto.OpenMicResponse, len(mics))
	for i := range mics {
		resp[i] = dto.ToOpenMicResponse(&mics[i])
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *OpenMicHandler) UpdateOpenMic(c echo.Context) error {
	id := c.Param("id")

	var req dto.UpdateOpenMicRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	mic, err := h.svc.UpdateOpenMic(c.Request().Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOpenMicNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "Open mic not found.")
		case errors.Is(err, service.ErrInvalidDayOfWeek), errors.Is(err, service.ErrInvalidGenre):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update open mic.").SetInternal(err)
		}
	}

	return c.JSON(http.StatusOK, dto.ToOpenMicResponse(mic))
}
