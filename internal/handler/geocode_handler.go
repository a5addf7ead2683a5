package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/camknopp/open-mics-near-me/internal/dto"
	"github.com/camknopp/open-mics-near-me/internal/geocode"
	"github.com/labstack/echo/v4"
)

type GeocodeHandler struct {
	client *geocode.Client
}

func NewGeocodeHandler(client *geocode.Client) *GeocodeHandler {
	return &GeocodeHandler{client: client}
}

func (h *GeocodeHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.Search)
}

func (h *GeocodeHandler) Search(c echo.Context) error {
	query := strings.TrimSpace(c.QueryParam("q"))
	if query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Query parameter q is required.")
	}

	result, err := h.client.Search(c.Request().Context(), query)
	if err != nil {
		if errors.Is(err, geocode.ErrNoResults) {
			return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("No results found for %q.", query))
		}
		return echo.NewHTTPError(http.StatusBadGateway, "Failed to get location from search.").SetInternal(err)
	}

	return c.JSON(http.StatusOK, dto.GeocodeResponse{
		Latitude:    result.Latitude,
		Longitude:   result.Longitude,
		DisplayName: result.DisplayName,
	})
}
