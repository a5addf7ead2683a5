package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/camknopp/open-mics-near-me/internal/dto"
	"github.com/camknopp/open-mics-near-me/internal/middleware"
	"github.com/camknopp/open-mics-near-me/internal/models"
	"github.com/camknopp/open-mics-near-me/internal/service"
	"github.com/camknopp/open-mics-near-me/internal/validation"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

// --- Mock OpenMicService ---

type mockOpenMicService struct {
	createFn func(ctx context.Context, req *dto.CreateOpenMicRequest) (*models.OpenMic, error)
	getFn    func(ctx context.Context, id string) (*models.OpenMic, error)
	listFn   func(ctx context.Context) ([]models.OpenMic, error)
	updateFn func(ctx context.Context, id string, req *dto.UpdateOpenMicRequest) (*models.OpenMic, error)
}

func (m *mockOpenMicService) CreateOpenMic(ctx context.Context, req *dto.CreateOpenMicRequest) (*models.OpenMic, error) {
	return m.createFn(ctx, req)
}
func (m *mockOpenMicService) GetOpenMic(ctx context.Context, id string) (*models.OpenMic, error) {
	return m.getFn(ctx, id)
}
func (m *mockOpenMicService) ListOpenMics(ctx context.Context) ([]models.OpenMic, error) {
	return m.listFn(ctx)
}
func (m *mockOpenMicService) UpdateOpenMic(ctx context.Context, id string, req *dto.UpdateOpenMicRequest) (*models.OpenMic, error) {
	return m.updateFn(ctx, id, req)
}

func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validation.New()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// --- Tests ---

func TestCreateOpenMic_Handler_Success(t *testing.T) {
	svc := &mockOpenMicService{
		createFn: func(ctx context.Context, req *dto.CreateOpenMicRequest) (*models.OpenMic, error) {
			return &models.OpenMic{
				ID:        "mic-1",
				Title:     req.Title,
				DayOfWeek: req.DayOfWeek,
				Genre:     req.Genre,
				VenueID:   "venue-1",
				Venue: &models.Venue{
					ID:        "venue-1",
					Name:      req.VenueName,
					Address:   req.VenueAddress,
					Latitude:  *req.Latitude,
					Longitude: *req.Longitude,
				},
			}, nil
		},
	}

	body := `{"venueName":"The Stand","venueAddress":"123 Main St","latitude":40.7,"longitude":-74.0,"title":"Tuesday Mic","dayOfWeek":["MONDAY"],"genre":["COMEDY"]}`
	c, rec := newTestContext(http.MethodPost, "/api/openmics", body)

	h := NewOpenMicHandler(svc)
	err := h.CreateOpenMic(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp dto.OpenMicResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Tuesday Mic", resp.Title)
	assert.Equal(t, models.DayOfWeekList{models.Monday}, resp.DayOfWeek)
	assert.NotNil(t, resp.Venue)
	assert.Equal(t, "123 Main St", resp.Venue.Address)
}

func TestCreateOpenMic_Handler_MissingVenueDetails(t *testing.T) {
	svc := &mockOpenMicService{
		createFn: func(ctx context.Context, req *dto.CreateOpenMicRequest) (*models.OpenMic, error) {
			return nil, service.ErrVenueDetailsRequired
		},
	}

	body := `{"title":"Tuesday Mic","venueName":"The Stand"}`
	c, _ := newTestContext(http.MethodPost, "/api/openmics", body)

	h := NewOpenMicHandler(svc)
	err := h.CreateOpenMic(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
	assert.Equal(t, "Venue details are required to create a new venue.", he.Message)
}

func TestCreateOpenMic_Handler_InvalidEnum(t *testing.T) {
	called := false
	svc := &mockOpenMicService{
		createFn: func(ctx context.Context, req *dto.CreateOpenMicRequest) (*models.OpenMic, error) {
			called = true
			return nil, nil
		},
	}

	body := `{"title":"Tuesday Mic","venueId":"venue-1","dayOfWeek":["FUNDAY"]}`
	c, _ := newTestContext(http.MethodPost, "/api/openmics", body)

	h := NewOpenMicHandler(svc)
	err := h.CreateOpenMic(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
	assert.False(t, called)
}

func TestCreateOpenMic_Handler_VenueNotFound(t *testing.T) {
	svc := &mockOpenMicService{
		createFn: func(ctx context.Context, req *dto.CreateOpenMicRequest) (*models.OpenMic, error) {
			return nil, service.ErrVenueNotFound
		},
	}

	body := `{"title":"Tuesday Mic","venueId":"missing"}`
	c, _ := newTestContext(http.MethodPost, "/api/openmics", body)

	h := NewOpenMicHandler(svc)
	err := h.CreateOpenMic(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Code)
}

func TestCreateOpenMic_Handler_CreatorFromSession(t *testing.T) {
	var received *dto.CreateOpenMicRequest
	svc := &mockOpenMicService{
		createFn: func(ctx context.Context, req *dto.CreateOpenMicRequest) (*models.OpenMic, error) {
			received = req
			return &models.OpenMic{ID: "mic-1", Title: req.Title}, nil
		},
	}

	body := `{"title":"Tuesday Mic","venueId":"venue-1"}`
	c, _ := newTestContext(http.MethodPost, "/api/openmics", body)
	c.Set(middleware.UserIDKey, "user-123")

	h := NewOpenMicHandler(svc)
	assert.NoError(t, h.CreateOpenMic(c))

	assert.NotNil(t, received.CreatorID)
	assert.Equal(t, "user-123", *received.CreatorID)
}

func TestCreateOpenMic_Handler_StorageError(t *testing.T) {
	svc := &mockOpenMicService{
		createFn: func(ctx context.Context, req *dto.CreateOpenMicRequest) (*models.OpenMic, error) {
			return nil, errors.New("db connection failed")
		},
	}

	body := `{"title":"Tuesday Mic","venueId":"venue-1"}`
	c, _ := newTestContext(http.MethodPost, "/api/openmics", body)

	h := NewOpenMicHandler(svc)
	err := h.CreateOpenMic(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, he.Code)
	assert.Equal(t, "Failed to create new open mic.", he.Message)
}

func TestListOpenMics_Handler_Success(t *testing.T) {
	svc := &mockOpenMicService{
		listFn: func(ctx context.Context) ([]models.OpenMic, error) {
			return []models.OpenMic{
				{ID: "mic-1", Title: "Mic A", Venue: &models.Venue{ID: "venue-1", Name: "The Stand"}},
				{ID: "mic-2", Title: "Mic B", Venue: &models.Venue{ID: "venue-2", Name: "The Cellar"}},
			}, nil
		},
	}

	c, rec := newTestContext(http.MethodGet, "/api/openmics", "")

	h := NewOpenMicHandler(svc)
	err := h.ListOpenMics(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []dto.OpenMicResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
	assert.Equal(t, "The Stand", resp[0].Venue.Name)
}

func TestListOpenMics_Handler_Error(t *testing.T) {
	svc := &mockOpenMicService{
		listFn: func(ctx context.Context) ([]models.OpenMic, error) {
			return nil, errors.New("db error")
		},
	}

	c, _ := newTestContext(http.MethodGet, "/api/openmics", "")

	h := NewOpenMicHandler(svc)
	err := h.ListOpenMics(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, he.Code)
	assert.Equal(t, "Failed to fetch open mics.", he.Message)
}

func TestGetOpenMic_Handler_NotFound(t *testing.T) {
	svc := &mockOpenMicService{
		getFn: func(ctx context.Context, id string) (*models.OpenMic, error) {
			return nil, service.ErrOpenMicNotFound
		},
	}

	c, _ := newTestContext(http.MethodGet, "/api/openmics/missing", "")
	c.SetParamNames("id")
	c.SetParamValues("missing")

	h := NewOpenMicHandler(svc)
	err := h.GetOpenMic(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Code)
}

func TestUpdateOpenMic_Handler_TitleOnly(t *testing.T) {
	var received *dto.UpdateOpenMicRequest
	svc := &mockOpenMicService{
		updateFn: func(ctx context.Context, id string, req *dto.UpdateOpenMicRequest) (*models.OpenMic, error) {
			received = req
			return &models.OpenMic{ID: id, Title: *req.Title, HostName: "Sam"}, nil
		},
	}

	c, rec := newTestContext(http.MethodPatch, "/api/openmics/mic-1", `{"title":"New Title"}`)
	c.SetParamNames("id")
	c.SetParamValues("mic-1")

	h := NewOpenMicHandler(svc)
	err := h.UpdateOpenMic(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	// only title was present in the body
	assert.NotNil(t, received.Title)
	assert.Nil(t, received.DayOfWeek)
	assert.Nil(t, received.HostName)

	var resp dto.OpenMicResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "New Title", resp.Title)
	assert.Equal(t, "Sam", resp.HostName)
}

func TestUpdateOpenMic_Handler_NotFound(t *testing.T) {
	svc := &mockOpenMicService{
		updateFn: func(ctx context.Context, id string, req *dto.UpdateOpenMicRequest) (*models.OpenMic, error) {
			return nil, service.ErrOpenMicNotFound
		},
	}

	c, _ := newTestContext(http.MethodPatch, "/api/openmics/missing", `{"title":"x"}`)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	h := NewOpenMicHandler(svc)
	err := h.UpdateOpenMic(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Code)
}

func TestUpdateOpenMic_Handler_InvalidGenre(t *testing.T) {
	svc := &mockOpenMicService{
		updateFn: func(ctx context.Context, id string, req *dto.UpdateOpenMicRequest) (*models.OpenMic, error) {
			return nil, service.ErrInvalidGenre
		},
	}

	c, _ := newTestContext(http.MethodPatch, "/api/openmics/mic-1", `{"genre":["POLKA"]}`)
	c.SetParamNames("id")
	c.SetParamValues("mic-1")

	h := NewOpenMicHandler(svc)
	err := h.UpdateOpenMic(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}
