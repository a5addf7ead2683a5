package dto

import (
	"time"

	"github.com/camknopp/open-mics-near-me/internal/models"
)

type VenueResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Website   *string   `json:"website,omitempty"`
	Facebook  *string   `json:"facebook,omitempty"`
	Instagram *string   `json:"instagram,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type OpenMicResponse struct {
	ID           string               `json:"id"`
	Title        string               `json:"title"`
	DayOfWeek    models.DayOfWeekList `json:"dayOfWeek"`
	StartTime    string               `json:"startTime"`
	EndTime      string               `json:"endTime"`
	HostName     string               `json:"hostName"`
	HostWebsite  *string              `json:"hostWebsite,omitempty"`
	Description  string               `json:"description"`
	Genre        models.GenreList     `json:"genre"`
	Equipment    string               `json:"equipment"`
	SignupMethod string               `json:"signupMethod"`
	Rules        string               `json:"rules"`
	VenueID      string               `json:"venueId"`
	CreatorID    *string              `json:"creatorId,omitempty"`
	CreatedAt    time.Time            `json:"createdAt"`
	UpdatedAt    time.Time            `json:"updatedAt"`
	Venue        *VenueResponse       `json:"venue,omitempty"`
}

type GeocodeResponse struct {
	Latitude    float64 `json:"lat"`
	Longitude   float64 `json:"lon"`
	DisplayName string  `json:"displayName"`
}

type SessionUser struct {
	ID string `json:"id"`
}

type SessionResponse struct {
	Token     string      `json:"token,omitempty"`
	User      SessionUser `json:"user"`
	ExpiresAt time.Time   `json:"expiresAt"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func ToVenueResponse(v *models.Venue) VenueResponse {
	return VenueResponse{
		ID:        v.ID,
		Name:      v.Name,
		Address:   v.Address,
		Latitude:  v.Latitude,
		Longitude: v.Longitude,
		Website:   v.Website,
		Facebook:  v.Facebook,
		Instagram: v.Instagram,
		CreatedAt: v.CreatedAt,
	}
}

func ToOpenMicResponse(m *models.OpenMic) OpenMicResponse {
	resp := OpenMicResponse{
		ID:           m.ID,
		Title:        m.Title,
		DayOfWeek:    m.DayOfWeek,
		StartTime:    m.StartTime,
		EndTime:      m.EndTime,
		HostName:     m.HostName,
		HostWebsite:  m.HostWebsite,
		Description:  m.Description,
		Genre:        m.Genre,
		Equipment:    m.Equipment,
		SignupMethod: m.SignupMethod,
		Rules:        m.Rules,
		VenueID:      m.VenueID,
		CreatorID:    m.CreatorID,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if m.Venue != nil {
		v := ToVenueResponse(m.Venue)
		resp.Venue = &v
	}
	return resp
}
