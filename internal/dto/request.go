package dto

import "github.com/camknopp/open-mics-near-me/internal/models"

// CreateOpenMicRequest carries both the open-mic fields and the venue
// resolution fields. Either VenueID references an existing venue, or the
// venueName/venueAddress/latitude/longitude group describes a new one.
type CreateOpenMicRequest struct {
	Title        string               `json:"title" validate:"required"`
	DayOfWeek    models.DayOfWeekList `json:"dayOfWeek" validate:"dive,oneof=MONDAY TUESDAY WEDNESDAY THURSDAY FRIDAY SATURDAY SUNDAY"`
	StartTime    string               `json:"startTime"`
	EndTime      string               `json:"endTime"`
	HostName     string               `json:"hostName"`
	HostWebsite  *string              `json:"hostWebsite"`
	Description  string               `json:"description"`
	Genre        models.GenreList     `json:"genre" validate:"dive,oneof=COMEDY MUSIC POETRY STORYTELLING VARIETY"`
	Equipment    string               `json:"equipment"`
	SignupMethod string               `json:"signupMethod"`
	Rules        string               `json:"rules"`
	CreatorID    *string              `json:"creatorId"`

	VenueID        string   `json:"venueId"`
	VenueName      string   `json:"venueName"`
	VenueAddress   string   `json:"venueAddress"`
	VenueWebsite   *string  `json:"venueWebsite"`
	VenueFacebook  *string  `json:"venueFacebook"`
	VenueInstagram *string  `json:"venueInstagram"`
	Latitude       *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude      *float64 `json:"longitude" validate:"omitempty,longitude"`
}

// UpdateOpenMicRequest covers the ten updatable fields. Nil means the caller
// left the field out and the stored value stays as it is.
type UpdateOpenMicRequest struct {
	Title        *string               `json:"title"`
	DayOfWeek    *models.DayOfWeekList `json:"dayOfWeek"`
	StartTime    *string               `json:"startTime"`
	EndTime      *string               `json:"endTime"`
	HostName     *string               `json:"hostName"`
	HostWebsite  *string               `json:"hostWebsite"`
	Description  *string               `json:"description"`
	Genre        *models.GenreList     `json:"genre"`
	Equipment    *string               `json:"equipment"`
	SignupMethod *string               `json:"signupMethod"`
	Rules        *string               `json:"rules"`
}
