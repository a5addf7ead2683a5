package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DayOfWeek string

const (
	Monday    DayOfWeek = "MONDAY"
	Tuesday   DayOfWeek = "TUESDAY"
	Wednesday DayOfWeek = "WEDNESDAY"
	Thursday  DayOfWeek = "THURSDAY"
	Friday    DayOfWeek = "FRIDAY"
	Saturday  DayOfWeek = "SATURDAY"
	Sunday    DayOfWeek = "SUNDAY"
)

func AllDaysOfWeek() []DayOfWeek {
	return []DayOfWeek{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

func (d DayOfWeek) Valid() bool {
	switch d {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday:
		return true
	}
	return false
}

type Genre string

const (
	Comedy       Genre = "COMEDY"
	Music        Genre = "MUSIC"
	Poetry       Genre = "POETRY"
	Storytelling Genre = "STORYTELLING"
	Variety      Genre = "VARIETY"
)

func AllGenres() []Genre {
	return []Genre{Comedy, Music, Poetry, Storytelling, Variety}
}

func (g Genre) Valid() bool {
	switch g {
	case Comedy, Music, Poetry, Storytelling, Variety:
		return true
	}
	return false
}

// DayOfWeekList and GenreList are stored as JSON in a text column. The pack
// has no Postgres array helper, and this keeps the column portable across the
// real database and the scratch one the integration tests migrate.
type DayOfWeekList []DayOfWeek

func (l DayOfWeekList) Value() (driver.Value, error) {
	if l == nil {
		l = DayOfWeekList{}
	}
	return json.Marshal(l)
}

func (l *DayOfWeekList) Scan(src any) error {
	return scanJSONList(src, l)
}

type GenreList []Genre

func (l GenreList) Value() (driver.Value, error) {
	if l == nil {
		l = GenreList{}
	}
	return json.Marshal(l)
}

func (l *GenreList) Scan(src any) error {
	return scanJSONList(src, l)
}

func scanJSONList(src, dst any) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	default:
		return fmt.Errorf("unsupported list column type %T", src)
	}
}

type OpenMic struct {
	ID           string        `gorm:"type:uuid;primaryKey" json:"id"`
	Title        string        `gorm:"not null" json:"title"`
	DayOfWeek    DayOfWeekList `gorm:"type:text" json:"dayOfWeek"`
	StartTime    string        `json:"startTime"`
	EndTime      string        `json:"endTime"`
	HostName     string        `json:"hostName"`
	HostWebsite  *string       `json:"hostWebsite,omitempty"`
	Description  string        `json:"description"`
	Genre        GenreList     `gorm:"type:text" json:"genre"`
	Equipment    string        `json:"equipment"`
	SignupMethod string        `json:"signupMethod"`
	Rules        string        `json:"rules"`
	VenueID      string        `gorm:"type:uuid;not null" json:"venueId"`
	CreatorID    *string       `json:"creatorId,omitempty"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`

	Venue *Venue `gorm:"foreignKey:VenueID" json:"venue,omitempty"`
}

func (m *OpenMic) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
