package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/camknopp/open-mics-near-me/internal/dto"
	"github.com/camknopp/open-mics-near-me/internal/models"
	"github.com/camknopp/open-mics-near-me/internal/repository"
	"github.com/camknopp/open-mics-near-me/pkg/rabbitmq"
	"gorm.io/gorm"
)

var (
	ErrOpenMicNotFound      = errors.New("open mic not found")
	ErrVenueNotFound        = errors.New("venue not found")
	ErrVenueDetailsRequired = errors.New("venue details are required to create a new venue")
	ErrInvalidDayOfWeek     = errors.New("invalid day of week value")
	ErrInvalidGenre         = errors.New("invalid genre value")
)

type OpenMicService interface {
	CreateOpenMic(ctx context.Context, req *dto.CreateOpenMicRequest) (*models.OpenMic, error)
	GetOpenMic(ctx context.Context, id string) (*models.OpenMic, error)
	ListOpenMics(ctx context.Context) ([]models.OpenMic, error)
	UpdateOpenMic(ctx context.Context, id string, req *dto.UpdateOpenMicRequest) (*models.OpenMic, error)
}

type openMicService struct {
	micRepo   repository.OpenMicRepository
	venueRepo repository.VenueRepository
	publisher *rabbitmq.Publisher
}

func NewOpenMicService(micRepo repository.OpenMicRepository, venueRepo repository.VenueRepository, publisher *rabbitmq.Publisher) OpenMicService {
	return &openMicService{micRepo: micRepo, venueRepo: venueRepo, publisher: publisher}
}

// CreateOpenMic resolves the target venue and inserts the open mic in one
// transaction, so a failed second insert never leaves an orphaned venue.
func (s *openMicService) CreateOpenMic(ctx context.Context, req *dto.CreateOpenMicRequest) (*models.OpenMic, error) {
	var created *models.OpenMic

	err := s.micRepo.Transaction(ctx, func(tx *gorm.DB) error {
		var venue *models.Venue

		if req.VenueID != "" {
			// Link to an existing venue
			found, err := s.venueRepo.FindByID(ctx, tx, req.VenueID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ErrVenueNotFound
				}
				return fmt.Errorf("find venue: %w", err)
			}
			venue = found
		} else {
			// Create a new venue
			if req.VenueName == "" || req.VenueAddress == "" || req.Latitude == nil || req.Longitude == nil {
				return ErrVenueDetailsRequired
			}
			venue = &models.Venue{
				Name:      req.VenueName,
				Address:   req.VenueAddress,
				Latitude:  *req.Latitude,
				Longitude: *req.Longitude,
				Website:   req.VenueWebsite,
				Facebook:  req.VenueFacebook,
				Instagram: req.VenueInstagram,
			}
			if err := s.venueRepo.Create(ctx, tx, venue); err != nil {
				return fmt.Errorf("create venue: %w", err)
			}
		}

		mic := &models.OpenMic{
			Title:        req.Title,
			DayOfWeek:    req.DayOfWeek,
			StartTime:    req.StartTime,
			EndTime:      req.EndTime,
			HostName:     req.HostName,
			HostWebsite:  req.HostWebsite,
			Description:  req.Description,
			Genre:        req.Genre,
			Equipment:    req.Equipment,
			SignupMethod: req.SignupMethod,
			Rules:        req.Rules,
			VenueID:      venue.ID,
			CreatorID:    req.CreatorID,
		}
		if err := s.micRepo.Create(ctx, tx, mic); err != nil {
			return fmt.Errorf("create open mic: %w", err)
		}

		mic.Venue = venue
		created = mic
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Best effort: a broker outage never fails the request.
	if s.publisher != nil {
		_ = s.publisher.Publish("openmic.created", created)
	}

	return created, nil
}

func (s *openMicService) GetOpenMic(ctx context.Context, id string) (*models.OpenMic, error) {
	mic, err := s.micRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOpenMicNotFound
		}
		return nil, err
	}
	return mic, nil
}

func (s *openMicService) ListOpenMics(ctx context.Context) ([]models.OpenMic, error) {
	return s.micRepo.FindAll(ctx)
}

// UpdateOpenMic applies only the fields present in the request. Omitted
// fields keep their stored values.
func (s *openMicService) UpdateOpenMic(ctx context.Context, id string, req *dto.UpdateOpenMicRequest) (*models.OpenMic, error) {
	if req.DayOfWeek != nil {
		for _, d := range *req.DayOfWeek {
			if !d.Valid() {
				return nil, ErrInvalidDayOfWeek
			}
		}
	}
	if req.Genre != nil {
		for _, g := range *req.Genre {
			if !g.Valid() {
				return nil, ErrInvalidGenre
			}
		}
	}

	if _, err := s.GetOpenMic(ctx, id); err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.DayOfWeek != nil {
		fields["day_of_week"] = *req.DayOfWeek
	}
	if req.StartTime != nil {
		fields["start_time"] = *req.StartTime
	}
	if req.EndTime != nil {
		fields["end_time"] = *req.EndTime
	}
	if req.HostName != nil {
		fields["host_name"] = *req.HostName
	}
	if req.HostWebsite != nil {
		fields["host_website"] = *req.HostWebsite
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Genre != nil {
		fields["genre"] = *req.Genre
	}
	if req.Equipment != nil {
		fields["equipment"] = *req.Equipment
	}
	if req.SignupMethod != nil {
		fields["signup_method"] = *req.SignupMethod
	}
	if req.Rules != nil {
		fields["rules"] = *req.Rules
	}

	if len(fields) > 0 {
		if err := s.micRepo.UpdateFields(ctx, id, fields); err != nil {
			return nil, fmt.Errorf("update open mic: %w", err)
		}
	}

	mic, err := s.micRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		_ = s.publisher.Publish("openmic.updated", mic)
	}

	return mic, nil
}
