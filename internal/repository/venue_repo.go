package repository

import (
	"context"

	"github.com/camknopp/open-mics-near-me/internal/models"
	"gorm.io/gorm"
)

// VenueRepository methods take the transaction handle they should run in.
// Venue rows are only ever touched inside the open-mic creation transaction.
type VenueRepository interface {
	Create(ctx context.Context, tx *gorm.DB, venue *models.Venue) error
	FindByID(ctx context.Context, tx *gorm.DB, id string) (*models.Venue, error)
}

type venueRepository struct {
	db *gorm.DB
}

func NewVenueRepository(db *gorm.DB) VenueRepository {
	return &venueRepository{db: db}
}

func (r *venueRepository) Create(ctx context.Context, tx *gorm.DB, venue *models.Venue) error {
	return tx.WithContext(ctx).Create(venue).Error
}

func (r *venueRepository) FindByID(ctx context.Context, tx *gorm.DB, id string) (*models.Venue, error) {
	var venue models.Venue
	if err := tx.WithContext(ctx).First(&venue, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &venue, nil
}
