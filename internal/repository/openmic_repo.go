package repository

import (
	"context"

	"github.com/camknopp/open-mics-near-me/internal/models"
	"gorm.io/gorm"
)

type OpenMicRepository interface {
	Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error
	Create(ctx context.Context, tx *gorm.DB, mic *models.OpenMic) error
	FindByID(ctx context.Context, id string) (*models.OpenMic, error)
	FindAll(ctx context.Context) ([]models.OpenMic, error)
	UpdateFields(ctx context.Context, id string, fields map[string]any) error
}

type openMicRepository struct {
	db *gorm.DB
}

func NewOpenMicRepository(db *gorm.DB) OpenMicRepository {
	return &openMicRepository{db: db}
}

func (r *openMicRepository) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}

func (r *openMicRepository) Create(ctx context.Context, tx *gorm.DB, mic *models.OpenMic) error {
	return tx.WithContext(ctx).Create(mic).Error
}

func (r *openMicRepository) FindByID(ctx context.Context, id string) (*models.OpenMic, error) {
	var mic models.OpenMic
	if err := r.db.WithContext(ctx).Preload("Venue").First(&mic, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &mic, nil
}

func (r *openMicRepository) FindAll(ctx context.Context) ([]models.OpenMic, error) {
	var mics []models.OpenMic
	if err := r.db.WithContext(ctx).Preload("Venue").Order("created_at ASC, id ASC").Find(&mics).Error; err != nil {
		return nil, err
	}
	return mics, nil
}

func (r *openMicRepository) UpdateFields(ctx context.Context, id string, fields map[string]any) error {
	return r.db.WithContext(ctx).Model(&models.OpenMic{}).Where("id = ?", id).Updates(fields).Error
}
