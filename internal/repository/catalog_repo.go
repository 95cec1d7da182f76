package repository

import (
	"context"

	"github.com/Roshan-Baghwar/travel-itinerary-system/internal/models"
	"gorm.io/gorm"
)

// CatalogRepository reads the seeded reference tables. All methods take
// an explicit tx so validation lookups can run inside the same
// transaction as trip assembly.
type CatalogRepository interface {
	HotelByID(ctx context.Context, tx *gorm.DB, id uint) (*models.Hotel, error)
	TransferTemplateByID(ctx context.Context, tx *gorm.DB, id uint) (*models.TransferTemplate, error)
	ActivityByID(ctx context.Context, tx *gorm.DB, id uint) (*models.Activity, error)
	ActivitiesByIDs(ctx context.Context, tx *gorm.DB, ids []uint) ([]models.Activity, error)
}

type catalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) HotelByID(ctx context.Context, tx *gorm.DB, id uint) (*models.Hotel, error) {
	var hotel models.Hotel
	if err := tx.WithContext(ctx).First(&hotel, id).Error; err != nil {
		return nil, err
	}
	return &hotel, nil
}

func (r *catalogRepository) TransferTemplateByID(ctx context.Context, tx *gorm.DB, id uint) (*models.TransferTemplate, error) {
	var tpl models.TransferTemplate
	if err := tx.WithContext(ctx).First(&tpl, id).Error; err != nil {
		return nil, err
	}
	return &tpl, nil
}

func (r *catalogRepository) ActivityByID(ctx context.Context, tx *gorm.DB, id uint) (*models.Activity, error) {
	var activity models.Activity
	if err := tx.WithContext(ctx).First(&activity, id).Error; err != nil {
		return nil, err
	}
	return &activity, nil
}

func (r *catalogRepository) ActivitiesByIDs(ctx context.Context, tx *gorm.DB, ids []uint) ([]models.Activity, error) {
	var activities []models.Activity
	if err := tx.WithContext(ctx).Where("id IN ?", ids).Order("id ASC").Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}
