package repository

import (
	"context"

	"github.com/Roshan-Baghwar/travel-itinerary-system/internal/models"
	"gorm.io/gorm"
)

type ItineraryRepository interface {
	FindByNights(ctx context.Context, nights int) (*models.RecommendedItinerary, error)
}

type itineraryRepository struct {
	db *gorm.DB
}

func NewItineraryRepository(db *gorm.DB) ItineraryRepository {
	return &itineraryRepository{db: db}
}

// FindByNights fetches the itinerary with its linked day subgraph in one
// eager read. The days are shared rows; nothing here writes.
func (r *itineraryRepository) FindByNights(ctx context.Context, nights int) (*models.RecommendedItinerary, error) {
	var itinerary models.RecommendedItinerary
	err := r.db.WithContext(ctx).
		Preload("Days", func(db *gorm.DB) *gorm.DB { return db.Order("days.id ASC") }).
		Preload("Days.Transfers").
		Preload("Days.Activities").
		Where("nights = ?", nights).
		First(&itinerary).Error
	if err != nil {
		return nil, err
	}
	return &itinerary, nil
}
