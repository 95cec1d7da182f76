package repository

import (
	"context"

	"github.com/Roshan-Baghwar/travel-itinerary-system/internal/models"
	"gorm.io/gorm"
)

type TripRepository interface {
	Create(ctx context.Context, tx *gorm.DB, trip *models.Trip) error
	CreateDay(ctx context.Context, tx *gorm.DB, day *models.Day) error
	CreateTransfer(ctx context.Context, tx *gorm.DB, transfer *models.Transfer) error
	LinkActivities(ctx context.Context, tx *gorm.DB, day *models.Day, activities []models.Activity) error
	FindByID(ctx context.Context, id uint) (*models.Trip, error)
	FindAll(ctx context.Context) ([]models.Trip, error)
	Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

func (r *tripRepository) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return r.db.WithContext(ctx).Transaction(fn)
}

func (r *tripRepository) Create(ctx context.Context, tx *gorm.DB, trip *models.Trip) error {
	return tx.WithContext(ctx).Create(trip).Error
}

func (r *tripRepository) CreateDay(ctx context.Context, tx *gorm.DB, day *models.Day) error {
	return tx.WithContext(ctx).Create(day).Error
}

func (r *tripRepository) CreateTransfer(ctx context.Context, tx *gorm.DB, transfer *models.Transfer) error {
	return tx.WithContext(ctx).Create(transfer).Error
}

// LinkActivities attaches activities to a day through the join table.
// Association rows only; no activity is copied or mutated.
func (r *tripRepository) LinkActivities(ctx context.Context, tx *gorm.DB, day *models.Day, activities []models.Activity) error {
	return tx.WithContext(ctx).Model(day).Association("Activities").Append(&activities)
}

// FindByID fetches the trip with its full day subgraph in one eager read.
func (r *tripRepository) FindByID(ctx context.Context, id uint) (*models.Trip, error) {
	var trip models.Trip
	err := r.db.WithContext(ctx).
		Preload("Days", func(db *gorm.DB) *gorm.DB { return db.Order("days.id ASC") }).
		Preload("Days.Transfers").
		Preload("Days.Activities").
		First(&trip, id).Error
	if err != nil {
		return nil, err
	}
	return &trip, nil
}

func (r *tripRepository) FindAll(ctx context.Context) ([]models.Trip, error) {
	var trips []models.Trip
	err := r.db.WithContext(ctx).
		Preload("Days", func(db *gorm.DB) *gorm.DB { return db.Order("days.id ASC") }).
		Preload("Days.Transfers").
		Preload("Days.Activities").
		Order("trips.id ASC").
		Find(&trips).Error
	if err != nil {
		return nil, err
	}
	return trips, nil
}
