package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/Roshan-Baghwar/travel-itinerary-system/internal/dto"
	"github.com/Roshan-Baghwar/travel-itinerary-system/internal/models"
	"github.com/Roshan-Baghwar/travel-itinerary-system/internal/repository"
	"github.com/Roshan-Baghwar/travel-itinerary-system/pkg/rabbitmq"
	"gorm.io/gorm"
)

type TripService interface {
	CreateTrip(ctx context.Context, spec dto.CreateTripRequest) (*models.Trip, error)
	GetTrip(ctx context.Context, id uint) (*models.Trip, error)
	ListTrips(ctx context.Context) ([]models.Trip, error)
}

type tripService struct {
	tripRepo  repository.TripRepository
	catalog   repository.CatalogRepository
	publisher *rabbitmq.Publisher
}

func NewTripService(tripRepo repository.TripRepository, catalog repository.CatalogRepository, publisher *rabbitmq.Publisher) TripService {
	return &tripService{
		tripRepo:  tripRepo,
		catalog:   catalog,
		publisher: publisher,
	}
}

// CreateTrip validates the spec and assembles the trip inside a single
// transaction: either the whole entity graph is committed or nothing is.
func (s *tripService) CreateTrip(ctx context.Context, spec dto.CreateTripRequest) (*models.Trip, error) {
	var tripID uint

	err := s.tripRepo.Transaction(ctx, func(tx *gorm.DB) error {
		if err := s.validate(ctx, tx, spec); err != nil {
			return err
		}

		trip := &models.Trip{
			Name:      spec.Name,
			StartDate: spec.StartDate,
			Nights:    spec.Nights,
		}
		if err := s.tripRepo.Create(ctx, tx, trip); err != nil {
			return fmt.Errorf("create trip: %w", err)
		}

		for _, daySpec := range spec.Days {
			day := &models.Day{
				TripID:  &trip.ID,
				Date:    daySpec.Date,
				HotelID: daySpec.HotelID,
			}
			if err := s.tripRepo.CreateDay(ctx, tx, day); err != nil {
				return fmt.Errorf("create day: %w", err)
			}

			// Transfers are copied from their templates: each day gets
			// its own instances, the catalog rows stay untouched.
			for _, tplID := range daySpec.TransferIDs {
				tpl, err := s.catalog.TransferTemplateByID(ctx, tx, tplID)
				if err != nil {
					return fmt.Errorf("load transfer template %d: %w", tplID, err)
				}
				transfer := &models.Transfer{
					DayID:       day.ID,
					Description: tpl.Description,
				}
				if err := s.tripRepo.CreateTransfer(ctx, tx, transfer); err != nil {
					return fmt.Errorf("create transfer: %w", err)
				}
			}

			// Activities are linked, not copied.
			if len(daySpec.ActivityIDs) > 0 {
				activities, err := s.catalog.ActivitiesByIDs(ctx, tx, daySpec.ActivityIDs)
				if err != nil {
					return fmt.Errorf("load activities: %w", err)
				}
				if err := s.tripRepo.LinkActivities(ctx, tx, day, activities); err != nil {
					return fmt.Errorf("link activities: %w", err)
				}
			}
		}

		tripID = trip.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	trip, err := s.tripRepo.FindByID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("reload trip %d: %w", tripID, err)
	}

	if s.publisher != nil {
		if err := s.publisher.Publish("trip.created", trip); err != nil {
			log.Printf("[TripService] failed to publish trip.created for trip %d: %v", trip.ID, err)
		}
	}

	return trip, nil
}

// validate resolves every reference in the spec. The whole day list is
// scanned even after a failure, but only the first failure in scan order
// (day order; hotel before transfers before activities) is reported.
func (s *tripService) validate(ctx context.Context, tx *gorm.DB, spec dto.CreateTripRequest) error {
	var firstErr error
	record := func(err error) {
		if firstErr == nil {
			firstErr = err
		}
	}

	if len(spec.Days) != spec.Nights {
		record(&DayCountError{Days: len(spec.Days), Nights: spec.Nights})
	}

	for _, day := range spec.Days {
		if _, err := s.catalog.HotelByID(ctx, tx, day.HotelID); err != nil {
			record(asRefError(err, RefHotel, day.HotelID))
		}
		for _, id := range day.TransferIDs {
			if _, err := s.catalog.TransferTemplateByID(ctx, tx, id); err != nil {
				record(asRefError(err, RefTransfer, id))
			}
		}
		for _, id := range day.ActivityIDs {
			if _, err := s.catalog.ActivityByID(ctx, tx, id); err != nil {
				record(asRefError(err, RefActivity, id))
			}
		}
	}

	return firstErr
}

func asRefError(err error, kind RefKind, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &UnresolvedRefError{Kind: kind, ID: id}
	}
	return fmt.Errorf("resolve %s %d: %w", kind, id, err)
}

func (s *tripService) GetTrip(ctx context.Context, id uint) (*models.Trip, error) {
	trip, err := s.tripRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTripNotFound
		}
		return nil, err
	}
	return trip, nil
}

func (s *tripService) ListTrips(ctx context.Context) ([]models.Trip, error) {
	return s.tripRepo.FindAll(ctx)
}
