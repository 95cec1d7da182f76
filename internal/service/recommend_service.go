package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/Roshan-Baghwar/travel-itinerary-system/internal/models"
	"github.com/Roshan-Baghwar/travel-itinerary-system/internal/repository"
	"github.com/karlseguin/ccache/v3"
	"gorm.io/gorm"
)

const (
	MinRecommendNights = 2
	MaxRecommendNights = 8

	recommendCacheTTL = 5 * time.Minute
)

type RecommendService interface {
	Recommend(ctx context.Context, nights int) (*models.RecommendedItinerary, error)
}

type recommendService struct {
	repo  repository.ItineraryRepository
	cache *ccache.Cache[*models.RecommendedItinerary]
}

func NewRecommendService(repo repository.ItineraryRepository) RecommendService {
	return &recommendService{
		repo:  repo,
		cache: ccache.New(ccache.Configure[*models.RecommendedItinerary]().MaxSize(32)),
	}
}

// Recommend returns the prebuilt itinerary for the given stay length.
// Pure read path: nothing is created, copied or re-owned, so calling it
// twice yields the same day ids. Itineraries are seeded data, so results
// are cached in-process.
func (s *recommendService) Recommend(ctx context.Context, nights int) (*models.RecommendedItinerary, error) {
	if nights < MinRecommendNights || nights > MaxRecommendNights {
		return nil, ErrNightsOutOfRange
	}

	key := strconv.Itoa(nights)
	if item := s.cache.Get(key); item != nil && !item.Expired() {
		return item.Value(), nil
	}

	itinerary, err := s.repo.FindByNights(ctx, nights)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItineraryNotFound
		}
		return nil, err
	}

	s.cache.Set(key, itinerary, recommendCacheTTL)
	return itinerary, nil
}
