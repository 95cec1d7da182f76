package service

import (
	"context"
	"testing"

	"github.com/Roshan-Baghwar/travel-itinerary-system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// --- Mock ItineraryRepository ---

type mockItineraryRepo struct {
	findByNightsFn func(ctx context.Context, nights int) (*models.RecommendedItinerary, error)
	calls          int
}

func (m *mockItineraryRepo) FindByNights(ctx context.Context, nights int) (*models.RecommendedItinerary, error) {
	m.calls++
	return m.findByNightsFn(ctx, nights)
}

func phuketExplorer() *models.RecommendedItinerary {
	tpl := &models.RecommendedItinerary{
		ID:     1,
		Nights: 3,
		Name:   "Phuket Explorer",
	}
	for i := 0; i < 3; i++ {
		tpl.Days = append(tpl.Days, models.Day{
			ID:        uint(10 + i),
			Date:      models.NewDate(2025, 5, 1).AddDays(i),
			HotelID:   uint(i + 1),
			Transfers: []models.Transfer{{ID: uint(20 + i), DayID: uint(10 + i), Description: "transfer"}},
			Activities: []models.Activity{
				{ID: uint(30 + i), Name: "activity", Location: "Phuket"},
			},
		})
	}
	return tpl
}

// --- Tests ---

func TestRecommend_Success(t *testing.T) {
	repo := &mockItineraryRepo{
		findByNightsFn: func(ctx context.Context, nights int) (*models.RecommendedItinerary, error) {
			return phuketExplorer(), nil
		},
	}

	svc := NewRecommendService(repo)
	itinerary, err := svc.Recommend(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, "Phuket Explorer", itinerary.Name)
	assert.Equal(t, 3, itinerary.Nights)
	assert.Len(t, itinerary.Days, 3)
}

func TestRecommend_OutOfRange(t *testing.T) {
	repo := &mockItineraryRepo{
		findByNightsFn: func(ctx context.Context, nights int) (*models.RecommendedItinerary, error) {
			t.Fatal("store must not be touched for out-of-range nights")
			return nil, nil
		},
	}
	svc := NewRecommendService(repo)

	for _, nights := range []int{-1, 0, 1, 9, 100} {
		_, err := svc.Recommend(context.Background(), nights)
		assert.ErrorIs(t, err, ErrNightsOutOfRange, "nights=%d", nights)
	}
	assert.Equal(t, 0, repo.calls)
}

func TestRecommend_NotFound(t *testing.T) {
	repo := &mockItineraryRepo{
		findByNightsFn: func(ctx context.Context, nights int) (*models.RecommendedItinerary, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	svc := NewRecommendService(repo)
	_, err := svc.Recommend(context.Background(), 4)

	assert.ErrorIs(t, err, ErrItineraryNotFound)
}

// Recommending twice must surface the same day and transfer ids both
// times: the read path never duplicates rows, and the cache serves the
// subgraph it first read.
func TestRecommend_Idempotent(t *testing.T) {
	repo := &mockItineraryRepo{
		findByNightsFn: func(ctx context.Context, nights int) (*models.RecommendedItinerary, error) {
			return phuketExplorer(), nil
		},
	}
	svc := NewRecommendService(repo)

	first, err := svc.Recommend(context.Background(), 3)
	require.NoError(t, err)
	second, err := svc.Recommend(context.Background(), 3)
	require.NoError(t, err)

	require.Len(t, second.Days, len(first.Days))
	for i := range first.Days {
		assert.Equal(t, first.Days[i].ID, second.Days[i].ID)
		assert.Equal(t, first.Days[i].Transfers, second.Days[i].Transfers)
		assert.Equal(t, first.Days[i].Activities, second.Days[i].Activities)
	}

	assert.Equal(t, 1, repo.calls, "second call should be served from cache")
}

func TestRecommend_ErrNotCached(t *testing.T) {
	repo := &mockItineraryRepo{
		findByNightsFn: func(ctx context.Context, nights int) (*models.RecommendedItinerary, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := NewRecommendService(repo)

	_, err := svc.Recommend(context.Background(), 5)
	assert.ErrorIs(t, err, ErrItineraryNotFound)
	_, err = svc.Recommend(context.Background(), 5)
	assert.ErrorIs(t, err, ErrItineraryNotFound)

	assert.Equal(t, 2, repo.calls, "misses are not cached")
}
