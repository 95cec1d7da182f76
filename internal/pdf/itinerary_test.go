package pdf

import (
	"strings"
	"testing"

	"github.com/Roshan-Baghwar/travel-itinerary-system/internal/dto"
	"github.com/Roshan-Baghwar/travel-itinerary-system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	view := dto.TripResponse{
		ID:        1,
		Name:      "Test",
		StartDate: models.NewDate(2025, 5, 1),
		Nights:    2,
		Days: []dto.DayResponse{
			{Date: models.NewDate(2025, 5, 1), HotelID: 1, TransferIDs: []uint{1}, ActivityIDs: []uint{1}},
			{Date: models.NewDate(2025, 5, 2), HotelID: 2, TransferIDs: []uint{}, ActivityIDs: []uint{2}},
		},
	}

	doc, err := Render(view)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(doc), "%PDF"), "output should be a PDF document")
	assert.Greater(t, len(doc), 500)
}

func TestRender_NoDays(t *testing.T) {
	view := dto.TripResponse{ID: 2, Name: "Layover", StartDate: models.NewDate(2025, 6, 1)}

	doc, err := Render(view)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(doc), "%PDF"))
}
