package dto

import (
	"github.com/Roshan-Baghwar/travel-itinerary-system/internal/models"
)

// fallbackStartDate is shown for a recommended itinerary with no linked
// days. A defined sentinel, not an error.
var fallbackStartDate = models.NewDate(2025, 5, 1)

type DayResponse struct {
	Date        models.Date `json:"date"`
	HotelID     uint        `json:"hotel_id"`
	TransferIDs []uint      `json:"transfer_ids"`
	ActivityIDs []uint      `json:"activity_ids"`
}

// TripResponse is the flattened view of a trip's entity graph. Recommended
// itineraries are projected into the same shape.
type TripResponse struct {
	ID        uint          `json:"id"`
	Name      string        `json:"name"`
	StartDate models.Date   `json:"start_date"`
	Nights    int           `json:"nights"`
	Days      []DayResponse `json:"days"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func ToDayResponse(d *models.Day) DayResponse {
	transferIDs := make([]uint, len(d.Transfers))
	for i, t := range d.Transfers {
		transferIDs[i] = t.ID
	}
	activityIDs := make([]uint, len(d.Activities))
	for i, a := range d.Activities {
		activityIDs[i] = a.ID
	}
	return DayResponse{
		Date:        d.Date,
		HotelID:     d.HotelID,
		TransferIDs: transferIDs,
		ActivityIDs: activityIDs,
	}
}

func ToTripResponse(t *models.Trip) TripResponse {
	days := make([]DayResponse, len(t.Days))
	for i, d := range t.Days {
		days[i] = ToDayResponse(&d)
	}
	return TripResponse{
		ID:        t.ID,
		Name:      t.Name,
		StartDate: t.StartDate,
		Nights:    t.Nights,
		Days:      days,
	}
}

// ToItineraryResponse projects a recommended itinerary into the trip
// response shape. The days are the itinerary's linked days as-is; the
// start date is the first linked day's date when any exist.
func ToItineraryResponse(it *models.RecommendedItinerary) TripResponse {
	days := make([]DayResponse, len(it.Days))
	for i, d := range it.Days {
		days[i] = ToDayResponse(&d)
	}
	startDate := fallbackStartDate
	if len(it.Days) > 0 {
		startDate = it.Days[0].Date
	}
	return TripResponse{
		ID:        it.ID,
		Name:      it.Name,
		StartDate: startDate,
		Nights:    it.Nights,
		Days:      days,
	}
}
