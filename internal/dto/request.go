package dto

import "github.com/Roshan-Baghwar/travel-itinerary-system/internal/models"

// DaySpec describes one day of a proposed trip: the hotel to stay at,
// the transfer templates to copy and the activities to link.
type DaySpec struct {
	Date        models.Date `json:"date"`
	HotelID     uint        `json:"hotel_id"`
	TransferIDs []uint      `json:"transfer_ids"`
	ActivityIDs []uint      `json:"activity_ids"`
}

type CreateTripRequest struct {
	Name      string      `json:"name"`
	StartDate models.Date `json:"start_date"`
	Nights    int         `json:"nights"`
	Days      []DaySpec   `json:"days"`
}
