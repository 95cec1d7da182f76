// Package seed loads the reference catalog and the recommended
// itineraries. Hotels, activities and transfer templates are the only way
// this data enters the system; the API never writes to these tables.
package seed

import (
	"fmt"
	"log"
	"time"

	"github.com/Roshan-Baghwar/travel-itinerary-system/internal/models"
	"gorm.io/gorm"
)

// itineraryNames covers every supported stay length; exactly one
// recommended itinerary exists per nights value in [2, 8].
var itineraryNames = map[int]string{
	2: "Krabi Weekend",
	3: "Phuket Explorer",
	4: "Andaman Escape",
	5: "Phuket & Krabi Combo",
	6: "Island Hopper",
	7: "Southern Thailand Grand Tour",
	8: "Andaman Deep Dive",
}

// Run seeds the database. It is a no-op when the catalog is already
// present, so it is safe to call on every startup.
func Run(db *gorm.DB) error {
	var hotelCount int64
	if err := db.Model(&models.Hotel{}).Count(&hotelCount).Error; err != nil {
		return fmt.Errorf("count hotels: %w", err)
	}
	if hotelCount > 0 {
		log.Println("[Seed] catalog already present, skipping")
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		hotels := []models.Hotel{
			{Name: "Hilton Phuket Arcadia", Location: "Karon Beach"},
			{Name: "Centara Grand Krabi", Location: "Ao Nang"},
			{Name: "Marriott Phuket", Location: "Patong Beach"},
			{Name: "Rayaburi Resort", Location: "Railay Beach"},
		}
		if err := tx.Create(&hotels).Error; err != nil {
			return fmt.Errorf("seed hotels: %w", err)
		}

		activities := []models.Activity{
			{Name: "Phi Phi Island Tour", Location: "Phuket"},
			{Name: "James Bond Island Tour", Location: "Phuket"},
			{Name: "Krabi 4-Island Tour", Location: "Krabi"},
			{Name: "Snorkeling at Coral Island", Location: "Phuket"},
		}
		if err := tx.Create(&activities).Error; err != nil {
			return fmt.Errorf("seed activities: %w", err)
		}

		templates := []models.TransferTemplate{
			{Description: "Phuket Airport to Karon Beach"},
			{Description: "Phuket Pier to Hotel"},
			{Description: "Krabi Airport to Ao Nang"},
			{Description: "Hotel to Railay Beach"},
		}
		if err := tx.Create(&templates).Error; err != nil {
			return fmt.Errorf("seed transfer templates: %w", err)
		}

		startDate := models.NewDate(2025, time.May, 1)
		for nights := 2; nights <= 8; nights++ {
			itinerary := models.RecommendedItinerary{
				Nights: nights,
				Name:   itineraryNames[nights],
			}
			if err := tx.Create(&itinerary).Error; err != nil {
				return fmt.Errorf("seed itinerary for %d nights: %w", nights, err)
			}

			for i := 0; i < nights; i++ {
				// Recommended days are unowned: TripID stays null, the
				// itinerary only links to them.
				day := models.Day{
					Date:    startDate.AddDays(i),
					HotelID: hotels[i%len(hotels)].ID,
				}
				if err := tx.Create(&day).Error; err != nil {
					return fmt.Errorf("seed day: %w", err)
				}

				transfer := models.Transfer{
					DayID:       day.ID,
					Description: templates[i%len(templates)].Description,
				}
				if err := tx.Create(&transfer).Error; err != nil {
					return fmt.Errorf("seed transfer: %w", err)
				}

				if err := tx.Model(&day).Association("Activities").Append(&activities[i%len(activities)]); err != nil {
					return fmt.Errorf("seed day activity: %w", err)
				}
				if err := tx.Model(&itinerary).Association("Days").Append(&day); err != nil {
					return fmt.Errorf("link itinerary day: %w", err)
				}
			}
		}

		log.Println("[Seed] database seeded")
		return nil
	})
}
