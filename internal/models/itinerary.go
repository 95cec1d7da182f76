package models

// RecommendedItinerary is a prebuilt template itinerary keyed by stay
// length. Unlike Trip it does not own its days: they are linked through a
// join table, so deleting an itinerary leaves the days intact.
type RecommendedItinerary struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Nights int    `gorm:"not null;index" json:"nights"`
	Name   string `gorm:"not null" json:"name"`

	Days []Day `gorm:"many2many:recommended_itinerary_days" json:"days,omitempty"`
}
