package models

// Transfer is a per-day fact owned by exactly one Day. It is created by
// copying a TransferTemplate's description at assembly time and dies with
// its day.
type Transfer struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	DayID       uint   `gorm:"not null;index" json:"day_id"`
	Description string `gorm:"not null" json:"description"`
}

// Day is one dated stop. TripID is nullable: a day either belongs to a
// trip or is linked from a recommended itinerary. The schema does not
// enforce exclusivity between the two, matching the seeded data model.
type Day struct {
	ID      uint  `gorm:"primaryKey" json:"id"`
	TripID  *uint `gorm:"index" json:"trip_id,omitempty"`
	Date    Date  `gorm:"not null" json:"date"`
	HotelID uint  `gorm:"not null" json:"hotel_id"`

	Hotel      *Hotel     `gorm:"foreignKey:HotelID" json:"hotel,omitempty"`
	Transfers  []Transfer `gorm:"foreignKey:DayID;constraint:OnDelete:CASCADE" json:"transfers,omitempty"`
	Activities []Activity `gorm:"many2many:day_activities" json:"activities,omitempty"`
}

// Trip owns its days: deleting a trip cascades to its days and their
// transfers, but never touches hotels or activities.
type Trip struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"not null;index" json:"name"`
	StartDate Date   `gorm:"not null" json:"start_date"`
	Nights    int    `gorm:"not null" json:"nights"`

	Days []Day `gorm:"foreignKey:TripID;constraint:OnDelete:CASCADE" json:"days,omitempty"`
}
