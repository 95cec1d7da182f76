package models

// Hotel is seeded reference data. Trips point at hotels, never own them.
type Hotel struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"not null" json:"name"`
	Location string `gorm:"not null" json:"location"`
}

// Activity is seeded reference data, shared across days via a join table.
type Activity struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"not null" json:"name"`
	Location string `gorm:"not null" json:"location"`
}

// TransferTemplate is the catalog side of a transfer. Choosing one for a
// day copies its description into an owned Transfer row; the template
// itself is never attached to anything.
type TransferTemplate struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Description string `gorm:"not null" json:"description"`
}
