package service

import (
	"errors"
	"fmt"
)

var (
	ErrTripNotFound      = errors.New("trip not found")
	ErrItineraryNotFound = errors.New("no recommended itinerary found")
	ErrNightsOutOfRange  = errors.New("nights must be between 2 and 8")
)

// DayCountError rejects a trip whose day list does not match its nights
// count.
type DayCountError struct {
	Days   int
	Nights int
}

func (e *DayCountError) Error() string {
	return fmt.Sprintf("number of days must match nights: got %d days for %d nights", e.Days, e.Nights)
}

// RefKind names the catalog table a dangling reference points at.
type RefKind string

const (
	RefHotel    RefKind = "hotel"
	RefTransfer RefKind = "transfer"
	RefActivity RefKind = "activity"
)

// UnresolvedRefError rejects a trip referencing a hotel, transfer
// template or activity that does not exist.
type UnresolvedRefError struct {
	Kind RefKind
	ID   uint
}

func (e *UnresolvedRefError) Error() string {
	return fmt.Sprintf("invalid %s_id: %d", e.Kind, e.ID)
}
