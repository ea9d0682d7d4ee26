package domain

import (
	"github.com/redzuankdv/Parking-App-FrontEnd/pkg/types"
)

// Location is a parking facility site
type Location string

const (
	LocationSigmaSchool Location = "SigmaSchool"
	LocationSigmaOffice Location = "SigmaOffice"
)

// Locations is the closed set of supported locations
var Locations = []Location{
	LocationSigmaSchool,
	LocationSigmaOffice,
}

// IsValid returns true if the location belongs to the closed set
func (l Location) IsValid() bool {
	for _, known := range Locations {
		if l == known {
			return true
		}
	}
	return false
}

// ParkingArea is an area inside a location
type ParkingArea string

const (
	ParkingAreaA ParkingArea = "Parking A"
	ParkingAreaB ParkingArea = "Parking B"
)

// ParkingAreas is the closed set of supported parking areas
var ParkingAreas = []ParkingArea{
	ParkingAreaA,
	ParkingAreaB,
}

// IsValid returns true if the area belongs to the closed set
func (a ParkingArea) IsValid() bool {
	for _, known := range ParkingAreas {
		if a == known {
			return true
		}
	}
	return false
}

// Facility is the (location, parking area) pair under which slots and time conflicts are scoped
type Facility struct {
	Location    Location
	ParkingArea ParkingArea
}

// Booking is a parking reservation for the half-open interval [InTime, OutTime)
type Booking struct {
	ID          string         `json:"id,omitempty"` // assigned by the booking store on creation
	Plate       string         `json:"plate"`
	Location    Location       `json:"location"`
	ParkingArea ParkingArea    `json:"parkingarea"`
	Slot        SlotID         `json:"slot"`
	InTime      types.DateTime `json:"intime"`
	OutTime     types.DateTime `json:"outtime"`
	UserID      string         `json:"userId"`
}

// Facility returns the facility the booking belongs to
func (b *Booking) Facility() Facility {
	return Facility{Location: b.Location, ParkingArea: b.ParkingArea}
}

// Overlaps returns true if the booking interval intersects [from, to)
func (b *Booking) Overlaps(from, to types.DateTime) bool {
	return IntervalsOverlap(b.InTime.Time(), b.OutTime.Time(), from.Time(), to.Time())
}

// HasValidInterval returns true if InTime is strictly before OutTime
func (b *Booking) HasValidInterval() bool {
	return !b.InTime.IsZero() && !b.OutTime.IsZero() && b.InTime.Before(b.OutTime)
}

// MergeBooking returns old with every non-empty field of update applied on top.
// The ID of old is always kept.
func MergeBooking(old, update Booking) Booking {
	merged := old

	if update.Plate != "" {
		merged.Plate = update.Plate
	}
	if update.Location != "" {
		merged.Location = update.Location
	}
	if update.ParkingArea != "" {
		merged.ParkingArea = update.ParkingArea
	}
	if update.Slot != "" {
		merged.Slot = update.Slot
	}
	if !update.InTime.IsZero() {
		merged.InTime = update.InTime
	}
	if !update.OutTime.IsZero() {
		merged.OutTime = update.OutTime
	}
	if update.UserID != "" {
		merged.UserID = update.UserID
	}

	return merged
}
