package domain

import (
	"github.com/redzuankdv/Parking-App-FrontEnd/pkg/types"
)

// AvailabilityQuery describes a slot search for one facility and the window [From, To)
type AvailabilityQuery struct {
	Location    Location       `json:"location"`
	ParkingArea ParkingArea    `json:"parkingarea"`
	From        types.DateTime `json:"from"`
	To          types.DateTime `json:"to"`

	// ExcludeBookingID is ignored when matching bookings, so an edited booking
	// does not block its own slot. Empty excludes nothing.
	ExcludeBookingID string `json:"excludeBookingId,omitempty"`
}

// Facility returns the facility the query is scoped to
func (q AvailabilityQuery) Facility() Facility {
	return Facility{Location: q.Location, ParkingArea: q.ParkingArea}
}

// Availability is the labelled slot grid for a query, in catalog order
type Availability struct {
	Query AvailabilityQuery `json:"query"`
	Slots []SlotState       `json:"slots"`
}

// ResolveAvailability labels every catalog slot as booked or available for the query.
//
// A slot is booked when at least one booking of the same facility, other than
// ExcludeBookingID, overlaps [From, To) on that slot. Booked slot ids that are
// not part of the catalog are ignored. The bookings slice is not modified.
func ResolveAvailability(catalog *SlotCatalog, bookings []Booking, query AvailabilityQuery) Availability {
	booked := make(map[SlotID]struct{})
	for i := range bookings {
		b := &bookings[i]
		if b.Location != query.Location || b.ParkingArea != query.ParkingArea {
			continue
		}
		if query.ExcludeBookingID != "" && b.ID == query.ExcludeBookingID {
			continue
		}
		if !b.Overlaps(query.From, query.To) {
			continue
		}
		booked[b.Slot] = struct{}{}
	}

	ids := catalog.ListSlotIDs()
	slots := make([]SlotState, 0, len(ids))
	for _, id := range ids {
		status := SlotAvailable
		if _, ok := booked[id]; ok {
			status = SlotBooked
		}
		slots = append(slots, SlotState{ID: id, Status: status})
	}

	return Availability{
		Query: query,
		Slots: slots,
	}
}

// Status returns the label of a slot; ok is false if the slot is not in the grid
func (a *Availability) Status(id SlotID) (status SlotStatus, ok bool) {
	for _, s := range a.Slots {
		if s.ID == id {
			return s.Status, true
		}
	}
	return "", false
}

// Contains returns true if the slot is part of the grid
func (a *Availability) Contains(id SlotID) bool {
	_, ok := a.Status(id)
	return ok
}

// IsAvailable returns true if the slot is in the grid and labelled available
func (a *Availability) IsAvailable(id SlotID) bool {
	status, ok := a.Status(id)
	return ok && status == SlotAvailable
}

// BookedIDs returns the booked slot ids in catalog order
func (a *Availability) BookedIDs() []SlotID {
	return a.idsWithStatus(SlotBooked)
}

// AvailableIDs returns the available slot ids in catalog order
func (a *Availability) AvailableIDs() []SlotID {
	return a.idsWithStatus(SlotAvailable)
}

func (a *Availability) idsWithStatus(status SlotStatus) []SlotID {
	out := make([]SlotID, 0, len(a.Slots))
	for _, s := range a.Slots {
		if s.Status == status {
			out = append(out, s.ID)
		}
	}
	return out
}
