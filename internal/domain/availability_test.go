package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redzuankdv/Parking-App-FrontEnd/pkg/types"
)

func dt(s string) types.DateTime {
	return types.MustParseDateTime(s)
}

func schoolA(id string, slot SlotID, from, to string) Booking {
	return Booking{
		ID:          id,
		Plate:       "WXY1234",
		Location:    LocationSigmaSchool,
		ParkingArea: ParkingAreaA,
		Slot:        slot,
		InTime:      dt(from),
		OutTime:     dt(to),
		UserID:      "u1",
	}
}

func queryA(from, to string) AvailabilityQuery {
	return AvailabilityQuery{
		Location:    LocationSigmaSchool,
		ParkingArea: ParkingAreaA,
		From:        dt(from),
		To:          dt(to),
	}
}

func TestResolveAvailabilityOverlapBooksSlot(t *testing.T) {
	bookings := []Booking{schoolA("b1", "P3", "2024-01-01T10:00", "2024-01-01T12:00")}

	got := ResolveAvailability(DefaultSlotCatalog, bookings, queryA("2024-01-01T11:00", "2024-01-01T13:00"))

	require.Len(t, got.Slots, 10)
	assert.Equal(t, []SlotID{"P3"}, got.BookedIDs())
	assert.False(t, got.IsAvailable("P3"))
	assert.True(t, got.IsAvailable("P1"))
	assert.Len(t, got.AvailableIDs(), 9)
}

func TestResolveAvailabilityTouchingIsFree(t *testing.T) {
	bookings := []Booking{schoolA("b1", "P3", "2024-01-01T10:00", "2024-01-01T12:00")}

	got := ResolveAvailability(DefaultSlotCatalog, bookings, queryA("2024-01-01T12:00", "2024-01-01T14:00"))

	assert.Empty(t, got.BookedIDs())
	assert.Len(t, got.AvailableIDs(), 10)
}

func TestResolveAvailabilityExcludesEditedBooking(t *testing.T) {
	bookings := []Booking{schoolA("b1", "P3", "2024-01-01T10:00", "2024-01-01T12:00")}
	q := queryA("2024-01-01T10:30", "2024-01-01T11:30")
	q.ExcludeBookingID = "b1"

	got := ResolveAvailability(DefaultSlotCatalog, bookings, q)

	assert.True(t, got.IsAvailable("P3"))
	assert.Empty(t, got.BookedIDs())
}

func TestResolveAvailabilityOtherFacilityIgnored(t *testing.T) {
	other := schoolA("b1", "P3", "2024-01-01T10:00", "2024-01-01T12:00")
	other.ParkingArea = ParkingAreaB
	office := schoolA("b2", "P4", "2024-01-01T10:00", "2024-01-01T12:00")
	office.Location = LocationSigmaOffice

	got := ResolveAvailability(DefaultSlotCatalog, []Booking{other, office}, queryA("2024-01-01T11:00", "2024-01-01T13:00"))

	assert.Empty(t, got.BookedIDs())
}

func TestResolveAvailabilityIgnoresSlotsOutsideCatalog(t *testing.T) {
	bookings := []Booking{
		schoolA("b1", "P42", "2024-01-01T10:00", "2024-01-01T12:00"),
		schoolA("b2", "P1", "2024-01-01T10:00", "2024-01-01T12:00"),
	}

	got := ResolveAvailability(DefaultSlotCatalog, bookings, queryA("2024-01-01T11:00", "2024-01-01T13:00"))

	require.Len(t, got.Slots, 10)
	assert.Equal(t, []SlotID{"P1"}, got.BookedIDs())
	assert.False(t, got.Contains("P42"))
}

func TestResolveAvailabilityKeepsCatalogOrderAndInput(t *testing.T) {
	bookings := []Booking{
		schoolA("b2", "P9", "2024-01-01T10:00", "2024-01-01T12:00"),
		schoolA("b1", "P2", "2024-01-01T10:00", "2024-01-01T12:00"),
	}
	before := make([]Booking, len(bookings))
	copy(before, bookings)

	got := ResolveAvailability(DefaultSlotCatalog, bookings, queryA("2024-01-01T09:00", "2024-01-01T11:00"))

	assert.Equal(t, []SlotID{"P2", "P9"}, got.BookedIDs())
	for i, s := range got.Slots {
		assert.Equal(t, DefaultSlotCatalog.ListSlotIDs()[i], s.ID)
	}
	assert.Equal(t, before, bookings)
}

func TestAvailabilityStatusUnknownSlot(t *testing.T) {
	got := ResolveAvailability(DefaultSlotCatalog, nil, queryA("2024-01-01T09:00", "2024-01-01T11:00"))

	_, ok := got.Status("Z1")
	assert.False(t, ok)
	assert.False(t, got.IsAvailable("Z1"))
}
