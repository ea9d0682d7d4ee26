package domain

// BookingCollection is the cached list of the signed-in user's bookings, in store order
type BookingCollection struct {
	OwnerID  string    `json:"ownerId,omitempty"`
	Loaded   bool      `json:"loaded"`
	Bookings []Booking `json:"bookings"`
}

// NeedsReload returns true if the cache does not belong to userID
func (c *BookingCollection) NeedsReload(userID string) bool {
	return !c.Loaded || c.OwnerID != userID
}

// Reset replaces the cache with a freshly fetched list for userID
func (c *BookingCollection) Reset(userID string, bookings []Booking) {
	c.OwnerID = userID
	c.Loaded = true
	c.Bookings = make([]Booking, len(bookings))
	copy(c.Bookings, bookings)
}

// Clear empties the cache (no signed-in user)
func (c *BookingCollection) Clear() {
	c.OwnerID = ""
	c.Loaded = false
	c.Bookings = nil
}

// List returns a copy of the cached bookings
func (c *BookingCollection) List() []Booking {
	out := make([]Booking, len(c.Bookings))
	copy(out, c.Bookings)
	return out
}

// Find returns the booking with the given id
func (c *BookingCollection) Find(id string) (Booking, bool) {
	for _, b := range c.Bookings {
		if b.ID == id {
			return b, true
		}
	}
	return Booking{}, false
}

// Append adds a created booking at the end
func (c *BookingCollection) Append(b Booking) {
	c.Bookings = append(c.Bookings, b)
}

// Merge replaces the booking with the same id by the merge of old and new fields.
// Returns false if the id is not cached.
func (c *BookingCollection) Merge(b Booking) bool {
	for i := range c.Bookings {
		if c.Bookings[i].ID == b.ID {
			c.Bookings[i] = MergeBooking(c.Bookings[i], b)
			return true
		}
	}
	return false
}

// Remove drops the booking with the given id. Returns false if it was not cached.
func (c *BookingCollection) Remove(id string) bool {
	for i := range c.Bookings {
		if c.Bookings[i].ID == id {
			c.Bookings = append(c.Bookings[:i:i], c.Bookings[i+1:]...)
			return true
		}
	}
	return false
}
