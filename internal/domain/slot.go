package domain

import "fmt"

// SlotID identifies a unit of parking capacity ("P1".."P10")
type SlotID string

// SlotStatus is the availability label of a slot for a query window
type SlotStatus string

const (
	SlotAvailable SlotStatus = "available"
	SlotBooked    SlotStatus = "booked"
)

// DefaultSlotCount is the number of slots in every facility
const DefaultSlotCount = 10

// SlotCatalog is the fixed ordered enumeration of slot ids.
// The same ids are shared by every facility.
type SlotCatalog struct {
	ids   []SlotID
	index map[SlotID]struct{}
}

// NewSlotCatalog creates a catalog with the given ids in the given order
func NewSlotCatalog(ids ...SlotID) *SlotCatalog {
	c := &SlotCatalog{
		ids:   make([]SlotID, 0, len(ids)),
		index: make(map[SlotID]struct{}, len(ids)),
	}
	for _, id := range ids {
		if _, dup := c.index[id]; dup {
			continue
		}
		c.ids = append(c.ids, id)
		c.index[id] = struct{}{}
	}
	return c
}

// NewNumberedSlotCatalog creates the catalog prefix1..prefixN
func NewNumberedSlotCatalog(prefix string, count int) *SlotCatalog {
	ids := make([]SlotID, 0, count)
	for i := 1; i <= count; i++ {
		ids = append(ids, SlotID(fmt.Sprintf("%s%d", prefix, i)))
	}
	return NewSlotCatalog(ids...)
}

// DefaultSlotCatalog is P1..P10
var DefaultSlotCatalog = NewNumberedSlotCatalog("P", DefaultSlotCount)

// ListSlotIDs returns the catalog ids in stable order. The result is a copy.
func (c *SlotCatalog) ListSlotIDs() []SlotID {
	out := make([]SlotID, len(c.ids))
	copy(out, c.ids)
	return out
}

// Contains returns true if id belongs to the catalog
func (c *SlotCatalog) Contains(id SlotID) bool {
	_, ok := c.index[id]
	return ok
}

// Len returns the number of slots
func (c *SlotCatalog) Len() int {
	return len(c.ids)
}

// SlotState is a slot with its availability label
type SlotState struct {
	ID     SlotID     `json:"id"`
	Status SlotStatus `json:"status"`
}

// IsAvailable returns true if the slot can be selected
func (s SlotState) IsAvailable() bool {
	return s.Status == SlotAvailable
}
