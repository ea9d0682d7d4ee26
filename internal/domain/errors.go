package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrSearchRequired is returned when a slot operation runs before a successful search
	ErrSearchRequired = errors.New("domain: search for available slots first")

	// ErrUnknownSlot is returned for a slot id outside the slot catalog
	ErrUnknownSlot = errors.New("domain: unknown slot")

	// ErrFlowBusy is returned while a submission is in flight
	ErrFlowBusy = errors.New("domain: booking is being submitted")
)

// Form field names used as FieldErrors keys
const (
	FieldPlate       = "plate"
	FieldLocation    = "location"
	FieldParkingArea = "parkingarea"
	FieldFrom        = "from"
	FieldTo          = "to"
	FieldSlot        = "slot"
	FieldUserID      = "userId"
)

// FieldErrors maps a form field to a user-facing message
type FieldErrors map[string]string

// Add records a message for a field. The first message for a field wins.
func (e FieldErrors) Add(field, message string) {
	if _, exists := e[field]; exists {
		return
	}
	e[field] = message
}

// HasErrors returns true if at least one field failed
func (e FieldErrors) HasErrors() bool {
	return len(e) > 0
}

// Error implements error with fields in sorted order
func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, e[field]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
