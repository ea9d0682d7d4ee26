package domain

import "time"

// ClientSession is the per-browser state kept by the service between requests
type ClientSession struct {
	ID         string            `json:"id"`
	Collection BookingCollection `json:"collection"`
	Flow       BookingFlow       `json:"flow"`
	UpdatedAt  time.Time         `json:"updatedAt"`
}

// NewClientSession creates an empty session with a fresh create flow
func NewClientSession(id string, now time.Time) *ClientSession {
	return &ClientSession{
		ID:        id,
		Flow:      NewBookingFlow(),
		UpdatedAt: now,
	}
}
