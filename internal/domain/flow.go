package domain

import "time"

// FlowState is the state of a booking flow
type FlowState string

const (
	FlowEditing    FlowState = "editing"
	FlowSearching  FlowState = "searching"
	FlowSlotsShown FlowState = "slots_shown"
	FlowSelected   FlowState = "selected"
	FlowSubmitting FlowState = "submitting"
	FlowConfirmed  FlowState = "confirmed"
)

// BookingForm holds the raw form input as entered by the user
type BookingForm struct {
	Plate       string `json:"plate"`
	Location    string `json:"location"`
	ParkingArea string `json:"parkingarea"`
	From        string `json:"from"`
	To          string `json:"to"`
}

// BookingFlow is a single create or edit interaction.
//
// editing -> searching -> slots_shown -> selected -> submitting -> confirmed.
// A failed search returns to editing, a failed submission returns to selected
// with LastError set.
type BookingFlow struct {
	EditingID    string        `json:"editingId,omitempty"`
	EditingOwner string        `json:"editingOwner,omitempty"` // uid of the edited booking's owner
	State        FlowState     `json:"state"`
	Form         BookingForm   `json:"form"`
	FieldErrors  FieldErrors   `json:"fieldErrors,omitempty"`
	Grid         *Availability `json:"grid,omitempty"`
	SelectedSlot SlotID        `json:"selectedSlot,omitempty"`
	Receipt      *Booking      `json:"receipt,omitempty"`
	LastError    string        `json:"lastError,omitempty"`

	SubmitStartedAt time.Time `json:"submitStartedAt,omitempty"` // set when the flow is saved in submitting
}

// NewBookingFlow starts an empty create flow
func NewBookingFlow() BookingFlow {
	return BookingFlow{State: FlowEditing}
}

// NewEditFlow starts an edit flow pre-filled from an existing booking
func NewEditFlow(b Booking) BookingFlow {
	return BookingFlow{
		EditingID:    b.ID,
		EditingOwner: b.UserID,
		State:        FlowEditing,
		Form: BookingForm{
			Plate:       b.Plate,
			Location:    string(b.Location),
			ParkingArea: string(b.ParkingArea),
			From:        b.InTime.String(),
			To:          b.OutTime.String(),
		},
		SelectedSlot: b.Slot,
	}
}

// IsEdit returns true if the flow edits an existing booking
func (f *BookingFlow) IsEdit() bool {
	return f.EditingID != ""
}

// CanBeSubmittedBy returns true if userID may submit the flow.
// A create flow is open to any signed-in user, an edit flow only to the booking's owner.
func (f *BookingFlow) CanBeSubmittedBy(userID string) bool {
	return !f.IsEdit() || f.EditingOwner == userID
}

// HasResults returns true if a slot grid is shown and can be acted upon
func (f *BookingFlow) HasResults() bool {
	return f.Grid != nil && (f.State == FlowSlotsShown || f.State == FlowSelected)
}

// BeginSearch moves the flow to searching with the submitted form
func (f *BookingFlow) BeginSearch(form BookingForm) error {
	if f.State == FlowSubmitting {
		return ErrFlowBusy
	}
	f.Form = form
	f.State = FlowSearching
	f.FieldErrors = nil
	f.LastError = ""
	f.Receipt = nil
	return nil
}

// RejectForm returns the flow to editing with per-field messages
func (f *BookingFlow) RejectForm(form BookingForm, errs FieldErrors) {
	f.Form = form
	f.State = FlowEditing
	f.FieldErrors = errs
	f.Grid = nil
}

// FailSearch returns the flow to editing after the bookings could not be fetched
func (f *BookingFlow) FailSearch(message string) {
	f.State = FlowEditing
	f.Grid = nil
	f.LastError = message
}

// ShowSlots stores the resolved grid. A previous selection survives only while it stays available.
func (f *BookingFlow) ShowSlots(grid Availability) {
	f.Grid = &grid
	f.LastError = ""

	if f.SelectedSlot != "" && grid.IsAvailable(f.SelectedSlot) {
		f.State = FlowSelected
		return
	}

	f.SelectedSlot = ""
	f.State = FlowSlotsShown
}

// Select picks a slot from the grid. Selecting a booked slot changes nothing and reports false.
func (f *BookingFlow) Select(id SlotID) (bool, error) {
	if !f.HasResults() {
		return false, ErrSearchRequired
	}
	if !f.Grid.Contains(id) {
		return false, ErrUnknownSlot
	}
	if !f.Grid.IsAvailable(id) {
		return false, nil
	}

	changed := f.SelectedSlot != id
	f.SelectedSlot = id
	f.State = FlowSelected
	f.LastError = ""
	return changed, nil
}

// Draft builds the booking to submit from the last search and the selected slot
func (f *BookingFlow) Draft(userID string) Booking {
	b := Booking{
		ID:     f.EditingID,
		Plate:  f.Form.Plate,
		Slot:   f.SelectedSlot,
		UserID: userID,
	}
	if f.Grid != nil {
		b.Location = f.Grid.Query.Location
		b.ParkingArea = f.Grid.Query.ParkingArea
		b.InTime = f.Grid.Query.From
		b.OutTime = f.Grid.Query.To
	}
	return b
}

// BeginSubmit moves the flow to submitting
func (f *BookingFlow) BeginSubmit() {
	f.State = FlowSubmitting
	f.LastError = ""
}

// FailSubmit returns the flow to selected keeping the form and the selection
func (f *BookingFlow) FailSubmit(message string) {
	f.State = FlowSelected
	f.LastError = message
}

// Confirm records the receipt and clears the selection
func (f *BookingFlow) Confirm(receipt Booking) {
	f.State = FlowConfirmed
	f.Receipt = &receipt
	f.SelectedSlot = ""
	f.LastError = ""
}
