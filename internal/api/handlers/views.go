package handlers

import "github.com/redzuankdv/Parking-App-FrontEnd/internal/domain"

// BookingResponse бронирование в ответе BFF
type BookingResponse struct {
	ID          string `json:"id"`
	Plate       string `json:"plate"`
	Location    string `json:"location"`
	ParkingArea string `json:"parkingarea"`
	Slot        string `json:"slot"`
	InTime      string `json:"intime"`
	OutTime     string `json:"outtime"`
	UserID      string `json:"userId"`
}

// SlotResponse слот сетки с меткой доступности
type SlotResponse struct {
	ID       string `json:"id"`
	Status   string `json:"status"`
	Selected bool   `json:"selected"`
}

// SearchQueryResponse окно поиска, для которого построена сетка
type SearchQueryResponse struct {
	Location    string `json:"location"`
	ParkingArea string `json:"parkingarea"`
	From        string `json:"from"`
	To          string `json:"to"`
}

// FlowResponse состояние формы бронирования для отрисовки клиентом
type FlowResponse struct {
	EditingID    string               `json:"editingId,omitempty"`
	State        string               `json:"state"`
	Form         domain.BookingForm   `json:"form"`
	FieldErrors  map[string]string    `json:"fieldErrors,omitempty"`
	Query        *SearchQueryResponse `json:"query,omitempty"`
	Slots        []SlotResponse       `json:"slots"`
	SelectedSlot string               `json:"selectedSlot,omitempty"`
	CanSubmit    bool                 `json:"canSubmit"`
	Receipt      *BookingResponse     `json:"receipt,omitempty"`
	LastError    string               `json:"lastError,omitempty"`
}

// FromBooking конвертирует доменное бронирование в ответ
func FromBooking(b domain.Booking) BookingResponse {
	return BookingResponse{
		ID:          b.ID,
		Plate:       b.Plate,
		Location:    string(b.Location),
		ParkingArea: string(b.ParkingArea),
		Slot:        string(b.Slot),
		InTime:      b.InTime.String(),
		OutTime:     b.OutTime.String(),
		UserID:      b.UserID,
	}
}

// FromBookings конвертирует список бронирований, сохраняя порядок
func FromBookings(list []domain.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(list))
	for _, b := range list {
		out = append(out, FromBooking(b))
	}
	return out
}

// FromFlow конвертирует flow в ответ. Сетка отдается только когда по ней можно действовать.
func FromFlow(f domain.BookingFlow) FlowResponse {
	resp := FlowResponse{
		EditingID:    f.EditingID,
		State:        string(f.State),
		Form:         f.Form,
		Slots:        []SlotResponse{},
		SelectedSlot: string(f.SelectedSlot),
		CanSubmit:    f.State == domain.FlowSelected && f.SelectedSlot != "",
		LastError:    f.LastError,
	}

	if f.FieldErrors.HasErrors() {
		resp.FieldErrors = f.FieldErrors
	}

	if f.HasResults() {
		q := f.Grid.Query
		resp.Query = &SearchQueryResponse{
			Location:    string(q.Location),
			ParkingArea: string(q.ParkingArea),
			From:        q.From.String(),
			To:          q.To.String(),
		}
		for _, s := range f.Grid.Slots {
			resp.Slots = append(resp.Slots, SlotResponse{
				ID:       string(s.ID),
				Status:   string(s.Status),
				Selected: s.ID == f.SelectedSlot,
			})
		}
	}

	if f.Receipt != nil {
		receipt := FromBooking(*f.Receipt)
		resp.Receipt = &receipt
	}

	return resp
}
