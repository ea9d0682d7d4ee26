package search_slots

import (
	"github.com/redzuankdv/Parking-App-FrontEnd/internal/domain"
	searchSlots "github.com/redzuankdv/Parking-App-FrontEnd/internal/usecase/search_slots"
)

// SearchSlotsRequest HTTP request model: поля формы как их ввел пользователь
type SearchSlotsRequest struct {
	Plate       string `json:"plate"`
	Location    string `json:"location"`
	ParkingArea string `json:"parkingarea"`
	From        string `json:"from"`
	To          string `json:"to"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SearchSlotsRequest) ToUseCaseRequest(sessionID, userID string) *searchSlots.Request {
	return &searchSlots.Request{
		SessionID: sessionID,
		UserID:    userID,
		Form: domain.BookingForm{
			Plate:       r.Plate,
			Location:    r.Location,
			ParkingArea: r.ParkingArea,
			From:        r.From,
			To:          r.To,
		},
	}
}
