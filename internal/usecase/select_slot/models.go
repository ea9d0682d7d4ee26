package select_slot

import "github.com/redzuankdv/Parking-App-FrontEnd/internal/domain"

// Request модель запроса на выбор слота
type Request struct {
	SessionID string
	SlotID    domain.SlotID
}

// Response модель ответа
type Response struct {
	Flow    domain.BookingFlow
	Changed bool // false, если слот занят и выбор не изменился
}
