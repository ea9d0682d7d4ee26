package start_edit

import "github.com/redzuankdv/Parking-App-FrontEnd/internal/domain"

// Request модель запроса на начало редактирования
type Request struct {
	SessionID string
	UserID    string
	BookingID string
}

// Response модель ответа с заполненной формой
type Response struct {
	Flow domain.BookingFlow
}
