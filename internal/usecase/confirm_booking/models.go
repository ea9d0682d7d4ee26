package confirm_booking

import "github.com/redzuankdv/Parking-App-FrontEnd/internal/domain"

// Operation тип записи в хранилище
const (
	OperationCreate = "create"
	OperationUpdate = "update"
)

// Request модель запроса на подтверждение бронирования
type Request struct {
	SessionID string
	UserID    string // пустой, если пользователь не вошел
}

// Response модель ответа
type Response struct {
	Flow      domain.BookingFlow
	Booking   domain.Booking // отправленное бронирование (квитанция)
	Operation string
}
