package search_slots

import "github.com/redzuankdv/Parking-App-FrontEnd/internal/domain"

// Request модель запроса на поиск свободных слотов
type Request struct {
	SessionID string             // ID клиентской сессии
	UserID    string             // ID пользователя (для логирования, может быть пустым)
	Form      domain.BookingForm // Поля формы как их ввел пользователь
}

// Response модель ответа с сеткой слотов
type Response struct {
	Flow domain.BookingFlow // Состояние flow после поиска
}
