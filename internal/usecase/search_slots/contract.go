package search_slots

import (
	"context"

	"github.com/redzuankdv/Parking-App-FrontEnd/internal/domain"
)

// BookingStore интерфейс клиента хранилища бронирований
type BookingStore interface {
	// ListAll получает полную коллекцию бронирований всех пользователей
	ListAll(ctx context.Context) ([]domain.Booking, error)
}

// SessionService интерфейс сервиса клиентских сессий
type SessionService interface {
	Update(ctx context.Context, id string, fn func(sess *domain.ClientSession) error) error
}

// Metrics интерфейс счетчиков поиска
type Metrics interface {
	IncSearch(outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
