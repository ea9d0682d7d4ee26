package confirm_booking

import (
	"context"

	"github.com/redzuankdv/Parking-App-FrontEnd/internal/domain"
)

// BookingStore интерфейс клиента хранилища бронирований (только запись)
type BookingStore interface {
	Create(ctx context.Context, booking domain.Booking) (*domain.Booking, error)
	Update(ctx context.Context, booking domain.Booking) error
}

// SessionService интерфейс сервиса клиентских сессий
type SessionService interface {
	Update(ctx context.Context, id string, fn func(sess *domain.ClientSession) error) error
}

// CollectionService интерфейс локальной коллекции бронирований пользователя
type CollectionService interface {
	ApplyCreated(sess *domain.ClientSession, userID string, b domain.Booking)
	ApplyUpdated(sess *domain.ClientSession, userID string, b domain.Booking)
}

// Metrics интерфейс счетчиков отправки бронирований
type Metrics interface {
	IncSubmission(operation, outcome string)
	IncConflict(source string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
