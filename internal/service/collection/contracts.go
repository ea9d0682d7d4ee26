package collection

import (
	"context"

	"github.com/redzuankdv/Parking-App-FrontEnd/internal/domain"
)

// BookingStore интерфейс клиента хранилища бронирований
type BookingStore interface {
	ListByUser(ctx context.Context, userID string) ([]domain.Booking, error)
	Delete(ctx context.Context, id string) error
}

// SessionService интерфейс сервиса клиентских сессий
type SessionService interface {
	Update(ctx context.Context, id string, fn func(sess *domain.ClientSession) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
