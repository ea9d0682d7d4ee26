package bookings

import (
	"context"

	"github.com/redzuankdv/Parking-App-FrontEnd/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, b domain.Booking) (*domain.Booking, error)
	GetByID(ctx context.Context, id string, forUpdate bool) (*domain.Booking, error)
	List(ctx context.Context, userID string) ([]domain.Booking, error)
	ListOverlapping(ctx context.Context, q domain.AvailabilityQuery) ([]domain.Booking, error)
	Update(ctx context.Context, b domain.Booking) error
	Delete(ctx context.Context, id string) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics учет отклоненных из-за пересечения записей
type Metrics interface {
	IncConflict(source string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
