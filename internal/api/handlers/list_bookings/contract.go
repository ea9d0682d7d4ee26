package list_bookings

import (
	"context"

	"github.com/redzuankdv/Parking-App-FrontEnd/internal/domain"
)

type CollectionService interface {
	List(ctx context.Context, sessionID, userID string) ([]domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
