package new_flow

import (
	"context"

	"github.com/redzuankdv/Parking-App-FrontEnd/internal/domain"
)

type SessionService interface {
	ResetFlow(ctx context.Context, id string) (*domain.BookingFlow, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
