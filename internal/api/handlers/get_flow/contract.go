package get_flow

import (
	"context"

	"github.com/redzuankdv/Parking-App-FrontEnd/internal/domain"
)

type SessionService interface {
	Get(ctx context.Context, id string) (*domain.ClientSession, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
