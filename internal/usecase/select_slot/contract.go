package select_slot

import (
	"context"

	"github.com/redzuankdv/Parking-App-FrontEnd/internal/domain"
)

// SessionService интерфейс сервиса клиентских сессий
type SessionService interface {
	Update(ctx context.Context, id string, fn func(sess *domain.ClientSession) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}
