package sessions

import (
	"context"
	"time"

	"github.com/redzuankdv/Parking-App-FrontEnd/internal/domain"
)

// SessionRepository интерфейс хранилища клиентских сессий
type SessionRepository interface {
	Get(ctx context.Context, id string) (*domain.ClientSession, error)
	Save(ctx context.Context, s *domain.ClientSession) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
