package session

import (
	"context"
	"time"

	"github.com/redzuankdv/Parking-App-FrontEnd/internal/domain"
)

// Repository хранилище клиентских сессий
type Repository interface {
	Get(ctx context.Context, id string) (*domain.ClientSession, error)
	Save(ctx context.Context, s *domain.ClientSession) error
	Delete(ctx context.Context, id string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Error(format string, v ...interface{})
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
