package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/redzuankdv/Parking-App-FrontEnd/internal/domain"
)

// recoveryInterval через сколько после отказа снова пробуем основное хранилище
const recoveryInterval = time.Minute

// FailoverRepository использует primary (Redis), а при его отказе переключается на fallback (память)
type FailoverRepository struct {
	primary      Repository
	fallback     Repository
	logger       Logger
	timeProvider TimeProvider

	mu        sync.Mutex
	isDown    bool
	lastCheck time.Time
}

// NewFailoverRepository создает репозиторий с переключением на запасное хранилище
func NewFailoverRepository(primary, fallback Repository, logger Logger) *FailoverRepository {
	return &FailoverRepository{
		primary:      primary,
		fallback:     fallback,
		logger:       logger,
		timeProvider: &RealTimeProvider{},
	}
}

// Get получает сессию из доступного хранилища
func (r *FailoverRepository) Get(ctx context.Context, id string) (*domain.ClientSession, error) {
	if r.usePrimary() {
		s, err := r.primary.Get(ctx, id)
		if err == nil || errors.Is(err, ErrSessionNotFound) {
			return s, err
		}
		r.markDown(err)
	}
	return r.fallback.Get(ctx, id)
}

// Save сохраняет сессию в доступное хранилище
func (r *FailoverRepository) Save(ctx context.Context, s *domain.ClientSession) error {
	if r.usePrimary() {
		err := r.primary.Save(ctx, s)
		if err == nil {
			return nil
		}
		r.markDown(err)
	}
	return r.fallback.Save(ctx, s)
}

// Delete удаляет сессию из обоих хранилищ
func (r *FailoverRepository) Delete(ctx context.Context, id string) error {
	if r.usePrimary() {
		if err := r.primary.Delete(ctx, id); err != nil {
			r.markDown(err)
		}
	}
	return r.fallback.Delete(ctx, id)
}

// usePrimary true, если основное хранилище работает или пора проверить его восстановление
func (r *FailoverRepository) usePrimary() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.isDown {
		return true
	}
	if r.timeProvider.Now().Sub(r.lastCheck) > recoveryInterval {
		r.isDown = false
		return true
	}
	return false
}

func (r *FailoverRepository) markDown(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.isDown {
		r.logger.Error("Primary session storage failed, falling back to memory: %v", err)
	}
	r.isDown = true
	r.lastCheck = r.timeProvider.Now()
}
