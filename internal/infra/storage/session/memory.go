package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redzuankdv/Parking-App-FrontEnd/internal/domain"
)

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// MemoryRepository хранит сессии в памяти процесса.
// Используется без Redis и как запасное хранилище в FailoverRepository.
type MemoryRepository struct {
	mu           sync.Mutex
	entries      map[string]memoryEntry
	ttl          time.Duration
	timeProvider TimeProvider
}

// NewMemoryRepository создает новый экземпляр репозитория сессий в памяти
func NewMemoryRepository(ttl time.Duration) *MemoryRepository {
	return &MemoryRepository{
		entries:      make(map[string]memoryEntry),
		ttl:          ttl,
		timeProvider: &RealTimeProvider{},
	}
}

// Get получает сессию по id. Возвращается копия, изменения не видны до Save.
func (r *MemoryRepository) Get(_ context.Context, id string) (*domain.ClientSession, error) {
	r.mu.Lock()
	entry, ok := r.entries[id]
	if ok && r.ttl > 0 && r.timeProvider.Now().After(entry.expiresAt) {
		delete(r.entries, id)
		ok = false
	}
	r.mu.Unlock()

	if !ok {
		return nil, ErrSessionNotFound
	}

	var s domain.ClientSession
	if err := json.Unmarshal(entry.data, &s); err != nil {
		return nil, fmt.Errorf("%w: failed to unmarshal session: %v", ErrMarshal, err)
	}
	return &s, nil
}

// Save сохраняет сессию, продлевая TTL
func (r *MemoryRepository) Save(_ context.Context, s *domain.ClientSession) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMarshal, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[s.ID] = memoryEntry{
		data:      data,
		expiresAt: r.timeProvider.Now().Add(r.ttl),
	}
	r.evictExpiredLocked()
	return nil
}

// Delete удаляет сессию
func (r *MemoryRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, id)
	return nil
}

func (r *MemoryRepository) evictExpiredLocked() {
	if r.ttl <= 0 {
		return
	}
	now := r.timeProvider.Now()
	for id, entry := range r.entries {
		if now.After(entry.expiresAt) {
			delete(r.entries, id)
		}
	}
}
