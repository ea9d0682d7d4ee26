package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/redzuankdv/Parking-App-FrontEnd/internal/domain"
)

const keyPrefix = "parking:session:"

// RedisOptions параметры подключения к Redis
type RedisOptions struct {
	Address  string
	Password string
	DB       int
	PoolSize int
}

// NewRedisClient создает клиент Redis
func NewRedisClient(opts RedisOptions) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     opts.Address,
		Password: opts.Password,
		DB:       opts.DB,
		PoolSize: opts.PoolSize,
	})
}

// Ping проверяет соединение с Redis
func Ping(ctx context.Context, client *redis.Client) error {
	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("%w: failed to ping redis: %v", ErrStorage, err)
	}
	return nil
}

// RedisRepository хранит сессии в Redis в виде JSON с TTL
type RedisRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisRepository создает новый экземпляр репозитория сессий в Redis
func NewRedisRepository(client *redis.Client, ttl time.Duration) *RedisRepository {
	return &RedisRepository{
		client: client,
		ttl:    ttl,
	}
}

// Get получает сессию по id
func (r *RedisRepository) Get(ctx context.Context, id string) (*domain.ClientSession, error) {
	val, err := r.client.Get(ctx, keyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get session: %v", ErrStorage, err)
	}

	var s domain.ClientSession
	if err := json.Unmarshal(val, &s); err != nil {
		return nil, fmt.Errorf("%w: failed to unmarshal session: %v", ErrMarshal, err)
	}

	return &s, nil
}

// Save сохраняет сессию, продлевая TTL
func (r *RedisRepository) Save(ctx context.Context, s *domain.ClientSession) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMarshal, err)
	}

	if err := r.client.Set(ctx, keyPrefix+s.ID, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("%w: failed to set session: %v", ErrStorage, err)
	}

	return nil
}

// Delete удаляет сессию
func (r *RedisRepository) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, keyPrefix+id).Err(); err != nil {
		return fmt.Errorf("%w: failed to delete session: %v", ErrStorage, err)
	}
	return nil
}
