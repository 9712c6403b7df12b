package cart

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/opheliasgarden/nursery-backend/pkg/logger"
	"github.com/opheliasgarden/nursery-backend/pkg/redis"
)

// Store is the key-value persistence capability behind carts. A missing or
// unreadable value is never an error: Load substitutes an empty cart.
type Store interface {
	Load(ctx context.Context, token string) (Cart, error)
	Save(ctx context.Context, token string, cart Cart) error
	Clear(ctx context.Context, token string) error
	Ping(ctx context.Context) error
}

// KV is the slice of the Redis client the cart store needs.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
	Ping(ctx context.Context) error
	CartKey(token string) string
}

var _ KV = (*redis.Client)(nil)

// RedisStore keeps each cart as a JSON blob under a namespaced key with a TTL.
type RedisStore struct {
	client KV
	ttl    time.Duration
	logg   *logger.Logger
}

// NewRedisStore wires the Redis-backed cart store.
func NewRedisStore(client KV, ttl time.Duration, logg *logger.Logger) (*RedisStore, error) {
	if client == nil {
		return nil, errors.New("redis client required")
	}
	return &RedisStore{client: client, ttl: ttl, logg: logg}, nil
}

func (s *RedisStore) Load(ctx context.Context, token string) (Cart, error) {
	raw, err := s.client.Get(ctx, s.client.CartKey(token))
	if err != nil {
		if !errors.Is(err, redis.Nil) && s.logg != nil {
			ctx = s.logg.WithCartToken(ctx, token)
			s.logg.Warn(ctx, "cart load failed, substituting empty cart")
		}
		return NewCart(), nil
	}
	var cart Cart
	if err := json.Unmarshal([]byte(raw), &cart); err != nil {
		// Corrupt persisted state recovers silently to an empty cart.
		if s.logg != nil {
			ctx = s.logg.WithCartToken(ctx, token)
			s.logg.Warn(ctx, "corrupt persisted cart, substituting empty cart")
		}
		return NewCart(), nil
	}
	return cart, nil
}

func (s *RedisStore) Save(ctx context.Context, token string, cart Cart) error {
	raw, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.client.CartKey(token), string(raw), s.ttl)
}

func (s *RedisStore) Clear(ctx context.Context, token string) error {
	return s.client.Del(ctx, s.client.CartKey(token))
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx)
}

// MemoryStore is the in-process fallback used in tests and when no Redis
// endpoint is configured. Carts vanish on restart.
type MemoryStore struct {
	mu    sync.RWMutex
	carts map[string]Cart
}

// NewMemoryStore returns an empty in-memory cart store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{carts: make(map[string]Cart)}
}

func (s *MemoryStore) Load(_ context.Context, token string) (Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if cart, ok := s.carts[token]; ok {
		return cart, nil
	}
	return NewCart(), nil
}

func (s *MemoryStore) Save(_ context.Context, token string, cart Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[token] = cart
	return nil
}

func (s *MemoryStore) Clear(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, token)
	return nil
}

func (s *MemoryStore) Ping(context.Context) error {
	return nil
}
