package oauth

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// State is what the callback endpoint needs to finish a handshake.
type State struct {
	Provider    string    `json:"provider"`
	Verifier    string    `json:"verifier,omitempty"`
	RedirectURL string    `json:"redirect_url"`
	CreatedAt   time.Time `json:"created_at"`
}

// StateStore persists handshake state between the redirect to the provider
// and its callback. Consume must delete the entry it returns.
type StateStore interface {
	Save(ctx context.Context, key string, st State, ttl time.Duration) error
	Consume(ctx context.Context, key string) (State, error)
}

// MemoryStateStore keeps state in process memory. Suitable for a single
// instance and for tests.
type MemoryStateStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
}

type memoryEntry struct {
	state     State
	expiresAt time.Time
}

// NewMemoryStateStore creates an empty in-memory store.
func NewMemoryStateStore() *MemoryStateStore {
	return &MemoryStateStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (m *MemoryStateStore) Save(_ context.Context, key string, st State, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	for k, e := range m.entries {
		if !now.Before(e.expiresAt) {
			delete(m.entries, k)
		}
	}
	m.entries[key] = memoryEntry{state: st, expiresAt: now.Add(ttl)}
	return nil
}

func (m *MemoryStateStore) Consume(_ context.Context, key string) (State, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[key]
	if !ok {
		return State{}, ErrStateNotFound
	}
	delete(m.entries, key)
	if !m.now().Before(e.expiresAt) {
		return State{}, ErrStateNotFound
	}
	return e.state, nil
}

// RedisClient is the subset of go-redis used by RedisStateStore.
// *redis.Client and *redis.ClusterClient satisfy it.
type RedisClient interface {
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	GetDel(ctx context.Context, key string) *redis.StringCmd
}

// RedisStateStore keeps state in Redis with a TTL and reads it back with
// GETDEL, so each state can be consumed once across instances.
type RedisStateStore struct {
	client RedisClient
	prefix string
}

// NewRedisStateStore creates a store on top of client. Keys are prefixed with
// prefix, or "oauth:state:" when empty.
func NewRedisStateStore(client RedisClient, prefix string) *RedisStateStore {
	if prefix == "" {
		prefix = "oauth:state:"
	}
	return &RedisStateStore{client: client, prefix: prefix}
}

func (r *RedisStateStore) Save(ctx context.Context, key string, st State, ttl time.Duration) error {
	raw, err := json.Marshal(st)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.prefix+key, raw, ttl).Err()
}

func (r *RedisStateStore) Consume(ctx context.Context, key string) (State, error) {
	raw, err := r.client.GetDel(ctx, r.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return State{}, ErrStateNotFound
	}
	if err != nil {
		return State{}, err
	}
	var st State
	if err := json.Unmarshal(raw, &st); err != nil {
		return State{}, err
	}
	return st, nil
}
