// Package memory is an in-process storage adapter for email sign-in, meant
// for development and tests.
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/tawashy/next-auth/pkg/signin"
)

var _ signin.Adapter = (*Users)(nil)

// Users holds profiles keyed by lower-cased email.
type Users struct {
	mu    sync.RWMutex
	users map[string]signin.Profile
}

// NewUsers creates a store seeded with profiles.
func NewUsers(profiles ...signin.Profile) *Users {
	u := &Users{users: make(map[string]signin.Profile, len(profiles))}
	for _, p := range profiles {
		u.Put(p)
	}
	return u
}

// Put stores p, assigning an id when it has none.
func (u *Users) Put(p signin.Profile) signin.Profile {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	p.Email = strings.ToLower(p.Email)

	u.mu.Lock()
	u.users[p.Email] = p
	u.mu.Unlock()
	return p
}

// GetUserByEmail returns a copy of the stored profile, or nil.
func (u *Users) GetUserByEmail(_ context.Context, email string) (*signin.Profile, error) {
	u.mu.RLock()
	p, ok := u.users[strings.ToLower(email)]
	u.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	return &p, nil
}
