package pg

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/tawashy/next-auth/pkg/signin"
)

var _ signin.Adapter = (*Users)(nil)

const getUserByEmail = `SELECT id, email, COALESCE(name, ''), COALESCE(image, ''), email_verified
FROM users
WHERE email = $1`

// Querier is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Users looks up users stored in the users table.
type Users struct {
	db Querier
}

// NewUsers creates a Users adapter over db.
func NewUsers(db Querier) *Users {
	return &Users{db: db}
}

// GetUserByEmail returns the user with the given address, or nil when there
// is none.
func (u *Users) GetUserByEmail(ctx context.Context, email string) (*signin.Profile, error) {
	var p signin.Profile
	err := u.db.QueryRow(ctx, getUserByEmail, email).
		Scan(&p.ID, &p.Email, &p.Name, &p.Image, &p.EmailVerified)
	if IsNotFoundError(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Join(ErrUserLookupFailed, err)
	}
	return &p, nil
}
