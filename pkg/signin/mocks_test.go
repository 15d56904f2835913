package signin

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockAdapter struct {
	mock.Mock
}

func (m *MockAdapter) GetUserByEmail(ctx context.Context, email string) (*Profile, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Profile), args.Error(1)
}

type MockAuthorizationURLBuilder struct {
	mock.Mock
}

func (m *MockAuthorizationURLBuilder) AuthorizationURL(ctx context.Context, req Request, opts Options) (string, error) {
	args := m.Called(ctx, req, opts)
	return args.String(0), args.Error(1)
}

type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendSignInEmail(ctx context.Context, email string, provider Provider, opts Options) error {
	args := m.Called(ctx, email, provider, opts)
	return args.Error(0)
}

// recordingCallback captures what the gate handed to the callback.
type recordingCallback struct {
	calls    int
	profile  Profile
	account  Account
	cc       CallbackContext
	decision Decision
	err      error
}

func (r *recordingCallback) fn(_ context.Context, p Profile, a Account, cc CallbackContext) (Decision, error) {
	r.calls++
	r.profile, r.account, r.cc = p, a, cc
	return r.decision, r.err
}

func strPtr(s string) *string { return &s }
