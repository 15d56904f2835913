package email_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/tawashy/next-auth/pkg/email"
)

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(ctx context.Context, msg email.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}
