package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"printflow/internal/domain"
)

// MockDispatcher is a mock implementation of port.NotificationDispatcher.
type MockDispatcher struct {
	mock.Mock
}

func (m *MockDispatcher) Dispatch(ctx context.Context, notification domain.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}
