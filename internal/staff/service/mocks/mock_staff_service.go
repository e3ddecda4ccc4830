package mocks

import (
	"context"

	"github.com/ridloal/pos-web-client/internal/staff/domain"
	"github.com/stretchr/testify/mock"
)

type MockStaffService struct {
	mock.Mock
}

func (m *MockStaffService) Users(ctx context.Context) (*domain.UserTable, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.(*domain.UserTable), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStaffService) SaveUser(ctx context.Context, input domain.UserInput) (string, error) {
	args := m.Called(ctx, input)
	return args.String(0), args.Error(1)
}

func (m *MockStaffService) DeleteUser(ctx context.Context, userID string) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}
