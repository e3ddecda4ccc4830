package mocks

import (
	"context"

	"github.com/ridloal/pos-web-client/internal/statistics/domain"
	"github.com/stretchr/testify/mock"
)

type MockStatisticsService struct {
	mock.Mock
}

func (m *MockStatisticsService) Options(ctx context.Context) (*domain.Options, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.(*domain.Options), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStatisticsService) ChartData(ctx context.Context, query domain.ChartQuery) (*domain.ChartData, error) {
	args := m.Called(ctx, query)
	if v := args.Get(0); v != nil {
		return v.(*domain.ChartData), args.Error(1)
	}
	return nil, args.Error(1)
}
