package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"autopolicy/internal/domain"
	"autopolicy/internal/service"
)

// MockAnalysisService is a mock implementation of service.AnalysisService.
type MockAnalysisService struct {
	mock.Mock
}

func (m *MockAnalysisService) AnalyzeDocument(ctx context.Context, input *service.DocumentInput) (*service.AnalysisOutcome, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AnalysisOutcome), args.Error(1)
}

func (m *MockAnalysisService) AnalyzeManualEntry(ctx context.Context, input *service.ManualEntryInput) (*service.AnalysisOutcome, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AnalysisOutcome), args.Error(1)
}

func (m *MockAnalysisService) CompareManualEntry(input *service.ManualEntryInput) (*domain.ComparisonChartData, error) {
	args := m.Called(input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ComparisonChartData), args.Error(1)
}
