package mocks

import (
	"context"

	"contentapi/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockContentService struct {
	mock.Mock
}

func (m *MockContentService) Resolve(ctx context.Context, id string) (*model.ContentRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ContentRecord), args.Error(1)
}

func (m *MockContentService) Search(ctx context.Context, query string, limit int) []model.Document {
	args := m.Called(ctx, query, limit)
	return args.Get(0).([]model.Document)
}

func (m *MockContentService) Summarize(ctx context.Context, id string) (*model.SummaryRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SummaryRecord), args.Error(1)
}

func (m *MockContentService) SummarizeBrief(ctx context.Context, id string) (*model.SummaryRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.SummaryRecord), args.Error(1)
}
