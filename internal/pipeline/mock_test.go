package pipeline

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/sells-group/cfo-monitor/internal/collect"
	"github.com/sells-group/cfo-monitor/internal/model"
)

// scannerFunc adapts a function to source.Scanner.
type scannerFunc func(ctx context.Context, col *collect.Collector) int

func (f scannerFunc) Scan(ctx context.Context, col *collect.Collector) int {
	return f(ctx, col)
}

type mockEnricher struct {
	mock.Mock
}

func (m *mockEnricher) Enrich(ctx context.Context, findings []model.Finding) []model.TearSheet {
	args := m.Called(ctx, findings)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]model.TearSheet)
}

type mockAssembler struct {
	mock.Mock
}

func (m *mockAssembler) Assemble(run *model.RunContext) model.Report {
	args := m.Called(run)
	return args.Get(0).(model.Report)
}

type mockMailer struct {
	mock.Mock
}

func (m *mockMailer) Send(ctx context.Context, report model.Report) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

type mockStore struct {
	mock.Mock
}

func (m *mockStore) Migrate(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockStore) CreateRun(ctx context.Context) (*model.Run, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Run), args.Error(1)
}

func (m *mockStore) CompleteRun(ctx context.Context, runID string, result *model.RunResult) error {
	args := m.Called(ctx, runID, result)
	return args.Error(0)
}

func (m *mockStore) GetRun(ctx context.Context, runID string) (*model.Run, error) {
	args := m.Called(ctx, runID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Run), args.Error(1)
}

func (m *mockStore) ListRuns(ctx context.Context, limit int) ([]model.Run, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Run), args.Error(1)
}

func (m *mockStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
