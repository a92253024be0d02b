package source

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/sells-group/cfo-monitor/pkg/edgar"
	"github.com/sells-group/cfo-monitor/pkg/gnews"
)

// --- EDGAR mock ---

type mockEdgarClient struct {
	mock.Mock
}

func (m *mockEdgarClient) CurrentFilings(ctx context.Context, formType string, count int) ([]edgar.Filing, error) {
	args := m.Called(ctx, formType, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]edgar.Filing), args.Error(1)
}

// --- News mock ---

type mockNewsClient struct {
	mock.Mock
}

func (m *mockNewsClient) Search(ctx context.Context, query string) ([]gnews.Article, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]gnews.Article), args.Error(1)
}

// recordingThrottle records the resources waited on.
type recordingThrottle struct {
	waits []string
}

func (r *recordingThrottle) Wait(_ context.Context, resource string) error {
	r.waits = append(r.waits, resource)
	return nil
}
