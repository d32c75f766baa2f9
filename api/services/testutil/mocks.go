package testutil

import (
	"context"
	"testing"
	"time"

	"raidbook/pkg/models/champion"
	"raidbook/pkg/models/guide"

	"github.com/stretchr/testify/mock"
)

// Type name of the context created by context.WithTimeout, used to match
// the redis calls of the services.
const DefaultTimerCtx = "*context.timerCtx"

// Generic database error message used across the service tests.
const DatabaseError = "database connection failed"

// Assert the expectations of all mocks.
func VerifyAllMocks(t *testing.T, mocks ...any) {
	t.Helper()

	for _, m := range mocks {
		if mockObj, ok := m.(interface{ AssertExpectations(*testing.T) bool }); ok {
			mockObj.AssertExpectations(t)
		}
	}
}

// ============================================================================
// Mock Implementations shared by the service tests.
// ============================================================================

// Champion repository mock implementation.
type MockChampionRepository struct {
	mock.Mock
}

func (m *MockChampionRepository) GetAll(ctx context.Context) ([]*champion.Champion, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*champion.Champion), args.Error(1)
}

func (m *MockChampionRepository) GetBySlug(ctx context.Context, slug string) (*champion.Champion, error) {
	args := m.Called(ctx, slug)
	return args.Get(0).(*champion.Champion), args.Error(1)
}

// Guide repository mock implementation.
type MockGuideRepository struct {
	mock.Mock
}

func (m *MockGuideRepository) GetForChampion(ctx context.Context, slug string) ([]guide.ChampionGuide, error) {
	args := m.Called(ctx, slug)
	return args.Get(0).([]guide.ChampionGuide), args.Error(1)
}

// MemCache mock implementation.
type MockMemCache[T any] struct {
	mock.Mock
}

func (m *MockMemCache[T]) Close() {
	m.Called()
}

func (m *MockMemCache[T]) Set(key string, value T, ttl time.Duration) {
	m.Called(key, value, ttl)
}

func (m *MockMemCache[T]) Get(key string) T {
	args := m.Called(key)
	if args.Get(0) == nil {
		var zero T
		return zero
	}
	return args.Get(0).(T)
}

// Redis client mock implementation.
type MockRedisClient struct {
	mock.Mock
}

func (m *MockRedisClient) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(string), args.Error(1)
}

func (m *MockRedisClient) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}
