package commands

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jdcannonchess/trackfire/internal/tracker/domain"
)

// mockTaskRepo is a mock implementation of domain.TaskRepository.
type mockTaskRepo struct {
	mock.Mock
}

func (m *mockTaskRepo) Save(ctx context.Context, task *domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *mockTaskRepo) FindByID(ctx context.Context, id int64) (*domain.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}

func (m *mockTaskRepo) FindAll(ctx context.Context) ([]*domain.Task, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Task), args.Error(1)
}

func (m *mockTaskRepo) FindActive(ctx context.Context) ([]*domain.Task, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Task), args.Error(1)
}

func (m *mockTaskRepo) FindActiveRecurring(ctx context.Context) ([]*domain.Task, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Task), args.Error(1)
}

func (m *mockTaskRepo) FindRolloverCandidates(ctx context.Context, today time.Time) ([]*domain.Task, error) {
	args := m.Called(ctx, today)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Task), args.Error(1)
}

func (m *mockTaskRepo) FindSystemTask(ctx context.Context, name string, input domain.InputType) (*domain.Task, error) {
	args := m.Called(ctx, name, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}

func (m *mockTaskRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// mockLedger is a mock implementation of domain.CompletionRepository.
type mockLedger struct {
	mock.Mock
}

func (m *mockLedger) Get(ctx context.Context, taskID int64, date time.Time) (*domain.Completion, error) {
	args := m.Called(ctx, taskID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Completion), args.Error(1)
}

func (m *mockLedger) RangeByDate(ctx context.Context, start, end time.Time) ([]*domain.Completion, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Completion), args.Error(1)
}

func (m *mockLedger) RangeByTask(ctx context.Context, taskID int64) ([]*domain.Completion, error) {
	args := m.Called(ctx, taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Completion), args.Error(1)
}

func (m *mockLedger) UpsertPlaceholder(ctx context.Context, taskID int64, date time.Time) error {
	args := m.Called(ctx, taskID, date)
	return args.Error(0)
}

func (m *mockLedger) Save(ctx context.Context, completion *domain.Completion) error {
	args := m.Called(ctx, completion)
	return args.Error(0)
}

func (m *mockLedger) ClosestNumeric(ctx context.Context, taskID int64, target time.Time) (*domain.Completion, error) {
	args := m.Called(ctx, taskID, target)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Completion), args.Error(1)
}

// mockPhotoStore is a mock implementation of PhotoStore.
type mockPhotoStore struct {
	mock.Mock
}

func (m *mockPhotoStore) SavePhoto(data []byte) (string, error) {
	args := m.Called(data)
	return args.String(0), args.Error(1)
}
