package mocks

import (
	"context"
	"sort"

	"github.com/taskdeck/taskdeck-api/internal/domain"
	"github.com/taskdeck/taskdeck-api/internal/store"
)

// MockTaskStore implements store.TaskStore for testing
type MockTaskStore struct {
	// Function fields for customizable behavior
	CreateFn     func(ctx context.Context, task *domain.Task) error
	GetByIDFn    func(ctx context.Context, userID, id int64) (*domain.Task, error)
	ListByUserFn func(ctx context.Context, userID int64, order store.TaskSortOrder) ([]*domain.Task, error)
	UpdateFn     func(ctx context.Context, task *domain.Task) error
	DeleteFn     func(ctx context.Context, userID, id int64) error

	// Data for default implementation
	Tasks       map[int64]*domain.Task
	NextID      int64
	CreateError error
	ListError   error
}

// NewMockTaskStore creates a new mock store with initialized defaults
func NewMockTaskStore() *MockTaskStore {
	return &MockTaskStore{
		Tasks:  make(map[int64]*domain.Task),
		NextID: 1,
	}
}

// Create implements the store.TaskStore interface
func (m *MockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, task)
	}

	if m.CreateError != nil {
		return m.CreateError
	}

	task.ID = m.NextID
	m.NextID++
	copied := *task
	m.Tasks[task.ID] = &copied
	return nil
}

// GetByID implements the store.TaskStore interface
func (m *MockTaskStore) GetByID(ctx context.Context, userID, id int64) (*domain.Task, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, userID, id)
	}

	task, exists := m.Tasks[id]
	if !exists || task.UserID != userID {
		return nil, store.ErrTaskNotFound
	}
	return task, nil
}

// ListByUser implements the store.TaskStore interface. The default
// implementation reproduces the SQL ordering rules, including the
// newest-first fallback for the default order.
func (m *MockTaskStore) ListByUser(ctx context.Context, userID int64, order store.TaskSortOrder) ([]*domain.Task, error) {
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, userID, order)
	}

	if m.ListError != nil {
		return nil, m.ListError
	}

	tasks := make([]*domain.Task, 0)
	for _, task := range m.Tasks {
		if task.UserID == userID {
			tasks = append(tasks, task)
		}
	}

	sort.Slice(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]
		switch order {
		case store.SortTitleAsc:
			if a.Title != b.Title {
				return a.Title < b.Title
			}
		case store.SortTitleDesc:
			if a.Title != b.Title {
				return a.Title > b.Title
			}
		case store.SortDateAsc:
			if a.Date != b.Date {
				return a.Date.Before(b.Date)
			}
		case store.SortDateDesc:
			if a.Date != b.Date {
				return b.Date.Before(a.Date)
			}
		}
		return a.ID > b.ID
	})

	return tasks, nil
}

// Update implements the store.TaskStore interface
func (m *MockTaskStore) Update(ctx context.Context, task *domain.Task) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, task)
	}

	existing, exists := m.Tasks[task.ID]
	if !exists || existing.UserID != task.UserID {
		return store.ErrTaskNotFound
	}
	copied := *task
	copied.CreatedAt = existing.CreatedAt
	m.Tasks[task.ID] = &copied
	return nil
}

// Delete implements the store.TaskStore interface
func (m *MockTaskStore) Delete(ctx context.Context, userID, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, userID, id)
	}

	existing, exists := m.Tasks[id]
	if !exists || existing.UserID != userID {
		return store.ErrTaskNotFound
	}
	delete(m.Tasks, id)
	return nil
}

// Ensure MockTaskStore implements store.TaskStore
var _ store.TaskStore = (*MockTaskStore)(nil)
