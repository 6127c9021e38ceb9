package store

import (
	"context"

	"github.com/taskdeck/taskdeck-api/internal/domain"
)

// TaskSortOrder selects the ordering applied when listing tasks.
type TaskSortOrder string

// Supported sort orders. An unrecognized selector falls back to
// SortDefault (newest-first by id) rather than failing.
const (
	SortDefault   TaskSortOrder = ""
	SortTitleAsc  TaskSortOrder = "title_asc"
	SortTitleDesc TaskSortOrder = "title_desc"
	SortDateAsc   TaskSortOrder = "date_asc"
	SortDateDesc  TaskSortOrder = "date_desc"
)

// ParseTaskSortOrder maps a sort selector string to a TaskSortOrder.
// Unknown selectors map to SortDefault.
func ParseTaskSortOrder(s string) TaskSortOrder {
	switch TaskSortOrder(s) {
	case SortTitleAsc, SortTitleDesc, SortDateAsc, SortDateDesc:
		return TaskSortOrder(s)
	default:
		return SortDefault
	}
}

// TaskStore defines the interface for task data persistence.
// Every operation is scoped to an owning user: a task that exists under a
// different user is reported as not found.
type TaskStore interface {
	// Create saves a new task and fills in the generated ID and creation
	// timestamp.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves the task with the given id owned by userID.
	// Returns ErrTaskNotFound if no such task exists for that user.
	GetByID(ctx context.Context, userID, id int64) (*domain.Task, error)

	// ListByUser returns all tasks owned by userID in the given order.
	ListByUser(ctx context.Context, userID int64, order TaskSortOrder) ([]*domain.Task, error)

	// Update fully overwrites the mutable fields of the task with the
	// given id owned by userID. There are no partial updates.
	// Returns ErrTaskNotFound if no such task exists for that user.
	Update(ctx context.Context, task *domain.Task) error

	// Delete removes the task with the given id owned by userID.
	// Returns ErrTaskNotFound if no such task exists for that user.
	Delete(ctx context.Context, userID, id int64) error
}
