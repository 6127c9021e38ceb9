package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/taskdeck/taskdeck-api/internal/domain"
	"github.com/taskdeck/taskdeck-api/internal/store"
)

// TaskStore implements the store.TaskStore interface using a PostgreSQL
// database as the storage backend. All queries are scoped by user_id so a
// task under a different owner behaves exactly like a missing one.
type TaskStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewTaskStore creates a new PostgreSQL implementation of the TaskStore
// interface.
func NewTaskStore(db store.DBTX, logger *slog.Logger) *TaskStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &TaskStore{
		db:     db,
		logger: logger.With(slog.String("component", "task_store")),
	}
}

// Ensure TaskStore implements store.TaskStore interface
var _ store.TaskStore = (*TaskStore)(nil)

// WithTx returns a copy of the store bound to the given transaction, for use
// inside store.RunInTransaction.
func (s *TaskStore) WithTx(tx *sql.Tx) *TaskStore {
	return &TaskStore{
		db:     tx,
		logger: s.logger,
	}
}

// orderClause maps a sort order to a SQL ORDER BY clause. The values are
// fixed strings chosen here, never caller input, so interpolation is safe.
func orderClause(order store.TaskSortOrder) string {
	switch order {
	case store.SortTitleAsc:
		return "title ASC, id DESC"
	case store.SortTitleDesc:
		return "title DESC, id DESC"
	case store.SortDateAsc:
		return "date ASC, id DESC"
	case store.SortDateDesc:
		return "date DESC, id DESC"
	default:
		// Insertion order, newest first.
		return "id DESC"
	}
}

// Create implements store.TaskStore.Create
func (s *TaskStore) Create(ctx context.Context, task *domain.Task) error {
	if err := task.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO tasks (user_id, title, description, date, is_completed, is_important, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	err := s.db.QueryRowContext(ctx, query,
		task.UserID, task.Title, task.Description, task.Date,
		task.IsCompleted, task.IsImportant, task.CreatedAt,
	).Scan(&task.ID)
	if err != nil {
		return MapError(err)
	}

	s.logger.DebugContext(ctx, "task created",
		slog.Int64("task_id", task.ID),
		slog.Int64("user_id", task.UserID))
	return nil
}

// GetByID implements store.TaskStore.GetByID
func (s *TaskStore) GetByID(ctx context.Context, userID, id int64) (*domain.Task, error) {
	query := `
		SELECT id, user_id, title, description, date, is_completed, is_important, created_at
		FROM tasks
		WHERE id = $1 AND user_id = $2`

	var task domain.Task
	err := s.db.QueryRowContext(ctx, query, id, userID).Scan(
		&task.ID, &task.UserID, &task.Title, &task.Description,
		&task.Date, &task.IsCompleted, &task.IsImportant, &task.CreatedAt,
	)
	if err != nil {
		mapped := MapError(err)
		if store.IsNotFoundError(mapped) {
			return nil, store.ErrTaskNotFound
		}
		return nil, mapped
	}

	return &task, nil
}

// ListByUser implements store.TaskStore.ListByUser
func (s *TaskStore) ListByUser(ctx context.Context, userID int64, order store.TaskSortOrder) ([]*domain.Task, error) {
	query := fmt.Sprintf(`
		SELECT id, user_id, title, description, date, is_completed, is_important, created_at
		FROM tasks
		WHERE user_id = $1
		ORDER BY %s`, orderClause(order))

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, MapError(err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			s.logger.WarnContext(ctx, "failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	tasks := make([]*domain.Task, 0)
	for rows.Next() {
		var task domain.Task
		if err := rows.Scan(
			&task.ID, &task.UserID, &task.Title, &task.Description,
			&task.Date, &task.IsCompleted, &task.IsImportant, &task.CreatedAt,
		); err != nil {
			return nil, MapError(err)
		}
		tasks = append(tasks, &task)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return tasks, nil
}

// Update implements store.TaskStore.Update
// It fully overwrites the mutable fields; there are no partial updates.
func (s *TaskStore) Update(ctx context.Context, task *domain.Task) error {
	if err := task.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	query := `
		UPDATE tasks
		SET title = $1, description = $2, date = $3, is_completed = $4, is_important = $5
		WHERE id = $6 AND user_id = $7`

	result, err := s.db.ExecContext(ctx, query,
		task.Title, task.Description, task.Date,
		task.IsCompleted, task.IsImportant, task.ID, task.UserID,
	)
	if err != nil {
		return MapError(err)
	}

	return CheckRowsAffected(result, store.ErrTaskNotFound)
}

// Delete implements store.TaskStore.Delete
func (s *TaskStore) Delete(ctx context.Context, userID, id int64) error {
	query := `DELETE FROM tasks WHERE id = $1 AND user_id = $2`

	result, err := s.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return MapError(err)
	}

	return CheckRowsAffected(result, store.ErrTaskNotFound)
}
