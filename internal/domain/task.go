package domain

import (
	"fmt"
	"strings"
	"time"
)

// Common task validation errors. All wrap ErrValidation.
var (
	ErrEmptyTitle = fmt.Errorf("%w: title cannot be empty", ErrValidation)
	ErrEmptyDate  = fmt.Errorf("%w: date cannot be empty", ErrValidation)
	ErrEmptyOwner = fmt.Errorf("%w: task must reference an owning user", ErrValidation)
)

// Task represents a single to-do item owned by a user.
// Every task references an existing user; the store enforces this with a
// foreign key.
type Task struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        Date      `json:"date"`
	IsCompleted bool      `json:"is_completed"`
	IsImportant bool      `json:"is_important"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewTask creates a new Task owned by the given user.
// Returns an error if validation fails.
func NewTask(userID int64, title, description string, date Date, isCompleted, isImportant bool) (*Task, error) {
	task := &Task{
		UserID:      userID,
		Title:       title,
		Description: description,
		Date:        date,
		IsCompleted: isCompleted,
		IsImportant: isImportant,
		CreatedAt:   time.Now().UTC(),
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
func (t *Task) Validate() error {
	if t.UserID <= 0 {
		return ErrEmptyOwner
	}

	if strings.TrimSpace(t.Title) == "" {
		return ErrEmptyTitle
	}

	if t.Date.IsZero() {
		return ErrEmptyDate
	}

	return nil
}
