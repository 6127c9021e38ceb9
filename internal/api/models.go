package api

import (
	"github.com/taskdeck/taskdeck-api/internal/domain"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterResponse defines the successful response for the registration
// endpoint. Only the identity's public fields are returned; never the hash.
type RegisterResponse struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse defines the successful response for the login endpoint.
type LoginResponse struct {
	User        UserResponse `json:"user"`
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
}

// UserResponse is the public view of a resolved identity.
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// MessageResponse carries a human-readable confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

// TaskRequest defines the payload for task create and update. Update fully
// overwrites all mutable fields; there are no partial updates. The date
// must be in YYYY-MM-DD form.
type TaskRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description"`
	Date        string `json:"date"        validate:"required"`
	IsCompleted bool   `json:"is_completed"`
	IsImportant bool   `json:"is_important"`
}

// TaskResponse is the wire representation of a task.
type TaskResponse struct {
	ID          int64       `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Date        domain.Date `json:"date"`
	IsCompleted bool        `json:"is_completed"`
	IsImportant bool        `json:"is_important"`
	UserID      int64       `json:"user_id"`
}

// newTaskResponse converts a domain task to its wire representation.
func newTaskResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Date:        task.Date,
		IsCompleted: task.IsCompleted,
		IsImportant: task.IsImportant,
		UserID:      task.UserID,
	}
}

// newTaskListResponse converts a slice of domain tasks, preserving order.
func newTaskListResponse(tasks []*domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, newTaskResponse(task))
	}
	return out
}
