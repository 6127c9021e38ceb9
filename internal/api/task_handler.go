package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/taskdeck/taskdeck-api/internal/api/middleware"
	"github.com/taskdeck/taskdeck-api/internal/api/shared"
	"github.com/taskdeck/taskdeck-api/internal/domain"
	"github.com/taskdeck/taskdeck-api/internal/store"
)

// TaskHandler handles task CRUD API requests. Every operation runs behind
// the authentication middleware and is scoped to the resolved identity.
type TaskHandler struct {
	taskStore store.TaskStore
}

// NewTaskHandler creates a new TaskHandler with the given dependencies.
func NewTaskHandler(taskStore store.TaskStore) *TaskHandler {
	return &TaskHandler{
		taskStore: taskStore,
	}
}

// identity pulls the resolved user from the context, writing a 401 if the
// middleware did not run. Returns nil when a response was already written.
func identity(w http.ResponseWriter, r *http.Request) *domain.User {
	user, ok := middleware.GetIdentity(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Could not validate credentials")
		return nil
	}
	return user
}

// pathTaskID extracts the numeric task id from the URL path.
func pathTaskID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid task id")
	}
	return id, nil
}

// List handles GET /tasks?sort_by=<selector>.
// An unrecognized selector silently falls back to the default ordering.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	user := identity(w, r)
	if user == nil {
		return
	}

	order := store.ParseTaskSortOrder(r.URL.Query().Get("sort_by"))

	tasks, err := h.taskStore.ListByUser(r.Context(), user.ID, order)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Failed to list tasks", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, newTaskListResponse(tasks))
}

// Get handles GET /tasks/{id}.
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	user := identity(w, r)
	if user == nil {
		return
	}

	id, err := pathTaskID(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid task id")
		return
	}

	task, err := h.taskStore.GetByID(r.Context(), user.ID, id)
	if err != nil {
		h.respondTaskError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, newTaskResponse(task))
}

// Create handles POST /tasks.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := identity(w, r)
	if user == nil {
		return
	}

	req, ok := h.decodeTaskRequest(w, r)
	if !ok {
		return
	}

	date, err := domain.ParseDate(req.Date)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
		return
	}

	task, err := domain.NewTask(user.ID, req.Title, req.Description, date, req.IsCompleted, req.IsImportant)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid task data: "+err.Error())
		return
	}

	if err := h.taskStore.Create(r.Context(), task); err != nil {
		h.respondTaskError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, newTaskResponse(task))
}

// Update handles PUT /tasks/{id}. All mutable fields are overwritten; there
// are no partial updates.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := identity(w, r)
	if user == nil {
		return
	}

	id, err := pathTaskID(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid task id")
		return
	}

	req, ok := h.decodeTaskRequest(w, r)
	if !ok {
		return
	}

	date, err := domain.ParseDate(req.Date)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, GetSafeErrorMessage(err))
		return
	}

	task := &domain.Task{
		ID:          id,
		UserID:      user.ID,
		Title:       req.Title,
		Description: req.Description,
		Date:        date,
		IsCompleted: req.IsCompleted,
		IsImportant: req.IsImportant,
	}

	if err := h.taskStore.Update(r.Context(), task); err != nil {
		h.respondTaskError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, newTaskResponse(task))
}

// Delete handles DELETE /tasks/{id}.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := identity(w, r)
	if user == nil {
		return
	}

	id, err := pathTaskID(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid task id")
		return
	}

	if err := h.taskStore.Delete(r.Context(), user.ID, id); err != nil {
		h.respondTaskError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{
		Message: "Task deleted successfully",
	})
}

func (h *TaskHandler) decodeTaskRequest(w http.ResponseWriter, r *http.Request) (*TaskRequest, bool) {
	var req TaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return nil, false
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Validation error: "+err.Error())
		return nil, false
	}

	return &req, true
}

func (h *TaskHandler) respondTaskError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}
