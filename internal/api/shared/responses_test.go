package shared

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	t.Parallel()

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/", nil)

	RespondWithJSON(recorder, req, http.StatusCreated, map[string]string{"message": "created"})

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"message":"created"}`, recorder.Body.String())
}

func TestRespondWithError(t *testing.T) {
	t.Parallel()

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/tasks", nil)
	req = req.WithContext(SetTraceID(req.Context()))

	RespondWithError(recorder, req, http.StatusNotFound, "Task not found")

	assert.Equal(t, http.StatusNotFound, recorder.Code)

	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	assert.Equal(t, "Task not found", resp.Error)
	assert.NotEmpty(t, resp.TraceID, "error responses carry the request trace ID")
}

func TestRespondWithErrorAndLogHidesRawError(t *testing.T) {
	t.Parallel()

	recorder := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/tasks", nil)

	rawErr := errors.New(`pq: connection refused dbname="taskdeck"`)
	RespondWithErrorAndLog(recorder, req, http.StatusInternalServerError, "Failed to create task", rawErr)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)

	var resp ErrorResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
	assert.Equal(t, "Failed to create task", resp.Error)
	// The raw driver error stays in the logs and never reaches the client.
	assert.NotContains(t, recorder.Body.String(), "connection refused")
	assert.NotContains(t, recorder.Body.String(), "taskdeck")
}
