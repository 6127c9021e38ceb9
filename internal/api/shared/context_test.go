package shared

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTraceID(t *testing.T) {
	t.Parallel()

	ctx := SetTraceID(context.Background())
	traceID := GetTraceID(ctx)

	assert.NotEmpty(t, traceID)
	assert.Len(t, traceID, TraceIDLength*2, "trace ID is hex-encoded")

	other := GetTraceID(SetTraceID(context.Background()))
	assert.NotEqual(t, traceID, other, "each request gets its own trace ID")
}

func TestGetTraceIDWithoutValue(t *testing.T) {
	t.Parallel()

	assert.Empty(t, GetTraceID(context.Background()))
}
