package tracing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"civic-issues-api/config"
)

func TestInit_DisabledWithoutEndpoint(t *testing.T) {
	tp, shutdown, err := Init(context.Background(), config.Tracing{}, "test")
	require.NoError(t, err)

	_, span := tp.Tracer("test").Start(context.Background(), "noop")
	assert.False(t, span.SpanContext().IsValid())
	span.End()

	assert.NoError(t, shutdown(context.Background()))
}
