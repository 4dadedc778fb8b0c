package telemetry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_EmptyEndpointIsNoop(t *testing.T) {
	p, err := New(context.Background(), "", "svc")
	require.NoError(t, err)
	assert.False(t, p.Enabled())
	require.NotNil(t, p.Tracer())

	_, span := p.Tracer().Start(context.Background(), "x")
	assert.False(t, span.SpanContext().IsValid())
	span.End()

	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestNew_WithEndpoint(t *testing.T) {
	for _, endpoint := range []string{"localhost:4318", "http://localhost:4318"} {
		t.Run(endpoint, func(t *testing.T) {
			p, err := New(context.Background(), endpoint, "")
			require.NoError(t, err)
			assert.True(t, p.Enabled())

			_, span := p.Tracer().Start(context.Background(), "x")
			assert.True(t, span.SpanContext().IsValid())
			span.End()

			// Nothing listens on the endpoint; shutdown must still return.
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = p.Shutdown(ctx)
		})
	}
}

func TestShutdown_NilProvider(t *testing.T) {
	var p *Provider
	assert.NoError(t, p.Shutdown(context.Background()))
	assert.False(t, p.Enabled())
}
