package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/coord/internal/adapters/telemetry"
)

func TestNoOpTracer(t *testing.T) {
	tracer := telemetry.NewNoOpTracer()

	ctx := context.Background()
	gotCtx, span := tracer.Start(ctx, "resolve")
	assert.Equal(t, ctx, gotCtx)
	require.NotNil(t, span)

	n, err := span.Write([]byte("some output"))
	require.NoError(t, err)
	assert.Equal(t, len("some output"), n)

	span.SetAttribute("key", "value")
	span.RecordError(errors.New("resolution failed"))
	span.End()
}
