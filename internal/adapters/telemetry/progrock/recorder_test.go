package progrock_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/coord/internal/adapters/telemetry/progrock"
)

func TestNew(t *testing.T) {
	recorder := progrock.New()
	assert.NotNil(t, recorder)
}

func TestRecorder_SpanLifecycle(t *testing.T) {
	recorder := progrock.New()

	ctx := context.Background()
	_, span := recorder.Start(ctx, "resolve")

	if _, err := span.Write([]byte("resolving 3 artifacts\n")); err != nil {
		t.Errorf("failed to write to span: %v", err)
	}

	span.SetAttribute("request_key", "deadbeef")
	span.End()

	rec, ok := recorder.(*progrock.Recorder)
	if !ok {
		t.Fatal("expected New() to return a *progrock.Recorder")
	}
	if err := rec.Close(); err != nil {
		t.Errorf("failed to close recorder: %v", err)
	}
}
