package progrock

import (
	"fmt"

	"github.com/vito/progrock"
)

// Span implements ports.Span wrapping *progrock.VertexRecorder.
type Span struct {
	vertex *progrock.VertexRecorder
	err    error
}

// Write forwards output to the vertex's stdout stream.
func (s *Span) Write(p []byte) (int, error) {
	return s.vertex.Stdout().Write(p)
}

// RecordError marks the span as failed. The error is reported when the
// span ends.
func (s *Span) RecordError(err error) {
	s.err = err
}

// SetAttribute records a key-value pair on the vertex's output stream.
func (s *Span) SetAttribute(key string, value any) {
	_, _ = fmt.Fprintf(s.vertex.Stdout(), "%s=%v\n", key, value)
}

// End marks the vertex as finished, carrying any recorded error.
func (s *Span) End() {
	s.vertex.Done(s.err)
}
