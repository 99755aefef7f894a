package common

import (
	"strings"
	"time"

	"github.com/rs/zerolog"
)

type span struct {
	label string
	start time.Time
}

// Tracer is a nested timer for instrumenting the phases of a prover run.
// Spans nest by Start/End order and print with matching indentation. The
// tracer is an explicit value to be passed around, there is no process-wide
// timer state; pass a zerolog.Nop() logger to silence it.
//
// A Tracer is not safe for concurrent use, give one to each goroutine.
type Tracer struct {
	log   zerolog.Logger
	spans []span
}

// NewTracer returns a tracer emitting on the given logger
func NewTracer(log zerolog.Logger) *Tracer {
	return &Tracer{log: log}
}

// Start opens a span nested under the currently open one
func (t *Tracer) Start(label string) {
	t.log.Info().Msgf("%v%v (begin)", strings.Repeat("  ", len(t.spans)), label)
	t.spans = append(t.spans, span{label: label, start: time.Now()})
}

// End closes the innermost open span and prints its elapsed time. Ends
// without a matching Start are ignored.
func (t *Tracer) End() {
	n := len(t.spans) - 1
	if n < 0 {
		return
	}
	s := t.spans[n]
	t.spans = t.spans[:n]
	t.log.Info().
		Dur("elapsed", time.Since(s.start)).
		Msgf("%v%v (end)", strings.Repeat("  ", n), s.label)
}
