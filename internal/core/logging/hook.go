package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// ContextHook copies run_id and source from the event's context into the
// log event.
type ContextHook struct{}

// Run adds contextual fields to the zerolog event.
func (h ContextHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	ctx := e.GetCtx()
	if ctx == nil || ctx == context.Background() {
		return
	}

	if runID := GetRunID(ctx); runID != "" {
		e.Str("run_id", runID)
	}

	if source := GetSource(ctx); source != "" {
		e.Str("source", source)
	}
}
