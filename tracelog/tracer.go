package tracelog

import "log/slog"

// Tracer emits one structured event per accepted input line when the
// parser's debug flag is set. A nil *Tracer, or one built around a nil
// logger, is a safe no-op so the parser need not branch on whether
// tracing is enabled.
type Tracer struct {
	logger *slog.Logger
}

// New wraps logger for use as a parser trace sink. A nil logger yields a
// Tracer whose methods are no-ops.
func New(logger *slog.Logger) *Tracer {
	return &Tracer{logger: logger}
}

// LineAccepted records that a line was accepted in the given protocol
// state and the state the parser transitioned to.
func (t *Tracer) LineAccepted(fromState, toState, line string) {
	if t == nil || t.logger == nil {
		return
	}

	t.logger.Debug("line accepted", slog.String("from_state", fromState), slog.String("to_state", toState), slog.String("line", line))
}

// LineRejected records that a line failed to decode in the given state.
func (t *Tracer) LineRejected(state, line string, err error) {
	if t == nil || t.logger == nil {
		return
	}

	t.logger.Debug("line rejected", slog.String("state", state), slog.String("line", line), slog.Any("error", err))
}

// PlayCommitted records that a play was built and applied to game state.
func (t *Tracer) PlayCommitted(kind string) {
	if t == nil || t.logger == nil {
		return
	}

	t.logger.Debug("play committed", slog.String("play_type", kind))
}
