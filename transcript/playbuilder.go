package transcript

import (
	"errors"
	"fmt"
)

// ErrIncompletePlay indicates Build was called before every field required
// by the current play kind had been set. The protocol is expected to
// guarantee this never happens; this error exists so a caller that somehow
// reaches Build early gets a diagnosable failure instead of a nil field.
var ErrIncompletePlay = errors.New("incomplete play")

// ErrNoPlayKind indicates Build was called before SetKind.
var ErrNoPlayKind = errors.New("play kind not set")

// PlayBuilder accumulates the fields of one play across the introduction,
// information, and movements lines, then materializes a Play. SetKind does
// not clear the slots of a previous play; Reset does.
type PlayBuilder struct {
	kind          PlayKind
	haveKind      bool
	inning        Inning
	base          *Base
	batter        *string
	pitcher       *string
	catcher       *string
	fielders      []string
	runner        *string
	scoringRunner *string
	movements     []Movement
}

// Reset clears every slot, ready to build the next play.
func (b *PlayBuilder) Reset() {
	*b = PlayBuilder{}
}

// SetKind records the play kind and the half-inning it occurred in. This is
// always the first setter called for a new play.
func (b *PlayBuilder) SetKind(kind PlayKind, inning Inning) {
	b.kind = kind
	b.haveKind = true
	b.inning = inning
}

func (b *PlayBuilder) SetBase(base Base)                 { b.base = &base }
func (b *PlayBuilder) SetBatter(name string)             { b.batter = &name }
func (b *PlayBuilder) SetPitcher(name string)            { b.pitcher = &name }
func (b *PlayBuilder) SetCatcher(name string)            { b.catcher = &name }
func (b *PlayBuilder) SetFielders(names []string)        { b.fielders = names }
func (b *PlayBuilder) SetRunner(name string)             { b.runner = &name }
func (b *PlayBuilder) SetScoringRunner(name string)      { b.scoringRunner = &name }
func (b *PlayBuilder) SetMovements(movements []Movement) { b.movements = movements }

// Kind reports the play kind set so far, if any.
func (b *PlayBuilder) Kind() (PlayKind, bool) {
	return b.kind, b.haveKind
}

// Inning reports the half-inning set by SetKind.
func (b *PlayBuilder) Inning() Inning {
	return b.inning
}

// PeekBatter, PeekRunner, and PeekScoringRunner report the corresponding
// slot's current value, for callers (the movements-line schema builder)
// that need to read in-progress state without committing the play.
func (b *PlayBuilder) PeekBatter() (string, bool) {
	if b.batter == nil {
		return "", false
	}
	return *b.batter, true
}

func (b *PlayBuilder) PeekRunner() (string, bool) {
	if b.runner == nil {
		return "", false
	}
	return *b.runner, true
}

func (b *PlayBuilder) PeekScoringRunner() (string, bool) {
	if b.scoringRunner == nil {
		return "", false
	}
	return *b.scoringRunner, true
}

// Build selects the variant matching the builder's play kind and
// materializes it, consuming exactly the fields that kind's row in the
// field matrix requires.
func (b *PlayBuilder) Build() (Play, error) {
	if !b.haveKind {
		return Play{}, ErrNoPlayKind
	}

	fields, ok := RequiredFields(b.kind)
	if !ok {
		return Play{}, fmt.Errorf("%w: unrecognized play kind %q", ErrIncompletePlay, b.kind)
	}

	play := Play{Kind: b.kind, Inning: b.inning}

	if fields.HasInformation {
		if fields.Base {
			if b.base == nil {
				return Play{}, fmt.Errorf("%w: %s requires base", ErrIncompletePlay, b.kind)
			}
			play.Base = b.base
		}

		if fields.Batter {
			if b.batter == nil {
				return Play{}, fmt.Errorf("%w: %s requires batter", ErrIncompletePlay, b.kind)
			}
			play.Batter = b.batter
		}

		if fields.Pitcher {
			if b.pitcher == nil {
				return Play{}, fmt.Errorf("%w: %s requires pitcher", ErrIncompletePlay, b.kind)
			}
			play.Pitcher = b.pitcher
		}

		if fields.Catcher {
			if b.catcher == nil {
				return Play{}, fmt.Errorf("%w: %s requires catcher", ErrIncompletePlay, b.kind)
			}
			play.Catcher = b.catcher
		}

		if fields.Fielders {
			if b.fielders == nil {
				return Play{}, fmt.Errorf("%w: %s requires fielders", ErrIncompletePlay, b.kind)
			}
			play.Fielders = b.fielders
		}

		if fields.Runner {
			if b.runner == nil {
				return Play{}, fmt.Errorf("%w: %s requires runner", ErrIncompletePlay, b.kind)
			}
			play.Runner = b.runner
		}

		if fields.ScoringRunner {
			if b.scoringRunner == nil {
				return Play{}, fmt.Errorf("%w: %s requires scoring_runner", ErrIncompletePlay, b.kind)
			}
			play.ScoringRunner = b.scoringRunner
		}
	}

	if fields.HasMovements {
		play.Movements = b.movements
	}

	return play, nil
}
