// Package parser implements the streaming, schema-directed protocol
// engine: a four-state finite state machine that consumes one
// line-delimited JSON record at a time and returns the regular expression
// describing the next legal line, grounded entirely in the current game
// state (rosters, inning, runner map, and the play-kind field matrix).
package parser

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"go.birdseye.dev/diamond/schema"
	"go.birdseye.dev/diamond/state"
	"go.birdseye.dev/diamond/tracelog"
	"go.birdseye.dev/diamond/transcript"
)

// Sentinel errors surfaced to callers. ErrMalformedLine covers decode
// errors (bad JSON, wrong field types, unknown enum value) and aborts the
// current call without mutating game state. ErrProtocolViolation covers
// protocol errors: the line decoded fine but cannot complete a valid play.
// ErrIncompleteGame is a finalization error from Finish.
var (
	ErrMalformedLine     = errors.New("malformed line")
	ErrProtocolViolation = errors.New("protocol violation")
	ErrIncompleteGame    = errors.New("incomplete game")
)

// Parser is a single-threaded, synchronous protocol engine. It owns all
// mutable state exclusively, exposes no shared references, and performs
// no internal blocking; ParseLine is its only suspension point. A host
// that needs concurrency runs one Parser per game.
type Parser struct {
	state   lineState
	game    state.GameState
	builder transcript.PlayBuilder
	trace   *tracelog.Tracer
}

// Option configures a Parser at construction time.
type Option func(*Parser)

// WithLogger sets the structured logger used for debug tracing. Tracing
// never alters parsing behavior; it only emits human-readable events.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) {
		p.trace = tracelog.New(logger)
	}
}

// NewParser creates a Parser ready to accept a context line.
func NewParser(opts ...Option) *Parser {
	p := &Parser{state: expectContext, trace: tracelog.New(nil)}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// ParseLine consumes one line of input, advances the protocol state, and
// returns the regex the next line must match. On a decode failure the
// parser's state (including any play builder slots) is left exactly as it
// was before the call, so a caller may retry with a corrected line.
func (p *Parser) ParseLine(line string) (string, error) {
	switch p.state {
	case expectContext:
		return p.parseContext(line)
	case expectPlayIntroduction:
		return p.parsePlayIntroduction(line)
	case expectPlayInformation:
		return p.parsePlayInformation(line)
	case expectPlayMovements:
		return p.parsePlayMovements(line)
	default:
		return "", fmt.Errorf("%w: parser in unknown state", ErrProtocolViolation)
	}
}

func (p *Parser) parseContext(line string) (string, error) {
	var wc wireContext

	if err := json.Unmarshal([]byte(line), &wc); err != nil {
		p.trace.LineRejected(p.state.String(), line, err)
		return "", fmt.Errorf("%w: %w", ErrMalformedLine, err)
	}

	ctx, err := wc.toDomain()
	if err != nil {
		p.trace.LineRejected(p.state.String(), line, err)
		return "", fmt.Errorf("%w: %w", ErrMalformedLine, err)
	}

	p.game.SetContext(ctx)
	p.state = expectPlayIntroduction
	p.trace.LineAccepted(expectContext.String(), p.state.String(), line)

	return schema.ToRegex(playIntroductionSchema()), nil
}

func (p *Parser) parsePlayIntroduction(line string) (string, error) {
	var wi wirePlayIntroduction

	if err := json.Unmarshal([]byte(line), &wi); err != nil {
		p.trace.LineRejected(p.state.String(), line, err)
		return "", fmt.Errorf("%w: %w", ErrMalformedLine, err)
	}

	kind := transcript.PlayKind(wi.Type)
	if !kind.Valid() {
		err := fmt.Errorf("%w: unrecognized play type %q", ErrMalformedLine, wi.Type)
		p.trace.LineRejected(p.state.String(), line, err)
		return "", err
	}

	inning := transcript.Inning{Number: wi.Inning.Number, Top: wi.Inning.Top}

	p.builder.Reset()
	p.builder.SetKind(kind, inning)

	fields, _ := transcript.RequiredFields(kind)

	if !fields.HasInformation && !fields.HasMovements {
		return p.commitPlay()
	}

	if !fields.HasInformation {
		p.state = expectPlayMovements
		p.trace.LineAccepted(expectPlayIntroduction.String(), p.state.String(), line)

		return schema.ToRegex(p.currentMovementsSchema()), nil
	}

	p.state = expectPlayInformation
	p.trace.LineAccepted(expectPlayIntroduction.String(), p.state.String(), line)

	battingNames, fieldingNames := p.rosterNames(inning)

	return schema.ToRegex(playInformationSchema(fields, battingNames, fieldingNames)), nil
}

func (p *Parser) parsePlayInformation(line string) (string, error) {
	var wp wirePlayInformation

	if err := json.Unmarshal([]byte(line), &wp); err != nil {
		p.trace.LineRejected(p.state.String(), line, err)
		return "", fmt.Errorf("%w: %w", ErrMalformedLine, err)
	}

	if wp.Base != nil {
		base, ok := transcript.ParseBase(*wp.Base)
		if !ok {
			err := fmt.Errorf("%w: unrecognized base %q", ErrMalformedLine, *wp.Base)
			p.trace.LineRejected(p.state.String(), line, err)
			return "", err
		}
		p.builder.SetBase(base)
	}

	if wp.Batter != nil {
		p.builder.SetBatter(*wp.Batter)
	}

	if wp.Pitcher != nil {
		p.builder.SetPitcher(*wp.Pitcher)
	}

	if wp.Catcher != nil {
		p.builder.SetCatcher(*wp.Catcher)
	}

	if wp.Fielders != nil {
		p.builder.SetFielders(wp.Fielders)
	}

	if wp.Runner != nil {
		p.builder.SetRunner(*wp.Runner)
	}

	if wp.ScoringRunner != nil {
		p.builder.SetScoringRunner(*wp.ScoringRunner)
	}

	p.state = expectPlayMovements
	p.trace.LineAccepted(expectPlayInformation.String(), p.state.String(), line)

	return schema.ToRegex(p.currentMovementsSchema()), nil
}

func (p *Parser) parsePlayMovements(line string) (string, error) {
	var wm wirePlayMovements

	if err := json.Unmarshal([]byte(line), &wm); err != nil {
		p.trace.LineRejected(p.state.String(), line, err)
		return "", fmt.Errorf("%w: %w", ErrMalformedLine, err)
	}

	movements := make([]transcript.Movement, len(wm.Movements))

	for i, m := range wm.Movements {
		start, ok := transcript.ParseBase(m.StartBase)
		if !ok {
			err := fmt.Errorf("%w: unrecognized start_base %q", ErrMalformedLine, m.StartBase)
			p.trace.LineRejected(p.state.String(), line, err)
			return "", err
		}

		end, ok := transcript.ParseBase(m.EndBase)
		if !ok {
			err := fmt.Errorf("%w: unrecognized end_base %q", ErrMalformedLine, m.EndBase)
			p.trace.LineRejected(p.state.String(), line, err)
			return "", err
		}

		movements[i] = transcript.Movement{Runner: m.Runner, StartBase: start, EndBase: end, IsOut: m.IsOut}
	}

	p.builder.SetMovements(movements)

	return p.commitPlay()
}

// commitPlay builds the play from the accumulated builder state, applies
// its side effects to game state, resets the builder, and returns to
// ExpectPlayIntroduction.
func (p *Parser) commitPlay() (string, error) {
	play, err := p.builder.Build()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrProtocolViolation, err)
	}

	p.game.AddPlay(play)
	p.builder.Reset()
	p.state = expectPlayIntroduction
	p.trace.PlayCommitted(string(play.Kind))

	return schema.ToRegex(playIntroductionSchema()), nil
}

// currentMovementsSchema enumerates the movement literals legal given the
// current runner map, batter, runner, and scoring_runner slots set so far
// on the play builder, and the batting team's pinch runners.
func (p *Parser) currentMovementsSchema() schema.Shape {
	var batter, runnerField, scoringRunner *string

	if b, ok := p.builder.PeekBatter(); ok {
		batter = &b
	}

	if r, ok := p.builder.PeekRunner(); ok {
		runnerField = &r
	}

	if sr, ok := p.builder.PeekScoringRunner(); ok {
		scoringRunner = &sr
	}

	ctx, _ := p.game.Context()
	inning := p.builder.Inning()
	battingTeam := ctx.BattingTeam(inning)

	literals := enumerateMovementLiterals(p.game.Runners(), batter, runnerField, scoringRunner, battingTeam)

	return movementsLineSchema(literals)
}

func (p *Parser) rosterNames(inning transcript.Inning) (batting, fielding []string) {
	ctx, ok := p.game.Context()
	if !ok {
		return nil, nil
	}

	return ctx.BattingTeam(inning).PlayerNames(), ctx.FieldingTeam(inning).PlayerNames()
}

// Finish materializes the finalized Game record. It fails with
// ErrIncompleteGame if no context or no plays were accepted.
func (p *Parser) Finish() (transcript.Game, error) {
	game, err := p.game.Finish()
	if err != nil {
		return transcript.Game{}, fmt.Errorf("%w: %w", ErrIncompleteGame, err)
	}

	return game, nil
}
