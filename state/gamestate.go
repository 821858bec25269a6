package state

import (
	"errors"

	"go.birdseye.dev/diamond/transcript"
)

// ErrNoContext indicates finish was called before a context line had been
// accepted.
var ErrNoContext = errors.New("no context accepted")

// ErrNoPlays indicates finish was called before any play had been
// accepted.
var ErrNoPlays = errors.New("no plays accepted")

// GameState is the mutable store a Parser drives: the accepted context,
// the plays accepted so far, the current runner map, and both teams' run
// totals.
type GameState struct {
	context  *transcript.Context
	plays    []transcript.Play
	runners  RunnerMap
	homeRuns int
	awayRuns int
	prevTop  *bool
}

// SetContext records the one-time context line. It is only valid once.
func (g *GameState) SetContext(ctx transcript.Context) {
	g.context = &ctx
}

// Context returns the accepted context, if any.
func (g *GameState) Context() (transcript.Context, bool) {
	if g.context == nil {
		return transcript.Context{}, false
	}

	return *g.context, true
}

// Runners returns a copy of the current runner map.
func (g *GameState) Runners() RunnerMap {
	return g.runners
}

// HomeRuns and AwayRuns report each team's accumulated run total.
func (g *GameState) HomeRuns() int { return g.homeRuns }
func (g *GameState) AwayRuns() int { return g.awayRuns }

// Plays returns every play accepted so far, in arrival order.
func (g *GameState) Plays() []transcript.Play {
	return g.plays
}

// AddPlay applies play's movement side effects to the runner map and team
// run counters, then appends it to the accepted plays, per spec §4.5:
//
//  1. If the previous play's half differs from play's, reset the runner
//     map to empty.
//  2. Apply each movement in order to a working copy of the map.
//  3. Commit the working copy, append the play.
func (g *GameState) AddPlay(play transcript.Play) {
	working := g.runners

	if g.prevTop != nil && *g.prevTop != play.Inning.Top {
		working.Reset()
	}

	battingTeam := g.battingTeam(play.Inning)
	fieldingTeam := g.fieldingTeam(play.Inning)

	for _, mv := range play.Movements {
		g.applyMovement(&working, mv, play.Inning, battingTeam, fieldingTeam)
	}

	g.runners = working
	g.plays = append(g.plays, play)

	top := play.Inning.Top
	g.prevTop = &top
}

func (g *GameState) applyMovement(working *RunnerMap, mv transcript.Movement, inning transcript.Inning, battingTeam, fieldingTeam transcript.Team) {
	switch {
	case mv.IsOut && mv.StartBase != transcript.BaseHome:
		working.clear(mv.StartBase)

	case mv.EndBase == transcript.BaseHome && !mv.IsOut:
		if mv.StartBase != transcript.BaseHome {
			working.clear(mv.StartBase)
		}

		g.creditRun(mv.Runner, battingTeam, fieldingTeam, inning)

	default:
		occupant := ""
		if mv.StartBase != transcript.BaseHome {
			occupant = working.At(mv.StartBase)
		}

		working.set(mv.EndBase, mv.Runner)

		if mv.StartBase != transcript.BaseHome && occupant == mv.Runner {
			working.clear(mv.StartBase)
		}
	}
}

// creditRun increments the run counter of the batting team by default; the
// fielding team is credited only when the runner is rostered exclusively
// on the fielding side (covering batter names not yet recorded on the
// batting roster).
func (g *GameState) creditRun(runner string, battingTeam, fieldingTeam transcript.Team, inning transcript.Inning) {
	onFielding := fieldingTeam.HasPlayer(runner)
	onBatting := battingTeam.HasPlayer(runner)

	creditHome := !inning.Top // home bats in the bottom half (top == false)

	if onFielding && !onBatting {
		creditHome = !creditHome
	}

	if creditHome {
		g.homeRuns++
	} else {
		g.awayRuns++
	}
}

func (g *GameState) battingTeam(inning transcript.Inning) transcript.Team {
	if g.context == nil {
		return transcript.Team{}
	}

	return g.context.BattingTeam(inning)
}

func (g *GameState) fieldingTeam(inning transcript.Inning) transcript.Team {
	if g.context == nil {
		return transcript.Team{}
	}

	return g.context.FieldingTeam(inning)
}

// Finish materializes the finalized Game record. It fails if no context or
// no plays have been accepted.
func (g *GameState) Finish() (transcript.Game, error) {
	if g.context == nil {
		return transcript.Game{}, ErrNoContext
	}

	if len(g.plays) == 0 {
		return transcript.Game{}, ErrNoPlays
	}

	return transcript.Game{Context: *g.context, Plays: g.plays}, nil
}
