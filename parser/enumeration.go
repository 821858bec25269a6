package parser

import (
	"go.birdseye.dev/diamond/state"
	"go.birdseye.dev/diamond/transcript"
)

// enumerateMovementLiterals builds the union of concrete movement literals
// the movements line regex must accept, per §4.3 "movements enumeration":
//
//  1. For each occupied base holding a runner, every legal forward target
//     with both is_out values, plus the tagged-out-in-place literal.
//  2. For the batter (if set), the same enumeration starting from Home.
//  3. Every pinch runner on the batting team's roster replicates every
//     literal from steps 1-2, substituting itself for the original runner.
//  4. The runner and scoring_runner fields (when set) get the same
//     enumeration as the batter, starting from Home.
func enumerateMovementLiterals(runners state.RunnerMap, batter, runnerField, scoringRunner *string, battingTeam transcript.Team) []transcript.Movement {
	var literals []transcript.Movement

	for _, occ := range runners.Occupied() {
		literals = append(literals, forwardLiterals(occ.Runner, occ.Base)...)
	}

	var fromHome []transcript.Movement

	if batter != nil {
		fromHome = append(fromHome, forwardLiterals(*batter, transcript.BaseHome)...)
	}

	if runnerField != nil {
		fromHome = append(fromHome, forwardLiterals(*runnerField, transcript.BaseHome)...)
	}

	if scoringRunner != nil {
		fromHome = append(fromHome, forwardLiterals(*scoringRunner, transcript.BaseHome)...)
	}

	literals = append(literals, fromHome...)

	pinchRunners := battingTeam.PinchRunnerNames()
	if len(pinchRunners) > 0 {
		base := append([]transcript.Movement{}, literals...)

		for _, pr := range pinchRunners {
			for _, lit := range base {
				substituted := lit
				substituted.Runner = pr
				literals = append(literals, substituted)
			}
		}
	}

	if runnerField != nil {
		literals = append(literals, forwardLiterals(*runnerField, transcript.BaseHome)...)
	}

	if scoringRunner != nil {
		literals = append(literals, forwardLiterals(*scoringRunner, transcript.BaseHome)...)
	}

	return literals
}

// forwardLiterals emits the enumeration described in step 1/2/4 for one
// runner starting at start: for each legal forward base, both is_out
// values, plus the tagged-out-in-place literal at the origin.
func forwardLiterals(runner string, start transcript.Base) []transcript.Movement {
	var out []transcript.Movement

	for _, target := range transcript.ForwardBases(start) {
		out = append(out,
			transcript.Movement{Runner: runner, StartBase: start, EndBase: target, IsOut: false},
			transcript.Movement{Runner: runner, StartBase: start, EndBase: target, IsOut: true},
		)
	}

	out = append(out, transcript.Movement{Runner: runner, StartBase: start, EndBase: start, IsOut: true})

	return out
}
