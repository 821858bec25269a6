// Package state holds the mutable Game State: accepted context, accepted
// plays, the current runner-on-base map, and team run counters, together
// with the movement side-effect algorithm that advances them play by play.
package state

import "go.birdseye.dev/diamond/transcript"

// RunnerMap tracks which runner, if any, occupies each of bases 1, 2, and
// 3. Home is never an occupancy slot: it is only ever a movement's origin
// or scoring destination.
type RunnerMap struct {
	first, second, third string
}

// Reset clears every base to empty.
func (m *RunnerMap) Reset() {
	*m = RunnerMap{}
}

// At returns the occupant of base b, or "" if empty. Calling with
// transcript.BaseHome always returns "".
func (m RunnerMap) At(b transcript.Base) string {
	switch b {
	case transcript.Base1:
		return m.first
	case transcript.Base2:
		return m.second
	case transcript.Base3:
		return m.third
	default:
		return ""
	}
}

func (m *RunnerMap) set(b transcript.Base, runner string) {
	switch b {
	case transcript.Base1:
		m.first = runner
	case transcript.Base2:
		m.second = runner
	case transcript.Base3:
		m.third = runner
	}
}

func (m *RunnerMap) clear(b transcript.Base) {
	m.set(b, "")
}

// Occupant pairs a base with the runner currently on it.
type Occupant struct {
	Base   transcript.Base
	Runner string
}

// Occupied reports every base currently holding a runner, in the order
// 1, 2, 3, along with the occupant's name.
func (m RunnerMap) Occupied() []Occupant {
	var out []Occupant

	for _, b := range []transcript.Base{transcript.Base1, transcript.Base2, transcript.Base3} {
		if r := m.At(b); r != "" {
			out = append(out, Occupant{Base: b, Runner: r})
		}
	}

	return out
}
