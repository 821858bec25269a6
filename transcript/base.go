// Package transcript holds the domain model for a baseball play-by-play
// transcript: bases, innings, movements, rosters, and the play-kind ×
// required-field matrix that drives both the Play Builder and the schema
// generated for the next line of input.
package transcript

// Base is one of the four positions a runner (or the batter) can occupy.
// Home serves double duty: it is both the batter's origin and the
// destination that scores a run.
type Base string

const (
	BaseHome Base = "home"
	Base1    Base = "1"
	Base2    Base = "2"
	Base3    Base = "3"
)

// baseOrder gives each base's position in the forward sequence
// home -> 1 -> 2 -> 3 -> home(score). Two bases share the wire value
// "home": index 0 (origin) and index 4 (scoring destination) are not the
// same occupancy slot, so ForwardBases always includes Home as the final,
// scoring target, even when the origin is Home itself.
var baseOrder = map[Base]int{
	BaseHome: 0,
	Base1:    1,
	Base2:    2,
	Base3:    3,
}

// ParseBase parses a wire-form base string. "4" is rejected: it is a stale
// alternative from an earlier revision and is not representable by Base.
func ParseBase(s string) (Base, bool) {
	switch Base(s) {
	case BaseHome, Base1, Base2, Base3:
		return Base(s), true
	default:
		return "", false
	}
}

// ForwardBases returns every base strictly later than b in the order
// home -> 1 -> 2 -> 3 -> home(score), inclusive of scoring at home.
func ForwardBases(b Base) []Base {
	start, ok := baseOrder[b]
	if !ok {
		return nil
	}

	all := []Base{Base1, Base2, Base3, BaseHome}

	var forward []Base

	for i, target := range all {
		idx := i + 1 // all[] begins at order index 1 (Base1)
		if idx > start {
			forward = append(forward, target)
		}
	}

	return forward
}
