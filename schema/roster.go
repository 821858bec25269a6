package schema

import "strings"

// unicodeNameClass is the fallback character class for a name field when
// the roster that would constrain it is not yet known.
const unicodeNameClass = `[a-zA-ZÀ-ÖØ-öø-ÿ.'\- ]+`

// RosterRegex lowers a set of player names to the alternation regex
// (name1|name2|...), without surrounding quotes (RosterField adds them),
// escaping every "." in each name to "\.". An empty
// names slice falls back to the universal name character class, used when
// the roster constraining this field is not yet known.
func RosterRegex(names []string) string {
	if len(names) == 0 {
		return unicodeNameClass
	}

	escaped := make([]string, len(names))
	for i, n := range names {
		escaped[i] = strings.ReplaceAll(n, ".", `\.`)
	}

	return "(" + strings.Join(escaped, "|") + ")"
}

// RosterField returns the String shape for a player-name field restricted
// to names.
func RosterField(names []string) Shape {
	return String(RosterRegex(names))
}
