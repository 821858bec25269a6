package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRosterRegexEscapesDots(t *testing.T) {
	t.Parallel()

	got := RosterRegex([]string{"J.D. Martinez", "Jane Doe"})
	assert.Equal(t, `(J\.D\. Martinez|Jane Doe)`, got)
}

func TestRosterRegexFallsBackWhenRosterUnknown(t *testing.T) {
	t.Parallel()

	got := RosterRegex(nil)
	assert.Equal(t, unicodeNameClass, got)
}
