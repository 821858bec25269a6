package transcript

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGameAdvisoryHasNoLines(t *testing.T) {
	t.Parallel()
	assert.False(t, PlayGameAdvisory.HasInformationLine())
	assert.False(t, PlayGameAdvisory.HasMovementsLine())
}

func TestEjectionHasMovementsButNoInformation(t *testing.T) {
	t.Parallel()
	assert.False(t, PlayEjection.HasInformationLine())
	assert.True(t, PlayEjection.HasMovementsLine())
}

func TestAllPlayKindsHaveARow(t *testing.T) {
	t.Parallel()

	for _, k := range AllPlayKinds() {
		_, ok := RequiredFields(k)
		assert.True(t, ok, "play kind %q missing from field matrix", k)
	}
}

func TestStolenBaseRequiresBaseAndRunner(t *testing.T) {
	t.Parallel()

	fields, ok := RequiredFields(PlayStolenBase)
	assert.True(t, ok)
	assert.True(t, fields.Base)
	assert.True(t, fields.Runner)
	assert.False(t, fields.Batter)
	assert.False(t, fields.Pitcher)
}

func TestSacFlyRequiresScoringRunner(t *testing.T) {
	t.Parallel()

	fields, ok := RequiredFields(PlaySacFly)
	assert.True(t, ok)
	assert.True(t, fields.Batter)
	assert.True(t, fields.Pitcher)
	assert.True(t, fields.Fielders)
	assert.True(t, fields.ScoringRunner)
	assert.False(t, fields.Runner)
}
