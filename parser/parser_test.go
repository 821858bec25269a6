package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.birdseye.dev/diamond/stringtest"
	"go.birdseye.dev/diamond/transcript"
)

const contextLine = `{ "game_pk": 123456, "date": "2024-04-24", "venue_name": "Test Stadium", "weather": { "condition": "Sunny", "temperature": 70, "wind_speed": 10 }, "home_team": { "id": 1, "players": [{ "position": "PITCHER", "name": "John Doe" }] }, "away_team": { "id": 2, "players": [{ "position": "CATCHER", "name": "Jane Doe" }] } }`

func TestParseContextTransitionsToPlayIntroduction(t *testing.T) {
	t.Parallel()

	p := NewParser()
	regex, err := p.ParseLine(contextLine)
	require.NoError(t, err)
	assert.Equal(t, expectPlayIntroduction, p.state)
	assert.Contains(t, regex, "inning")
}

func TestParseGroundoutThroughAllThreeLines(t *testing.T) {
	t.Parallel()

	p := NewParser()
	_, err := p.ParseLine(contextLine)
	require.NoError(t, err)

	_, err = p.ParseLine(`{ "inning": { "number": 1, "top": true }, "type": "Groundout" }`)
	require.NoError(t, err)
	assert.Equal(t, expectPlayInformation, p.state)

	_, err = p.ParseLine(`{ "batter": "Jane Doe", "pitcher": "John Doe", "fielders": ["John Doe"] }`)
	require.NoError(t, err)
	assert.Equal(t, expectPlayMovements, p.state)

	_, err = p.ParseLine(`{ "movements": [{ "runner": "Jane Doe", "start_base": "home", "end_base": "1", "is_out": false }] }`)
	require.NoError(t, err)
	assert.Equal(t, expectPlayIntroduction, p.state)
}

func TestGameAdvisorySkipsInformationAndMovements(t *testing.T) {
	t.Parallel()

	p := NewParser()
	_, err := p.ParseLine(contextLine)
	require.NoError(t, err)

	_, err = p.ParseLine(`{ "inning": { "number": 1, "top": true }, "type": "Game Advisory" }`)
	require.NoError(t, err)
	assert.Equal(t, expectPlayIntroduction, p.state)

	game, err := p.Finish()
	require.NoError(t, err)
	assert.Len(t, game.Plays, 1)
}

func TestEjectionHasMovementsButNoInformationLine(t *testing.T) {
	t.Parallel()

	p := NewParser()
	_, err := p.ParseLine(contextLine)
	require.NoError(t, err)

	_, err = p.ParseLine(`{ "inning": { "number": 1, "top": true }, "type": "Ejection" }`)
	require.NoError(t, err)
	assert.Equal(t, expectPlayMovements, p.state)

	_, err = p.ParseLine(`{ "movements": [] }`)
	require.NoError(t, err)
	assert.Equal(t, expectPlayIntroduction, p.state)
}

func TestWalkUpdatesRunnerMap(t *testing.T) {
	t.Parallel()

	p := NewParser()
	_, err := p.ParseLine(contextLine)
	require.NoError(t, err)

	_, err = p.ParseLine(`{ "inning": { "number": 1, "top": true }, "type": "Walk" }`)
	require.NoError(t, err)

	_, err = p.ParseLine(`{ "batter": "Jane Doe", "pitcher": "John Doe" }`)
	require.NoError(t, err)

	_, err = p.ParseLine(`{ "movements": [{ "runner": "Jane Doe", "start_base": "home", "end_base": "1", "is_out": false }] }`)
	require.NoError(t, err)

	assert.Equal(t, "Jane Doe", p.game.Runners().At(transcript.Base1))
}

func TestMalformedJSONRollsBackState(t *testing.T) {
	t.Parallel()

	p := NewParser()
	_, err := p.ParseLine(contextLine)
	require.NoError(t, err)

	_, err = p.ParseLine(`not json`)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedLine)
	assert.Equal(t, expectPlayIntroduction, p.state, "state must not advance on decode failure")
}

func TestUnrecognizedPlayTypeIsMalformed(t *testing.T) {
	t.Parallel()

	p := NewParser()
	_, err := p.ParseLine(contextLine)
	require.NoError(t, err)

	_, err = p.ParseLine(`{ "inning": { "number": 1, "top": true }, "type": "Not A Real Play" }`)
	assert.ErrorIs(t, err, ErrMalformedLine)
	assert.Equal(t, expectPlayIntroduction, p.state)
}

func TestFinishBeforeAnyPlayIsIncompleteGame(t *testing.T) {
	t.Parallel()

	p := NewParser()
	_, err := p.ParseLine(contextLine)
	require.NoError(t, err)

	_, err = p.Finish()
	assert.ErrorIs(t, err, ErrIncompleteGame)
}

func TestFullGameFixtureAcceptsEveryLine(t *testing.T) {
	t.Parallel()

	lines := stringtest.JoinLF(
		contextLine,
		`{ "inning": { "number": 1, "top": true }, "type": "Strikeout" }`,
		`{ "batter": "Jane Doe", "pitcher": "John Doe" }`,
		`{ "movements": [] }`,
		`{ "inning": { "number": 1, "top": true }, "type": "Game Advisory" }`,
	)

	p := NewParser()

	for _, line := range strings.Split(lines, "\n") {
		_, err := p.ParseLine(line)
		require.NoError(t, err)
	}

	game, err := p.Finish()
	require.NoError(t, err)
	assert.Len(t, game.Plays, 2)
}
