package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.birdseye.dev/diamond/transcript"
)

func testContext() transcript.Context {
	return transcript.Context{
		HomeTeam: transcript.Team{ID: 1, Players: []transcript.Player{{Position: transcript.PositionPitcher, Name: "John Doe"}}},
		AwayTeam: transcript.Team{ID: 2, Players: []transcript.Player{{Position: transcript.PositionCatcher, Name: "Jane Doe"}}},
	}
}

func TestAddPlayWalkUpdatesRunnerMap(t *testing.T) {
	t.Parallel()

	var g GameState
	g.SetContext(testContext())

	walk := transcript.Play{
		Kind:   transcript.PlayWalk,
		Inning: transcript.Inning{Number: 1, Top: true},
		Movements: []transcript.Movement{
			{Runner: "Jane Doe", StartBase: transcript.BaseHome, EndBase: transcript.Base1, IsOut: false},
		},
	}

	g.AddPlay(walk)

	assert.Equal(t, "Jane Doe", g.Runners().At(transcript.Base1))
	assert.Equal(t, "", g.Runners().At(transcript.Base2))
	assert.Equal(t, "", g.Runners().At(transcript.Base3))
}

func TestAddPlayHomeRunScoresTwoAndClearsBases(t *testing.T) {
	t.Parallel()

	var g GameState
	g.SetContext(testContext())

	setup := transcript.Play{
		Kind:   transcript.PlayWalk,
		Inning: transcript.Inning{Number: 1, Top: true},
		Movements: []transcript.Movement{
			{Runner: "Jane Doe", StartBase: transcript.BaseHome, EndBase: transcript.Base1, IsOut: false},
		},
	}
	g.AddPlay(setup)

	homeRun := transcript.Play{
		Kind:   transcript.PlayHomeRun,
		Inning: transcript.Inning{Number: 1, Top: true},
		Movements: []transcript.Movement{
			{Runner: "Jane Doe", StartBase: transcript.Base1, EndBase: transcript.BaseHome, IsOut: false},
			{Runner: "John Doe", StartBase: transcript.BaseHome, EndBase: transcript.BaseHome, IsOut: false},
		},
	}
	g.AddPlay(homeRun)

	assert.Equal(t, "", g.Runners().At(transcript.Base1))
	assert.Equal(t, 2, g.AwayRuns()+g.HomeRuns())
}

func TestRunnerMapResetsOnlyWhenTopFlipsBetweenConsecutivePlays(t *testing.T) {
	t.Parallel()

	var g GameState
	g.SetContext(testContext())

	first := transcript.Play{Kind: transcript.PlayWalk, Inning: transcript.Inning{Number: 1, Top: true},
		Movements: []transcript.Movement{{Runner: "Jane Doe", StartBase: transcript.BaseHome, EndBase: transcript.Base1, IsOut: false}}}
	g.AddPlay(first)
	require.Equal(t, "Jane Doe", g.Runners().At(transcript.Base1))

	same := transcript.Play{Kind: transcript.PlayGameAdvisory, Inning: transcript.Inning{Number: 1, Top: true}}
	g.AddPlay(same)
	assert.Equal(t, "Jane Doe", g.Runners().At(transcript.Base1), "same half-inning must not reset bases")

	flip := transcript.Play{Kind: transcript.PlayGameAdvisory, Inning: transcript.Inning{Number: 1, Top: false}}
	g.AddPlay(flip)
	assert.Equal(t, "", g.Runners().At(transcript.Base1), "top flip between plays must reset bases")
}

func TestFreshGameAcceptsFirstPlay(t *testing.T) {
	t.Parallel()

	var g GameState
	g.SetContext(testContext())

	first := transcript.Play{Kind: transcript.PlayGameAdvisory, Inning: transcript.Inning{Number: 1, Top: true}}
	g.AddPlay(first)

	assert.Len(t, g.Plays(), 1)
}

func TestFinishFailsWithoutContextOrPlays(t *testing.T) {
	t.Parallel()

	var g GameState
	_, err := g.Finish()
	assert.ErrorIs(t, err, ErrNoContext)

	g.SetContext(testContext())
	_, err = g.Finish()
	assert.ErrorIs(t, err, ErrNoPlays)
}
