// Package snapshot renders a finalized transcript.Game as YAML, for
// debugging and export.
package snapshot

import (
	"github.com/goccy/go-yaml"

	"go.birdseye.dev/diamond/transcript"
)

// Dump renders game as a YAML document.
func Dump(game transcript.Game) ([]byte, error) {
	return yaml.Marshal(game)
}

// Summary is a condensed view of a game, convenient for eyeballing a long
// transcript without every field of every play.
type Summary struct {
	GamePk    int `yaml:"game_pk"`
	PlayCount int `yaml:"play_count"`
	HomeRuns  int `yaml:"home_runs"`
	AwayRuns  int `yaml:"away_runs"`
}

// DumpSummary renders a condensed Summary of game as YAML.
func DumpSummary(game transcript.Game, homeRuns, awayRuns int) ([]byte, error) {
	s := Summary{
		GamePk:    game.Context.GamePk,
		PlayCount: len(game.Plays),
		HomeRuns:  homeRuns,
		AwayRuns:  awayRuns,
	}

	return yaml.Marshal(s)
}
