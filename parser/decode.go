package parser

import (
	"fmt"

	"go.birdseye.dev/diamond/transcript"
)

// toDomain converts the decoded context line to its domain form,
// validating that every player's position is one of the 18 recognized
// codes.
func (wc wireContext) toDomain() (transcript.Context, error) {
	homeTeam, err := wc.HomeTeam.toDomain()
	if err != nil {
		return transcript.Context{}, fmt.Errorf("home_team: %w", err)
	}

	awayTeam, err := wc.AwayTeam.toDomain()
	if err != nil {
		return transcript.Context{}, fmt.Errorf("away_team: %w", err)
	}

	return transcript.Context{
		GamePk:    wc.GamePk,
		Date:      wc.Date,
		VenueName: wc.VenueName,
		Weather: transcript.Weather{
			Condition:   wc.Weather.Condition,
			Temperature: wc.Weather.Temperature,
			WindSpeed:   wc.Weather.WindSpeed,
		},
		HomeTeam: homeTeam,
		AwayTeam: awayTeam,
	}, nil
}

func (wt wireTeam) toDomain() (transcript.Team, error) {
	players := make([]transcript.Player, len(wt.Players))

	for i, wp := range wt.Players {
		position := transcript.Position(wp.Position)
		if !position.Valid() {
			return transcript.Team{}, fmt.Errorf("player %q: unrecognized position %q", wp.Name, wp.Position)
		}

		players[i] = transcript.Player{Position: position, Name: wp.Name}
	}

	return transcript.Team{ID: wt.ID, Players: players}, nil
}
