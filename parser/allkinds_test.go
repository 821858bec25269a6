package parser

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.birdseye.dev/diamond/transcript"
)

func mustJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}

	return string(b)
}

// TestEveryPlayKindCanBeAccepted synthesizes one minimal play per row of
// the field matrix and feeds it through a fresh parser, asserting every
// kind is accepted without error. This exercises the full matrix the way
// a hand-authored fixture covering every play type would, without
// maintaining one by hand.
func TestEveryPlayKindCanBeAccepted(t *testing.T) {
	t.Parallel()

	for _, kind := range transcript.AllPlayKinds() {
		kind := kind

		t.Run(string(kind), func(t *testing.T) {
			t.Parallel()

			p := NewParser()
			_, err := p.ParseLine(contextLine)
			require.NoError(t, err)

			inningLine := fmt.Sprintf(`{ "inning": { "number": 1, "top": true }, "type": %q }`, kind)
			_, err = p.ParseLine(inningLine)
			require.NoError(t, err)

			fields, _ := transcript.RequiredFields(kind)

			if fields.HasInformation {
				assert.Equal(t, expectPlayInformation, p.state)

				info := minimalInformationLine(fields)
				_, err = p.ParseLine(info)
				require.NoError(t, err, "information line for %s", kind)
			}

			if fields.HasMovements {
				assert.Equal(t, expectPlayMovements, p.state)

				_, err = p.ParseLine(`{ "movements": [] }`)
				require.NoError(t, err, "movements line for %s", kind)
			}

			assert.Equal(t, expectPlayIntroduction, p.state)

			game, err := p.Finish()
			require.NoError(t, err)
			require.Len(t, game.Plays, 1)
			assert.Equal(t, kind, game.Plays[0].Kind)
		})
	}
}

func minimalInformationLine(fields transcript.FieldSet) string {
	entries := map[string]any{}

	if fields.Base {
		entries["base"] = "1"
	}

	if fields.Batter {
		entries["batter"] = "Jane Doe"
	}

	if fields.Pitcher {
		entries["pitcher"] = "John Doe"
	}

	if fields.Catcher {
		entries["catcher"] = "John Doe"
	}

	if fields.Fielders {
		entries["fielders"] = []string{"John Doe"}
	}

	if fields.Runner {
		entries["runner"] = "Jane Doe"
	}

	if fields.ScoringRunner {
		entries["scoring_runner"] = "Jane Doe"
	}

	return mustJSON(entries)
}
