package parser

import (
	"strings"

	"go.birdseye.dev/diamond/schema"
	"go.birdseye.dev/diamond/transcript"
)

// unicodeWordChar is the character class a name field falls back to before
// a roster is known to constrain it.
const unicodeWordChar = `[a-zA-ZÀ-ÖØ-öø-ÿ.'\- ]`

func contextWeatherField() schema.Field {
	return schema.NewField("weather", schema.Object(
		schema.NewField("condition", schema.String(`[a-zA-Z ]+`)),
		schema.NewField("temperature", schema.IntegerWithRegex(`\d{1,3}`)),
		schema.NewField("wind_speed", schema.IntegerWithRegex(`\d{1,3}`)),
	))
}

func positionRegex() string {
	names := make([]string, len(transcript.Positions))
	for i, p := range transcript.Positions {
		names[i] = string(p)
	}

	return "(" + strings.Join(names, "|") + ")"
}

func contextTeamPlayerShape() schema.Shape {
	return schema.Object(
		schema.NewField("position", schema.String(positionRegex())),
		schema.NewField("name", schema.String(unicodeWordChar+"+")),
	)
}

func contextTeamShape() schema.Shape {
	return schema.Object(
		schema.NewField("id", schema.IntegerMaxDigits(3)),
		schema.NewField("players", schema.Array(contextTeamPlayerShape())),
	)
}

// contextSchema is the schema for the one-time context line.
func contextSchema() schema.Shape {
	return schema.Object(
		schema.NewField("game_pk", schema.IntegerWithRegex(`\d{6}`)),
		schema.NewField("date", schema.String(`\d{4}-\d{2}-\d{2}`)),
		schema.NewField("venue_name", schema.String(unicodeWordChar+"+")),
		contextWeatherField(),
		schema.NewField("home_team", contextTeamShape()),
		schema.NewField("away_team", contextTeamShape()),
	)
}

// playIntroductionSchema is the schema for a play introduction line.
func playIntroductionSchema() schema.Shape {
	kinds := make([]string, 0, len(transcript.AllPlayKinds()))
	for _, k := range transcript.AllPlayKinds() {
		kinds = append(kinds, string(k))
	}

	return schema.Object(
		schema.NewField("inning", schema.Object(
			schema.NewField("number", schema.IntegerWithRegex(`[1-9]\d*`)),
			schema.NewField("top", schema.Boolean()),
		)),
		schema.NewField("type", schema.String(strings.Join(kinds, "|"))),
	)
}

// baseRegex matches the four valid base wire values.
const baseRegex = `home|1|2|3`

func movementShape() schema.Shape {
	return schema.Object(
		schema.NewField("runner", schema.String(unicodeWordChar+"+")),
		schema.NewField("start_base", schema.String(baseRegex)),
		schema.NewField("end_base", schema.String(baseRegex)),
		schema.NewField("is_out", schema.Boolean()),
	)
}

// playInformationSchema builds the schema for the play information line
// for the given field requirements, restricting name fields to the
// correct team's roster per the team-routing rule (§4.3): batter, runner,
// and scoring_runner are drawn from the batting team; pitcher, catcher,
// and fielders from the fielding team.
func playInformationSchema(fields transcript.FieldSet, battingNames, fieldingNames []string) schema.Shape {
	var entries []schema.Field

	if fields.Base {
		entries = append(entries, schema.NewField("base", schema.String(baseRegex)))
	}

	if fields.Batter {
		entries = append(entries, schema.NewField("batter", schema.RosterField(battingNames)))
	}

	if fields.Pitcher {
		entries = append(entries, schema.NewField("pitcher", schema.RosterField(fieldingNames)))
	}

	if fields.Catcher {
		entries = append(entries, schema.NewField("catcher", schema.RosterField(fieldingNames)))
	}

	if fields.Fielders {
		entries = append(entries, schema.NewField("fielders", schema.Array(schema.RosterField(fieldingNames))))
	}

	if fields.Runner {
		entries = append(entries, schema.NewField("runner", schema.RosterField(battingNames)))
	}

	if fields.ScoringRunner {
		entries = append(entries, schema.NewField("scoring_runner", schema.RosterField(battingNames)))
	}

	return schema.Object(entries...)
}

// movementsLineSchema builds the schema for the movements line: an array
// of the union of movement literals enumerated from occupied bases, the
// batter, the runner/scoring_runner fields, and pinch runners (§4.3
// "movements enumeration").
func movementsLineSchema(literals []transcript.Movement) schema.Shape {
	alts := make([]schema.Shape, len(literals))
	for i, m := range literals {
		alts[i] = movementLiteralShape(m)
	}

	var union schema.Shape
	if len(alts) == 0 {
		union = movementShape()
	} else {
		union = schema.Union(alts...)
	}

	return schema.ArrayAllowEmpty(union)
}

func movementLiteralShape(m transcript.Movement) schema.Shape {
	isOut := schema.Boolean(m.IsOut)

	return schema.Object(
		schema.NewField("runner", schema.String(strings.ReplaceAll(m.Runner, ".", `\.`))),
		schema.NewField("start_base", schema.String(string(m.StartBase))),
		schema.NewField("end_base", schema.String(string(m.EndBase))),
		schema.NewField("is_out", isOut),
	)
}
