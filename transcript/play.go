package transcript

// Play is a single accepted play. It carries every field any play kind can
// require; which fields are populated is determined by Kind's row in the
// field matrix (§4.3). Every play carries Inning; all kinds but Game
// Advisory carry Movements (possibly empty).
type Play struct {
	Kind          PlayKind   `json:"play_type" yaml:"play_type"`
	Inning        Inning     `json:"inning" yaml:"inning"`
	Base          *Base      `json:"base,omitempty" yaml:"base,omitempty"`
	Batter        *string    `json:"batter,omitempty" yaml:"batter,omitempty"`
	Pitcher       *string    `json:"pitcher,omitempty" yaml:"pitcher,omitempty"`
	Catcher       *string    `json:"catcher,omitempty" yaml:"catcher,omitempty"`
	Fielders      []string   `json:"fielders,omitempty" yaml:"fielders,omitempty"`
	Runner        *string    `json:"runner,omitempty" yaml:"runner,omitempty"`
	ScoringRunner *string    `json:"scoring_runner,omitempty" yaml:"scoring_runner,omitempty"`
	Movements     []Movement `json:"movements" yaml:"movements"`
}
