package transcript

// FieldSet describes which of the seven information fields a play kind's
// information line must carry, and whether it is followed by a movements
// line. Game Advisory carries neither an information line nor a movements
// line; Ejection carries a movements line but no information line.
type FieldSet struct {
	Base           bool
	Batter         bool
	Pitcher        bool
	Catcher        bool
	Fielders       bool
	Runner         bool
	ScoringRunner  bool
	HasInformation bool
	HasMovements   bool
}

// groundBallOut is the shared row for Groundout, Bunt Groundout, Lineout,
// Bunt Lineout, Flyout, Pop Out, Bunt Pop Out, Forceout, Double Play,
// Triple Play, Runner Double Play, Grounded Into Double Play, Strikeout
// Double Play, Runner Triple Play, and Field Error.
var groundBallOut = FieldSet{Batter: true, Pitcher: true, Fielders: true, HasInformation: true, HasMovements: true}

// battedBallNoFielders is the shared row for Strikeout, Single, Double,
// Triple, Home Run, Walk, Intent Walk, and Hit By Pitch.
var battedBallNoFielders = FieldSet{Batter: true, Pitcher: true, HasInformation: true, HasMovements: true}

// sacFlyRow is the shared row for Fielders Choice Out, Sac Fly, and Sac Fly
// Double Play.
var sacFlyRow = FieldSet{Batter: true, Pitcher: true, Fielders: true, ScoringRunner: true, HasInformation: true, HasMovements: true}

// fielderChoiceRow is the shared row for Fielders Choice and Catcher
// Interference.
var fielderChoiceRow = FieldSet{Batter: true, Pitcher: true, Fielders: true, HasInformation: true, HasMovements: true}

// sacBuntRow is the shared row for Sac Bunt and Sac Bunt Double Play.
var sacBuntRow = FieldSet{Batter: true, Pitcher: true, Fielders: true, Runner: true, HasInformation: true, HasMovements: true}

// pickoffRow is the shared row for Pickoff, Pickoff Error, Caught
// Stealing, and Pickoff Caught Stealing.
var pickoffRow = FieldSet{Base: true, Fielders: true, Runner: true, HasInformation: true, HasMovements: true}

var fieldMatrix = map[PlayKind]FieldSet{
	PlayGroundout:              groundBallOut,
	PlayBuntGroundout:          groundBallOut,
	PlayLineout:                groundBallOut,
	PlayBuntLineout:            groundBallOut,
	PlayFlyout:                 groundBallOut,
	PlayPopOut:                 groundBallOut,
	PlayBuntPopOut:             groundBallOut,
	PlayForceout:               groundBallOut,
	PlayDoublePlay:             groundBallOut,
	PlayTriplePlay:             groundBallOut,
	PlayRunnerDoublePlay:       groundBallOut,
	PlayGroundedIntoDoublePlay: groundBallOut,
	PlayStrikeoutDoublePlay:    groundBallOut,
	PlayRunnerTriplePlay:       groundBallOut,
	PlayFieldError:             groundBallOut,

	PlayStrikeout:  battedBallNoFielders,
	PlaySingle:     battedBallNoFielders,
	PlayDouble:     battedBallNoFielders,
	PlayTriple:     battedBallNoFielders,
	PlayHomeRun:    battedBallNoFielders,
	PlayWalk:       battedBallNoFielders,
	PlayIntentWalk: battedBallNoFielders,
	PlayHitByPitch: battedBallNoFielders,

	PlayFieldersChoiceOut: sacFlyRow,
	PlaySacFly:            sacFlyRow,
	PlaySacFlyDoublePlay:  sacFlyRow,

	PlayFieldersChoice:      fielderChoiceRow,
	PlayCatcherInterference: fielderChoiceRow,

	PlaySacBunt:           sacBuntRow,
	PlaySacBuntDoublePlay: sacBuntRow,

	PlayPickoff:               pickoffRow,
	PlayPickoffError:          pickoffRow,
	PlayCaughtStealing:        pickoffRow,
	PlayPickoffCaughtStealing: pickoffRow,

	PlayWildPitch: {Pitcher: true, Runner: true, HasInformation: true, HasMovements: true},

	PlayRunnerOut: {Fielders: true, Runner: true, HasInformation: true, HasMovements: true},
	PlayFieldOut:  {Fielders: true, Runner: true, HasInformation: true, HasMovements: true},

	PlayBatterOut: {Batter: true, Catcher: true, HasInformation: true, HasMovements: true},

	PlayBalk: {Pitcher: true, HasInformation: true, HasMovements: true},

	PlayPassedBall: {Pitcher: true, Catcher: true, HasInformation: true, HasMovements: true},
	PlayError:      {Pitcher: true, Catcher: true, HasInformation: true, HasMovements: true},

	PlayStolenBase: {Base: true, Runner: true, HasInformation: true, HasMovements: true},

	PlayGameAdvisory: {HasInformation: false, HasMovements: false},
	PlayEjection:     {HasInformation: false, HasMovements: true},
}

// playKindOrder fixes the enumeration order used when emitting the
// play-introduction type regex, matching the matrix's row order.
var playKindOrder = []PlayKind{
	PlayGroundout, PlayBuntGroundout, PlayLineout, PlayBuntLineout, PlayFlyout,
	PlayPopOut, PlayBuntPopOut, PlayForceout, PlayDoublePlay, PlayTriplePlay,
	PlayRunnerDoublePlay, PlayGroundedIntoDoublePlay, PlayStrikeoutDoublePlay,
	PlayRunnerTriplePlay, PlayFieldError,
	PlayStrikeout, PlaySingle, PlayDouble, PlayTriple, PlayHomeRun, PlayWalk,
	PlayIntentWalk, PlayHitByPitch,
	PlayFieldersChoiceOut, PlaySacFly, PlaySacFlyDoublePlay,
	PlayFieldersChoice, PlayCatcherInterference,
	PlaySacBunt, PlaySacBuntDoublePlay,
	PlayPickoff, PlayPickoffError, PlayCaughtStealing, PlayPickoffCaughtStealing,
	PlayWildPitch,
	PlayRunnerOut, PlayFieldOut,
	PlayBatterOut,
	PlayBalk,
	PlayPassedBall, PlayError,
	PlayStolenBase,
	PlayGameAdvisory, PlayEjection,
}

// RequiredFields returns the field requirements for k. The second result is
// false if k is not a recognized play kind.
func RequiredFields(k PlayKind) (FieldSet, bool) {
	fs, ok := fieldMatrix[k]
	return fs, ok
}

// HasInformationLine reports whether k's protocol includes a play
// information line. Only Game Advisory and Ejection omit it.
func (k PlayKind) HasInformationLine() bool {
	return fieldMatrix[k].HasInformation
}

// HasMovementsLine reports whether k's protocol includes a movements line.
// Only Game Advisory omits it.
func (k PlayKind) HasMovementsLine() bool {
	return fieldMatrix[k].HasMovements
}
