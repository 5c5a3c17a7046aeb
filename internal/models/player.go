package models

// Position identifies which of the three roster slots a player fills
type Position string

const (
	// PositionForward is the primary scoring position
	PositionForward Position = "Forward"

	// PositionDefender is the defensive skater position
	PositionDefender Position = "Defender"

	// PositionGoalie is the net-minding position
	PositionGoalie Position = "Goalie"
)

// Positions lists the three positions in tie-break priority order
var Positions = []Position{PositionForward, PositionDefender, PositionGoalie}

// PlayerState represents where a player currently sits in the league
type PlayerState string

const (
	// PlayerStateActive indicates a player is in a team's starting lineup
	PlayerStateActive PlayerState = "active"

	// PlayerStateBench indicates a player holds a team's single bench slot
	PlayerStateBench PlayerState = "bench"

	// PlayerStateIR indicates a player is on injured reserve
	PlayerStateIR PlayerState = "ir"

	// PlayerStateSuspended indicates a player is serving a suspension
	PlayerStateSuspended PlayerState = "suspended"

	// PlayerStateFreeAgent indicates a player is unsigned
	PlayerStateFreeAgent PlayerState = "free_agent"

	// PlayerStateRetired indicates a player has permanently left the league
	PlayerStateRetired PlayerState = "retired"
)

// Potential tiers drive development and retirement probabilities
type Potential string

const (
	PotentialBust     Potential = "bust"
	PotentialStandard Potential = "standard"
	PotentialStar     Potential = "star"
	PotentialGoat     Potential = "goat"
)

// PlayerStats is a cumulative stat block, kept separately for season and career
type PlayerStats struct {
	GamesPlayed  int
	Goals        int
	Assists      int
	Points       int
	Hits         int
	Saves        int
	GoalsAgainst int
	Legacy       int
}

// PlayerModifiers holds data-driven exceptions to the standard lifecycle
// rules. Seed data sets these; engines only read them.
type PlayerModifiers struct {
	// AgePenaltyImmune disables the practice-probability age falloff
	AgePenaltyImmune bool

	// ScriptedRetirementAge forces retirement at exactly this age and
	// suppresses the probability roll. Zero means no script.
	ScriptedRetirementAge int

	// LinkedPlayerID slaves this player's ratings to another player's,
	// shifted by LinkedRatingOffset, after each development pass
	LinkedPlayerID string

	// LinkedRatingOffset is added to the linked player's ratings
	LinkedRatingOffset int

	// RetiresWithLinked retires this player only when the linked player
	// retires
	RetiresWithLinked bool
}

// Player represents a league player across their whole career
type Player struct {
	// ID is the unique identifier for the player
	ID string

	// Name is the player's display name
	Name string

	// Nickname is an optional handle rendered inside the name
	Nickname string

	// Position is the slot the player currently fills
	Position Position

	// Overall mirrors the rating for the current position
	Overall int

	// ForwardRating is the player's skill as a forward
	ForwardRating int

	// DefenderRating is the player's skill as a defender
	DefenderRating int

	// GoalieRating is the player's skill as a goalie
	GoalieRating int

	// State is where the player sits in the league state machine
	State PlayerState

	// Potential is fixed at creation and never changes
	Potential Potential

	// TeamID is the owning team, empty for free agents and retirees
	TeamID string

	// SeasonStats accumulates over the current season and resets yearly
	SeasonStats PlayerStats

	// CareerStats accumulates for life
	CareerStats PlayerStats

	// InjuryDaysRemaining counts down while the player is on IR
	InjuryDaysRemaining int

	// SuspensionGamesRemaining counts down while suspended
	SuspensionGamesRemaining int

	// YearsOfExperience counts seasons with at least one game played
	YearsOfExperience int

	// Age in years, incremented every offseason
	Age int

	// ConsecutiveSeasonsWithoutGames triggers forced retirement at 4
	ConsecutiveSeasonsWithoutGames int

	// SeasonGenerated is the year a prospect entered the league, used to
	// guard against duplicate generation
	SeasonGenerated int

	// RetirementYear is set once the player retires
	RetirementYear int

	// Modifiers holds scripted exceptions, zero value for normal players
	Modifiers PlayerModifiers
}

// DisplayName renders the name with the nickname inside it when present.
func (p *Player) DisplayName() string {
	if p.Nickname == "" {
		return p.Name
	}
	for i, r := range p.Name {
		if r == ' ' {
			return p.Name[:i] + " \"" + p.Nickname + "\"" + p.Name[i:]
		}
	}
	return p.Name + " \"" + p.Nickname + "\""
}
