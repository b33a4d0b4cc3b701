package models

// Per-event point bonuses
const (
	LevelUpBonus     = 50
	BadgeUnlockBonus = 20
)

// GameState is the persisted reward-system snapshot for one student.
// Invariant after every mutation: Exp < Level*100 (excess experience is
// rolled over into level-ups, each against its own level's threshold).
type GameState struct {
	Level          int      `json:"level"`
	Exp            int      `json:"exp"`
	Points         int      `json:"points"`
	Badges         []string `json:"badges"`
	Character      string   `json:"character"`
	CharacterLevel int      `json:"characterLevel"`
	Items          []string `json:"items"`
	Achievements   []string `json:"achievements"`
}

// NewGameState returns the starting snapshot for a new student
func NewGameState() GameState {
	return GameState{
		Level:          1,
		Character:      "wonbi",
		CharacterLevel: 1,
		Badges:         []string{},
		Items:          []string{},
		Achievements:   []string{},
	}
}

// ExpThreshold returns the experience needed to clear the current level
func (g *GameState) ExpThreshold() int {
	return g.Level * 100
}

// HasBadge reports whether a badge has been unlocked
func (g *GameState) HasBadge(id string) bool {
	for _, b := range g.Badges {
		if b == id {
			return true
		}
	}
	return false
}

// RollOver converts accumulated experience into level-ups. The loop subtracts
// each level's own threshold, so a single large grant can clear several levels
// and earns the flat bonus once per level gained.
func (g *GameState) RollOver() {
	for g.Exp >= g.ExpThreshold() {
		g.Exp -= g.ExpThreshold()
		g.Level++
		g.Points += LevelUpBonus
	}
}

// GamePatch carries partial updates to the game snapshot.
// Nil fields are left unchanged.
type GamePatch struct {
	Level          *int      `json:"level,omitempty" validate:"omitempty,min=1"`
	Exp            *int      `json:"exp,omitempty" validate:"omitempty,min=0"`
	Points         *int      `json:"points,omitempty"`
	Character      *string   `json:"character,omitempty"`
	CharacterLevel *int      `json:"characterLevel,omitempty" validate:"omitempty,min=1"`
	Items          *[]string `json:"items,omitempty"`
	Achievements   *[]string `json:"achievements,omitempty"`
}

// Apply merges the patch into a snapshot
func (p GamePatch) Apply(g *GameState) {
	if p.Level != nil {
		g.Level = *p.Level
	}
	if p.Exp != nil {
		g.Exp = *p.Exp
	}
	if p.Points != nil {
		g.Points = *p.Points
	}
	if p.Character != nil {
		g.Character = *p.Character
	}
	if p.CharacterLevel != nil {
		g.CharacterLevel = *p.CharacterLevel
	}
	if p.Items != nil {
		g.Items = *p.Items
	}
	if p.Achievements != nil {
		g.Achievements = *p.Achievements
	}
}
