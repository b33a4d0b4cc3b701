package models

// LearnerProfile is the per-student settings record. A pure settings bag:
// no invariants beyond the defaults below.
type LearnerProfile struct {
	Nickname      string   `json:"nickname"`
	GradeLevel    string   `json:"gradeLevel"` // e.g. "초1".."중3"
	Avatar        string   `json:"avatar"`
	Interests     []string `json:"interests"`
	LearningStyle string   `json:"learningStyle"` // visual, auditory, reading or kinesthetic
	DailyGoal     int      `json:"dailyGoal"`     // minutes per day
}

// DefaultProfile returns the settings applied before a student customizes anything
func DefaultProfile() LearnerProfile {
	return LearnerProfile{
		GradeLevel:    "초3",
		Avatar:        "wonbi",
		Interests:     []string{},
		LearningStyle: "visual",
		DailyGoal:     20,
	}
}
