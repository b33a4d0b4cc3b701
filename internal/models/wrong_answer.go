package models

import "time"

// MaxRetryAttempts is the number of tracked retries after which a missed
// problem is retired from the active queue even if never answered correctly.
const MaxRetryAttempts = 2

// WrongAnswer is one missed problem in the retry notebook. Solved entries are
// kept as history but excluded from the active queue.
type WrongAnswer struct {
	ID             string     `json:"id"`
	Question       string     `json:"question"`
	UserAnswer     string     `json:"userAnswer"`
	CorrectAnswer  string     `json:"correctAnswer"`
	Type           string     `json:"type"` // e.g. vocabulary, comprehension, inference
	Context        string     `json:"context,omitempty"`
	Explanation    string     `json:"explanation,omitempty"`
	AddedDate      time.Time  `json:"addedDate"`
	ReviewCount    int        `json:"reviewCount"`
	Solved         bool       `json:"solved"`
	LastReviewDate *time.Time `json:"lastReviewDate,omitempty"`
}

// WrongAnswerPatch carries partial updates to a wrong-answer entry.
// Nil fields are left unchanged.
type WrongAnswerPatch struct {
	Context     *string `json:"context,omitempty"`
	Explanation *string `json:"explanation,omitempty"`
	ReviewCount *int    `json:"reviewCount,omitempty" validate:"omitempty,min=0"`
	Solved      *bool   `json:"solved,omitempty"`
}

// Apply merges the patch into an entry
func (p WrongAnswerPatch) Apply(w *WrongAnswer) {
	if p.Context != nil {
		w.Context = *p.Context
	}
	if p.Explanation != nil {
		w.Explanation = *p.Explanation
	}
	if p.ReviewCount != nil {
		w.ReviewCount = *p.ReviewCount
	}
	if p.Solved != nil {
		w.Solved = *p.Solved
	}
}
