package models

import "time"

// MasteryThreshold is the number of correct reviews after which a word is
// considered mastered and retired from the review queue.
const MasteryThreshold = 3

// VocabularyEntry is one word in a student's personal word list
type VocabularyEntry struct {
	ID             string     `json:"id"`
	Word           string     `json:"word"`
	Meaning        string     `json:"meaning"`
	Etymology      string     `json:"etymology,omitempty"` // hanja origin, when known
	Synonyms       []string   `json:"synonyms"`
	Antonyms       []string   `json:"antonyms"`
	Difficulty     int        `json:"difficulty"` // 1-5
	Example        string     `json:"example"`
	AddedDate      time.Time  `json:"addedDate"`
	ReviewCount    int        `json:"reviewCount"`
	CorrectCount   int        `json:"correctCount"`
	LastReviewDate *time.Time `json:"lastReviewDate,omitempty"`
	Mastered       bool       `json:"mastered"`
}

// VocabularyPatch carries partial updates to a vocabulary entry.
// Nil fields are left unchanged.
type VocabularyPatch struct {
	Meaning      *string   `json:"meaning,omitempty"`
	Etymology    *string   `json:"etymology,omitempty"`
	Synonyms     *[]string `json:"synonyms,omitempty"`
	Antonyms     *[]string `json:"antonyms,omitempty"`
	Difficulty   *int      `json:"difficulty,omitempty" validate:"omitempty,min=1,max=5"`
	Example      *string   `json:"example,omitempty"`
	ReviewCount  *int      `json:"reviewCount,omitempty" validate:"omitempty,min=0"`
	CorrectCount *int      `json:"correctCount,omitempty" validate:"omitempty,min=0"`
	Mastered     *bool     `json:"mastered,omitempty"`
}

// Apply merges the patch into an entry
func (p VocabularyPatch) Apply(e *VocabularyEntry) {
	if p.Meaning != nil {
		e.Meaning = *p.Meaning
	}
	if p.Etymology != nil {
		e.Etymology = *p.Etymology
	}
	if p.Synonyms != nil {
		e.Synonyms = *p.Synonyms
	}
	if p.Antonyms != nil {
		e.Antonyms = *p.Antonyms
	}
	if p.Difficulty != nil {
		e.Difficulty = *p.Difficulty
	}
	if p.Example != nil {
		e.Example = *p.Example
	}
	if p.ReviewCount != nil {
		e.ReviewCount = *p.ReviewCount
	}
	if p.CorrectCount != nil {
		e.CorrectCount = *p.CorrectCount
	}
	if p.Mastered != nil {
		e.Mastered = *p.Mastered
	}
}
