package models

import "time"

// Bookmark is a saved reading passage
type Bookmark struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Content      string     `json:"content"`
	GradeLevel   string     `json:"gradeLevel"` // e.g. "초3"
	Tags         []string   `json:"tags"`
	AddedDate    time.Time  `json:"addedDate"`
	LastUsedDate *time.Time `json:"lastUsedDate,omitempty"`
	UseCount     int        `json:"useCount"`
}
