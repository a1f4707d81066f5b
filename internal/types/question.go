// Package types provides type definitions for structured data used throughout the pyq-scraper system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Difficulty is the inferred difficulty of a question
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// Category is the inferred category of a question
type Category string

const (
	CategoryDSA       Category = "DSA"
	CategoryAptitude  Category = "Aptitude"
	CategoryHR        Category = "HR"
	CategoryTechnical Category = "Technical"
)

// QuestionCandidate is a question extracted from a fetched document, ready to be loaded.
// Classification fields are derived from Text alone; Source is the document it came from.
type QuestionCandidate struct {
	Text       string     `json:"question"`
	Difficulty Difficulty `json:"difficulty"`
	Category   Category   `json:"category"`
	Tags       []string   `json:"tags"`
	Source     string     `json:"source"`
}

// RawDocument is one fetched unit of free text.
// HTML sources pre-split the content into Units; API sources leave Units nil
// and carry the whole body in Text.
type RawDocument struct {
	ID     string   `json:"id"`
	Source string   `json:"source"`
	Text   string   `json:"text,omitempty"`
	Units  []string `json:"units,omitempty"`
}
