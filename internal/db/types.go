package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/pyq-scraper/internal/types"
)

// InitialAskedCount is the askedCount of a newly seen question
const InitialAskedCount = 1

// QuestionRow is one row of the question table.
// The table must carry a unique constraint on ("companyId", question) for
// conflict-ignoring inserts to deduplicate.
type QuestionRow struct {
	ID         string    `json:"id"`
	CompanyID  string    `json:"company_id"`
	Question   string    `json:"question"`
	Difficulty string    `json:"difficulty"`
	Category   string    `json:"category"`
	Tags       []string  `json:"tags"`
	AskedCount int       `json:"asked_count"`
	LastSeen   time.Time `json:"last_seen"`
	Verified   bool      `json:"verified"`
	Source     string    `json:"source"`
}

// NewQuestionRow builds a fresh unverified row for candidate
func NewQuestionRow(companyID string, candidate types.QuestionCandidate, now time.Time) *QuestionRow {
	tags := make([]string, len(candidate.Tags))
	copy(tags, candidate.Tags)
	return &QuestionRow{
		ID:         uuid.NewString(),
		CompanyID:  companyID,
		Question:   candidate.Text,
		Difficulty: string(candidate.Difficulty),
		Category:   string(candidate.Category),
		Tags:       tags,
		AskedCount: InitialAskedCount,
		LastSeen:   now,
		Verified:   false,
		Source:     candidate.Source,
	}
}
