// Package classify provides table-driven keyword classifiers for interview questions.
package classify

import (
	"strings"

	"github.com/jonathan/pyq-scraper/internal/types"
)

// Rule pairs a label with the substrings that signal it
type Rule struct {
	Label    string
	Keywords []string
}

// Matches reports whether any keyword occurs in lower, which must already be lowercased.
func (r Rule) Matches(lower string) bool {
	for _, kw := range r.Keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// Classifier holds the three keyword tables used to annotate a question.
// Difficulty and Category are evaluated in order and the first matching
// rule wins; Tags collects every matching rule in declaration order.
type Classifier struct {
	Difficulty        []Rule
	DefaultDifficulty types.Difficulty
	Category          []Rule
	DefaultCategory   types.Category
	Tags              []Rule
}

// FirstMatch returns the label of the first rule matching text, or fallback
func FirstMatch(rules []Rule, text, fallback string) string {
	lower := strings.ToLower(text)
	for _, r := range rules {
		if r.Matches(lower) {
			return r.Label
		}
	}
	return fallback
}

// AllMatches returns the label of every rule matching text, in rule order.
// The result is never nil.
func AllMatches(rules []Rule, text string) []string {
	lower := strings.ToLower(text)
	labels := make([]string, 0, len(rules))
	for _, r := range rules {
		if r.Matches(lower) {
			labels = append(labels, r.Label)
		}
	}
	return labels
}

// ClassifyDifficulty infers a difficulty for text
func (c Classifier) ClassifyDifficulty(text string) types.Difficulty {
	return types.Difficulty(FirstMatch(c.Difficulty, text, string(c.defaultDifficulty())))
}

// ClassifyCategory infers a category for text
func (c Classifier) ClassifyCategory(text string) types.Category {
	return types.Category(FirstMatch(c.Category, text, string(c.defaultCategory())))
}

// ExtractTags returns the topic tags found in text
func (c Classifier) ExtractTags(text string) []string {
	return AllMatches(c.Tags, text)
}

func (c Classifier) defaultDifficulty() types.Difficulty {
	if c.DefaultDifficulty == "" {
		return types.DifficultyMedium
	}
	return c.DefaultDifficulty
}

func (c Classifier) defaultCategory() types.Category {
	if c.DefaultCategory == "" {
		return types.CategoryTechnical
	}
	return c.DefaultCategory
}
