// Package extraction turns free-form interview write-ups into classified question candidates.
package extraction

import (
	"iter"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/pyq-scraper/internal/types"
)

var (
	emphasisPattern   = regexp.MustCompile(`\*\*`)
	tagPattern        = regexp.MustCompile(`<[^>]+>`)
	enumeratedPattern = regexp.MustCompile(`^Q\d+[.:)]`)
	enumeratedPrefix  = regexp.MustCompile(`^Q\d+[.:)]\s*`)
)

// Normalize strips bold markers, turns literal "\n" sequences into newlines
// and removes HTML tags.
func Normalize(text string) string {
	text = emphasisPattern.ReplaceAllString(text, "")
	text = strings.ReplaceAll(text, `\n`, "\n")
	return tagPattern.ReplaceAllString(text, "")
}

// Units returns the text units of doc that the extractor examines.
func Units(doc types.RawDocument, p Profile) []string {
	if doc.Units != nil {
		return doc.Units
	}
	text := doc.Text
	if p.StripMarkup {
		text = Normalize(text)
	}
	return strings.Split(text, "\n")
}

// Extract yields a candidate for every unit of doc that looks like an interview question.
// The sequence is computed lazily and holds no state between calls.
func Extract(doc types.RawDocument, p Profile) iter.Seq[types.QuestionCandidate] {
	return func(yield func(types.QuestionCandidate) bool) {
		for _, unit := range Units(doc, p) {
			candidate, ok := ExtractUnit(unit, doc.Source, p)
			if !ok {
				continue
			}
			if !yield(candidate) {
				return
			}
		}
	}
}

// ExtractAll collects Extract into a slice.
func ExtractAll(doc types.RawDocument, p Profile) []types.QuestionCandidate {
	var out []types.QuestionCandidate
	for c := range Extract(doc, p) {
		out = append(out, c)
	}
	return out
}

// ExtractUnit applies the question heuristic to a single unit.
// Length bounds count characters, not bytes.
func ExtractUnit(unit, source string, p Profile) (types.QuestionCandidate, bool) {
	text := strings.TrimSpace(unit)
	if n := utf8.RuneCountInString(text); n < p.MinLength || n > p.MaxLength {
		return types.QuestionCandidate{}, false
	}

	if !IsQuestion(text, p) {
		return types.QuestionCandidate{}, false
	}

	if p.EnumeratedPrefix {
		text = strings.TrimSpace(enumeratedPrefix.ReplaceAllString(text, ""))
	}
	if utf8.RuneCountInString(text) < minStrippedLength {
		return types.QuestionCandidate{}, false
	}

	return types.QuestionCandidate{
		Text:       text,
		Difficulty: p.Classifier.ClassifyDifficulty(text),
		Category:   p.Classifier.ClassifyCategory(text),
		Tags:       p.Classifier.ExtractTags(text),
		Source:     source,
	}, true
}

// IsQuestion reports whether a trimmed unit passes the question test of p.
func IsQuestion(text string, p Profile) bool {
	if p.EnumeratedPrefix && enumeratedPattern.MatchString(text) {
		return true
	}
	lower := strings.ToLower(text)
	for _, kw := range p.QuestionKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// CollapseWhitespace joins runs of Unicode whitespace, including NBSP, into single spaces and trims the result.
func CollapseWhitespace(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
