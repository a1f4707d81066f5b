package extraction

import "github.com/jonathan/pyq-scraper/internal/classify"

// minStrippedLength is the shortest retained question after prefix stripping
const minStrippedLength = 15

// baseQuestionKeywords signal an interrogative or imperative interview question
var baseQuestionKeywords = []string{
	"find", "given", "implement", "write", "design",
	"what", "how", "why", "explain", "difference",
	"print", "check", "count", "sort", "search",
}

// Profile holds the per-source tuning of the extractor.
type Profile struct {
	Name string

	// MinLength and MaxLength bound a unit's trimmed length, inclusive.
	MinLength int
	MaxLength int

	// StripMarkup enables markdown/HTML cleanup before splitting on newlines.
	StripMarkup bool

	// EnumeratedPrefix accepts "Q1." / "Q2:" / "Q3)" lines regardless of keywords.
	EnumeratedPrefix bool

	QuestionKeywords []string
	Classifier       classify.Classifier
}

// ArticleProfile returns the profile for HTML interview-experience articles.
func ArticleProfile() Profile {
	return Profile{
		Name:             "article",
		MinLength:        20,
		MaxLength:        500,
		QuestionKeywords: append([]string(nil), baseQuestionKeywords...),
		Classifier:       classify.ArticleClassifier(),
	}
}

// ForumProfile returns the profile for forum posts delivered as raw text.
func ForumProfile() Profile {
	keywords := append([]string(nil), baseQuestionKeywords...)
	keywords = append(keywords, "return", "minimum", "maximum", "tell me", "binary")
	return Profile{
		Name:             "forum",
		MinLength:        20,
		MaxLength:        600,
		StripMarkup:      true,
		EnumeratedPrefix: true,
		QuestionKeywords: keywords,
		Classifier:       classify.ForumClassifier(),
	}
}

// ProfileByName resolves a profile name as used on the command line.
func ProfileByName(name string) (Profile, bool) {
	switch name {
	case "article", "gfg":
		return ArticleProfile(), true
	case "forum", "leetcode":
		return ForumProfile(), true
	default:
		return Profile{}, false
	}
}
