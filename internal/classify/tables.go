package classify

import "github.com/jonathan/pyq-scraper/internal/types"

// Tag vocabulary
const (
	TagArray   = "Array"
	TagString  = "String"
	TagTree    = "Tree"
	TagGraph   = "Graph"
	TagDP      = "DP"
	TagSorting = "Sorting"
	TagOS      = "OS"
	TagDBMS    = "DBMS"
	TagOOP     = "OOP"
)

// TagRules is the shared topic vocabulary, in output order.
// The DP keyword is padded with spaces so "dp" inside other words is not a tag hit.
var TagRules = []Rule{
	{Label: TagArray, Keywords: []string{"array", "subarray"}},
	{Label: TagString, Keywords: []string{"string", "substring", "palindrome"}},
	{Label: TagTree, Keywords: []string{"tree", "bst", "binary tree"}},
	{Label: TagGraph, Keywords: []string{"graph", "bfs", "dfs"}},
	{Label: TagDP, Keywords: []string{"dynamic programming", " dp "}},
	{Label: TagSorting, Keywords: []string{"sort", "quicksort", "mergesort"}},
	{Label: TagOS, Keywords: []string{"process", "thread", "deadlock"}},
	{Label: TagDBMS, Keywords: []string{"sql", "database", "query"}},
	{Label: TagOOP, Keywords: []string{"class", "object", "inheritance"}},
}

var hrRule = Rule{
	Label:    string(types.CategoryHR),
	Keywords: []string{"tell me", "yourself", "strength", "weakness", "team", "conflict"},
}

// ArticleClassifier is tuned for long-form HTML interview write-ups.
func ArticleClassifier() Classifier {
	return Classifier{
		Difficulty: []Rule{
			{Label: string(types.DifficultyHard), Keywords: []string{"dynamic programming", "dp", "graph", "lru", "trie", "segment tree", "dijkstra"}},
			{Label: string(types.DifficultyEasy), Keywords: []string{"array", "string", "loop", "factorial", "fibonacci", "reverse", "palindrome"}},
		},
		DefaultDifficulty: types.DifficultyMedium,
		Category: []Rule{
			{Label: string(types.CategoryDSA), Keywords: []string{"array", "string", "tree", "graph", "dp", "sort", "linked list"}},
			{Label: string(types.CategoryAptitude), Keywords: []string{"profit", "loss", "speed", "time", "percentage", "probability"}},
			hrRule,
		},
		DefaultCategory: types.CategoryTechnical,
		Tags:            TagRules,
	}
}

// ForumClassifier is tuned for forum posts, which often use terse enumerated questions.
func ForumClassifier() Classifier {
	return Classifier{
		Difficulty: []Rule{
			{Label: string(types.DifficultyHard), Keywords: []string{"hard", "dynamic programming", "dp", "graph", "trie", "segment"}},
			{Label: string(types.DifficultyEasy), Keywords: []string{"easy", "array", "string", "palindrome", "fibonacci"}},
		},
		DefaultDifficulty: types.DifficultyMedium,
		Category: []Rule{
			{Label: string(types.CategoryDSA), Keywords: []string{"array", "string", "tree", "graph", "dp", "sort", "linked list", "binary"}},
			{Label: string(types.CategoryAptitude), Keywords: []string{"profit", "loss", "speed", "percentage", "probability", "puzzle"}},
			hrRule,
		},
		DefaultCategory: types.CategoryTechnical,
		Tags:            TagRules,
	}
}
