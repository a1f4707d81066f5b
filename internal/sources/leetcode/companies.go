package leetcode

// DefaultSlugs maps company keys to discussion tag slugs
func DefaultSlugs() map[string]string {
	return map[string]string{
		"amazon":       "amazon",
		"google":       "google",
		"microsoft":    "microsoft",
		"flipkart":     "flipkart",
		"uber":         "uber",
		"atlassian":    "atlassian",
		"visa":         "visa",
		"jpmorgan":     "jpmorgan",
		"goldmansachs": "goldman-sachs",
	}
}
