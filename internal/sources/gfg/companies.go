package gfg

const tagRoot = "https://www.geeksforgeeks.org/tag/"

// DefaultTagURLs maps company keys to their tag listing pages
func DefaultTagURLs() map[string]string {
	slugs := map[string]string{
		"tcs":          "tcs",
		"infosys":      "infosys",
		"amazon":       "amazon",
		"wipro":        "wipro",
		"google":       "google",
		"microsoft":    "microsoft",
		"cognizant":    "cognizant",
		"hcl":          "hcl",
		"accenture":    "accenture",
		"flipkart":     "flipkart",
		"atlassian":    "atlassian",
		"uber":         "uber",
		"visa":         "visa",
		"jpmorgan":     "jp-morgan",
		"natwest":      "natwest",
		"goldmansachs": "goldman-sachs",
		"deutschebank": "deutsche-bank",
		"amex":         "american-express",
	}
	urls := make(map[string]string, len(slugs))
	for key, slug := range slugs {
		urls[key] = tagRoot + slug + "/"
	}
	return urls
}
