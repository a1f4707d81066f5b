package loader

// DefaultAliases maps company keys to a fragment of the stored company name
func DefaultAliases() map[string]string {
	return map[string]string{
		"tcs":          "tata",
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
		"jpmorgan":     "jp morgan",
		"natwest":      "natwest",
		"goldmansachs": "goldman",
		"deutschebank": "deutsche",
		"amex":         "american",
	}
}
