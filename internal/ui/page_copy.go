package ui

// PageCopy parameterizes one analysis page. Both pages run the exact same
// normalization, aggregation, and orchestration; only the copy differs,
// so the behavior cannot drift between them.
type PageCopy struct {
	ID             string
	Title          string
	Tagline        string
	SinglePrompt   string
	BulkPrompt     string
	URLPrompt      string
	SupportedLinks []string
	ResultsLabel   string
}

func SocialCopy() PageCopy {
	return PageCopy{
		ID:           "social",
		Title:        "Social Pulse",
		Tagline:      "What are people saying about your post?",
		SinglePrompt: "Paste a comment or caption to analyze",
		BulkPrompt:   "Paste comments, one per line (max 100)",
		URLPrompt:    "Paste a post or video URL",
		SupportedLinks: []string{
			"YouTube videos & Shorts",
			"Instagram posts & reels",
		},
		ResultsLabel: "Comments",
	}
}

func ReviewsCopy() PageCopy {
	return PageCopy{
		ID:           "reviews",
		Title:        "Review Radar",
		Tagline:      "How is your product landing with buyers?",
		SinglePrompt: "Paste a review to analyze",
		BulkPrompt:   "Paste reviews, one per line (max 100)",
		URLPrompt:    "Paste a product page URL",
		SupportedLinks: []string{
			"Amazon product pages",
			"Flipkart product pages",
		},
		ResultsLabel: "Reviews",
	}
}
