package devserver

import "strings"

// urlContent is what a scrape of a URL would have produced. The devserver
// has no browser, so it serves the same canned fallback content the
// production backend uses when scraping is unavailable, and refuses video
// platforms the way the production backend does when a scrape fails.
type urlContent struct {
	Title       string
	Description string
	Texts       []string
}

const videoScrapeDetail = "Could not scrape video comments. The video might be private, age-restricted, comments are disabled, or comments are hidden."

func isVideoURL(target string) bool {
	lower := strings.ToLower(target)
	return strings.Contains(lower, "youtube.com") ||
		strings.Contains(lower, "youtu.be") ||
		strings.Contains(lower, "instagram.com") ||
		strings.Contains(lower, "instagr.am")
}

func contentForURL(target string) urlContent {
	lower := strings.ToLower(target)
	if strings.Contains(lower, "amazon") || strings.Contains(lower, "flipkart") {
		return urlContent{
			Title:       "Wireless Noise Cancelling Headphones",
			Description: "High fidelity audio, 30h battery life.",
			Texts: []string{
				"Best headphones I've ever owned.",
				"Broke after 2 weeks.",
				"Good for price, NC is okay.",
				"I am in love with these!",
				"Shipping slow.",
				"Battery life as advertised.",
			},
		}
	}
	return urlContent{
		Title:       "Viral Travel Reel",
		Description: "Exploring hidden gems.",
		Texts: []string{
			"Wow, stunning!",
			"Where is this?",
			"Too much editing.",
			"Breathtaking.",
			"Music perfect.",
			"Overcrowded.",
		},
	}
}
