package intent

import "strings"

type Intent string

const (
	Generate      Intent = "generate"
	WebScraping   Intent = "web_scraping"
	ConflictCheck Intent = "conflict_check"
	Edit          Intent = "edit"
	General       Intent = "general"
)

type rule struct {
	intent   Intent
	keywords []string
}

// Evaluated in order; the first rule with a matching keyword wins.
var rules = []rule{
	{Generate, []string{"generate", "create brd"}},
	{WebScraping, []string{"/scrape", "competitor", "scrape"}},
	{ConflictCheck, []string{"conflict", "check conflicts"}},
	{Edit, []string{"add", "edit", "update"}},
}

// Classify maps a chat message onto an intent by case-insensitive substring match.
func Classify(message string) Intent {
	lower := strings.ToLower(message)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.intent
			}
		}
	}
	return General
}
