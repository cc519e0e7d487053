// Package spam holds the content filters applied to free-text order fields
// and the origin allow-list check. All rules are soft heuristics tuned for a
// small storefront, not a security boundary.
package spam

import (
	"regexp"
	"strings"
)

// Reason identifies which rule flagged a text.
type Reason string

const (
	ReasonTooManyURLs   Reason = "too_many_urls"
	ReasonSpamKeyword   Reason = "spam_keyword"
	ReasonRepeatedChars Reason = "repeated_characters"
)

// Verdict is the outcome of checking one text field.
type Verdict struct {
	IsSpam bool
	Reason Reason
}

var spamKeywords = []string{
	"crypto",
	"bitcoin",
	"ethereum",
	"backlinks",
	"seo service",
	"marketing agency",
	"digital marketing",
	"increase traffic",
	"buy followers",
	"cheap viagra",
	"casino",
	"gambling",
	"loan",
	"debt",
	"investment opportunity",
	"make money fast",
	"work from home",
	"get rich quick",
}

var urlPattern = regexp.MustCompile(`(?i)https?://\S+`)

// Detect runs the content rules in order and returns on the first match:
// more than two URLs, then keyword containment, then any character repeated
// eleven or more times in a row.
func Detect(text string) Verdict {
	lower := strings.ToLower(text)

	if len(urlPattern.FindAllString(lower, -1)) > 2 {
		return Verdict{IsSpam: true, Reason: ReasonTooManyURLs}
	}

	for _, keyword := range spamKeywords {
		if strings.Contains(lower, keyword) {
			return Verdict{IsSpam: true, Reason: ReasonSpamKeyword}
		}
	}

	if hasRepeatedRun(text, 11) {
		return Verdict{IsSpam: true, Reason: ReasonRepeatedChars}
	}

	return Verdict{}
}

// hasRepeatedRun reports whether any single rune occurs n or more times
// consecutively.
func hasRepeatedRun(text string, n int) bool {
	var prev rune
	run := 0
	for _, r := range text {
		if r == prev {
			run++
		} else {
			prev = r
			run = 1
		}
		if run >= n {
			return true
		}
	}
	return false
}

// AllowedOrigin checks the Origin and Referer header values against the
// allow-list. Denied when both are absent; otherwise the first non-empty
// value passes if it contains any allowed host as a substring. Substring
// containment is deliberately loose (it is how the site has always matched);
// a referer embedding an allowed host anywhere in its URL would pass.
func AllowedOrigin(origin, referer string, allowed []string) bool {
	if origin == "" && referer == "" {
		return false
	}

	checkURL := origin
	if checkURL == "" {
		checkURL = referer
	}

	for _, host := range allowed {
		if strings.Contains(checkURL, host) {
			return true
		}
	}
	return false
}
