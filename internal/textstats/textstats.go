// Package textstats holds the string measurements the round scorers are built on.
// Every function is total: any input, including "", yields a value.
package textstats

import (
	"regexp"
	"strings"
)

var hedgingPhrases = []string{"maybe", "i think", "not sure", "kind of", "probably"}

var (
	stepPattern = regexp.MustCompile(`\d+\.|[-•*]\s`)
	wePattern   = regexp.MustCompile(`(?i)\bwe\b`)
)

// HasContent reports whether text has anything besides whitespace.
func HasContent(text string) bool {
	return strings.TrimSpace(text) != ""
}

// CountWords returns the number of whitespace-separated tokens.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// CountSentences splits on runs of '.', '!' and '?' and counts the non-blank pieces.
// Text without a terminator is one sentence.
func CountSentences(text string) int {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	n := 0
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			n++
		}
	}
	return n
}

// ContainsAny reports whether any keyword is a case-insensitive substring of text.
// Keywords are matched verbatim, so " is " only matches a padded "is".
func ContainsAny(text string, keywords ...string) bool {
	lower := strings.ToLower(text)
	for _, k := range keywords {
		if strings.Contains(lower, strings.ToLower(k)) {
			return true
		}
	}
	return false
}

// HasHedging reports whether text uses an uncertainty phrase such as "maybe" or "i think".
func HasHedging(text string) bool {
	return ContainsAny(text, hedgingPhrases...)
}

// HasParagraphs reports whether text has a blank-line break or more than one non-empty line.
func HasParagraphs(text string) bool {
	if strings.Contains(text, "\n\n") {
		return true
	}
	lines := 0
	for _, line := range strings.Split(text, "\n") {
		if line != "" {
			lines++
		}
	}
	return lines > 1
}

// HasNumberedOrBulletedSteps reports whether text contains "1." style numbering
// or a "-", "•" or "*" bullet followed by whitespace.
func HasNumberedOrBulletedSteps(text string) bool {
	return stepPattern.MatchString(text)
}

// HasFirstPerson reports whether text contains a standalone " i ".
func HasFirstPerson(text string) bool {
	return strings.Contains(strings.ToLower(text), " i ")
}

// MentionsWe reports whether "we" appears as a whole word.
func MentionsWe(text string) bool {
	return wePattern.MatchString(text)
}
