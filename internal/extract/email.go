// Package extract provides small text-extraction utilities used by the
// notification and scheduling commands.
package extract

import "regexp"

// emailPattern matches a conventional email address: a local part of
// letters, digits and ._%+-, an @, dotted domain labels and a 2-7 letter
// top-level label.
var emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,7}\b`)

// EmailFromText returns the first email address found in text.
// The second return is false when no address matches. Matching is purely
// syntactic; no deliverability validation is attempted.
func EmailFromText(text string) (string, bool) {
	match := emailPattern.FindString(text)
	return match, match != ""
}
