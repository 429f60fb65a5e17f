// Package output derives per-application folders and writes generated
// artifacts into them.
package output

import (
	"regexp"
	"strings"
)

var (
	unsafeChars = regexp.MustCompile(`[^A-Za-z0-9 _-]+`)
	whitespace  = regexp.MustCompile(`\s+`)
)

// SanitizeName turns a free-text company or role string into a filesystem-safe
// path segment: unsafe characters are stripped, runs of whitespace become a
// single underscore. "Acme Corp." becomes "Acme_Corp". An empty result falls
// back to "untitled".
func SanitizeName(s string) string {
	s = strings.TrimSpace(s)
	s = unsafeChars.ReplaceAllString(s, "")
	s = whitespace.ReplaceAllString(strings.TrimSpace(s), "_")
	if s == "" {
		return "untitled"
	}
	return s
}

// FileStem derives the artifact name prefix from the candidate's name,
// surname first: "Omar Barouni" becomes "Barouni_Omar".
func FileStem(candidateName string) string {
	words := strings.Fields(unsafeChars.ReplaceAllString(candidateName, ""))
	if len(words) == 0 {
		return "Candidate"
	}
	last := words[len(words)-1]
	rest := words[:len(words)-1]
	return strings.Join(append([]string{last}, rest...), "_")
}
