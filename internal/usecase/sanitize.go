package usecase

import (
	"regexp"
	"strings"
)

var (
	rolePrefixRe = regexp.MustCompile(`(?im)^\s*(system|developer|assistant)\s*:\s*`)
	codeFenceRe  = regexp.MustCompile("(?s)```.*?```")
)

// SanitizeInput strips role-spoofing prefixes and fenced code blocks from raw
// user text. Always succeeds, no side effects.
func SanitizeInput(raw string) string {
	out := codeFenceRe.ReplaceAllString(raw, " ")
	out = rolePrefixRe.ReplaceAllString(out, "")
	return strings.TrimSpace(out)
}
