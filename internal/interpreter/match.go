package interpreter

import "strings"

// Device matching is deliberately crude substring work, not NLU. Both
// functions are pure over (text, candidate ids) so a smarter classifier can
// replace them without touching the registry or the scheduler.

// MatchDevice returns the first id whose full text appears as a substring of
// the lower-cased command, scanning ids in the given order.
func MatchDevice(text string, ids []string) (string, bool) {
	lower := strings.ToLower(text)
	for _, id := range ids {
		if strings.Contains(lower, strings.ToLower(id)) {
			return id, true
		}
	}
	return "", false
}

// suggestPrefixLen is how much of an id the "did you mean" heuristic
// compares. Known weak: short prefixes false-positive and typos past
// position 3 are missed. Left alone pending product guidance.
const suggestPrefixLen = 3

// SuggestDevice returns the first id whose leading characters appear in the
// command text, for commands where no full id matched.
func SuggestDevice(text string, ids []string) (string, bool) {
	lower := strings.ToLower(text)
	for _, id := range ids {
		prefix := strings.ToLower(id)
		if len(prefix) > suggestPrefixLen {
			prefix = prefix[:suggestPrefixLen]
		}
		if strings.Contains(lower, prefix) {
			return id, true
		}
	}
	return "", false
}
