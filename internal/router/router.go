package router

import "strings"

// Classify maps a raw user message to an Intent. It is a total function:
// every input, including the empty string, yields exactly one Intent, and the
// same input always yields the same Intent.
func Classify(text string) Intent {
	msg := strings.ToLower(strings.TrimSpace(text))
	if msg == "" {
		return IntentUnknown
	}

	for _, set := range keywordSets {
		for _, kw := range set.Keywords {
			if strings.Contains(msg, kw) {
				return set.Intent
			}
		}
	}

	return IntentUnknown
}
