package router

import (
	"strings"
	"unicode"
)

// ExtractName isolates the best-guess person name from a faculty-intent
// message. It is a heuristic, not a parser: query phrases, then role/title
// words, are stripped as substrings from the lowercased text, question marks
// are dropped and whitespace collapsed. If fewer than two characters remain,
// the first word of the original message with an alphabetic length above
// three that is not itself a stopword is used instead. The stripping sequence
// matters; later strips operate on the already-reduced string.
//
// ExtractName("Where is Dr. Sharma?") yields "sharma".
func ExtractName(text string) (string, error) {
	name := strings.ToLower(text)

	for _, phrase := range queryPhraseStopwords {
		name = strings.ReplaceAll(name, phrase, "")
	}
	for _, role := range roleStopwords {
		name = strings.ReplaceAll(name, role, "")
	}

	name = strings.ReplaceAll(name, "?", "")
	name = strings.Join(strings.Fields(name), " ")

	if len(name) < 2 {
		name = fallbackNameWord(text)
	}

	if len(name) < 2 {
		return "", ErrNoNameFound
	}
	return name, nil
}

// fallbackNameWord picks the first word that plausibly is a name. The word's
// original casing is preserved, minus any non-letter characters.
func fallbackNameWord(text string) string {
	for _, word := range strings.Fields(text) {
		lower := lowerAlphaOnly(word)
		if len(lower) > 3 && !fallbackStopwords[lower] {
			return stripNonLetters(word)
		}
	}
	return ""
}

func lowerAlphaOnly(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func stripNonLetters(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || r == ' ' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
