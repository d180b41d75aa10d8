// Package nlp turns free-text interest descriptions into comparable
// keyword and category sets against a static taxonomy.
package nlp

import (
	"strings"
	"unicode"
)

// minTokenLen filters out very short tokens after normalization.
const minTokenLen = 3

// ExtractKeywords extracts a deduplicated, order-preserving keyword list
// from free-form text: lowercase alphabetic tokens longer than two
// characters with stop-words removed, followed by the names of any
// taxonomy categories whose vocabulary contains one of those tokens.
// Punctuation and digits act as token separators, never content. Empty
// input yields an empty list, never an error.
func ExtractKeywords(text string) []string {
	if text == "" {
		return []string{}
	}

	tokens := tokenize(strings.ToLower(text))

	keywords := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if len(tok) < minTokenLen || isStopword(tok) {
			continue
		}
		keywords = append(keywords, tok)
	}

	// Append matched category names so that related hobbies score even
	// when the exact words differ.
	enhanced := append(keywords, Categorize(keywords)...)

	return dedupe(enhanced)
}

// tokenize splits lowercased text on every non-letter rune.
func tokenize(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r)
	})
}

// dedupe removes duplicates while preserving first occurrence.
func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
