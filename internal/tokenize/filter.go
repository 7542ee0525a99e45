package tokenize

import "strings"

// asciiPunctuation mirrors the standard ASCII punctuation characters.
const asciiPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// DefaultPunctuation returns a fresh copy of the built-in punctuation set:
// the ASCII punctuation symbols plus the en-dash and the degree sign.
func DefaultPunctuation() WordSet {
	set := make(WordSet, len(asciiPunctuation)+2)
	for _, r := range asciiPunctuation {
		set[string(r)] = struct{}{}
	}
	set["–"] = struct{}{}
	set["°"] = struct{}{}
	return set
}

// RemovePunctuation drops tokens that exact-match an entry of the
// punctuation set. Matching is case-sensitive with no normalization, so a
// token like "U.S." passes through untouched.
func RemovePunctuation(tokens []string, punctuation WordSet) []string {
	kept := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if punctuation.Has(tok) {
			continue
		}
		kept = append(kept, tok)
	}
	return kept
}

// SplitAtStopwords splits a token stream into the maximal contiguous runs
// of non-stopword tokens. Stopwords are matched case-insensitively and are
// discarded; empty runs are never emitted.
func SplitAtStopwords(tokens []string, stopwords WordSet) [][]string {
	var chunks [][]string
	var current []string

	for _, tok := range tokens {
		if stopwords.Has(strings.ToLower(tok)) {
			if len(current) > 0 {
				chunks = append(chunks, current)
				current = nil
			}
			continue
		}
		current = append(current, tok)
	}
	if len(current) > 0 {
		chunks = append(chunks, current)
	}
	return chunks
}
