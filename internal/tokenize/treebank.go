package tokenize

import (
	"strings"
	"unicode"
)

// contractionSuffixes are split off the end of a word the way the Penn
// Treebank conventions do ("don't" -> "do", "n't"; "it's" -> "it", "'s").
var contractionSuffixes = []string{"n't", "'re", "'ve", "'ll", "'s", "'d", "'m"}

// TreebankTokenizer is the linguistic-rule variant: it splits a sentence
// into words and punctuation tokens, separating trailing punctuation and
// common English contractions. Punctuation tokens survive tokenization and
// are dropped by the shared punctuation filter afterwards.
type TreebankTokenizer struct {
	stopwords   WordSet
	punctuation WordSet
}

// NewTreebankTokenizer creates a rule-based tokenizer with the default
// stopword and punctuation sets
func NewTreebankTokenizer() *TreebankTokenizer {
	return &TreebankTokenizer{
		stopwords:   DefaultStopwords(),
		punctuation: DefaultPunctuation(),
	}
}

// SegmentSentences splits a line into sentences
func (t *TreebankTokenizer) SegmentSentences(line string) []string {
	return SegmentSentences(line)
}

// GenerateCandidates expands one sentence into candidate keywords
func (t *TreebankTokenizer) GenerateCandidates(sentence string, maxSize int, flexible bool) []Candidate {
	tokens := t.wordTokens(sentence)
	return candidates(tokens, t.punctuation, t.stopwords, maxSize, flexible)
}

// wordTokens splits a sentence into word and punctuation tokens
func (t *TreebankTokenizer) wordTokens(sentence string) []string {
	var tokens []string
	for _, field := range strings.Fields(sentence) {
		tokens = append(tokens, splitField(field)...)
	}
	return tokens
}

// splitField breaks one whitespace-delimited field into leading punctuation
// tokens, the word core (with contractions split off), and trailing
// punctuation tokens, in original order.
func splitField(field string) []string {
	runes := []rune(field)

	var leading []string
	for len(runes) > 0 && isPunctRune(runes[0]) {
		leading = append(leading, string(runes[0]))
		runes = runes[1:]
	}

	var trailing []string
	for len(runes) > 0 && isPunctRune(runes[len(runes)-1]) {
		trailing = append([]string{string(runes[len(runes)-1])}, trailing...)
		runes = runes[:len(runes)-1]
	}

	tokens := leading
	if len(runes) > 0 {
		tokens = append(tokens, splitContraction(string(runes))...)
	}
	return append(tokens, trailing...)
}

// splitContraction splits a single trailing contraction off a word
func splitContraction(word string) []string {
	lower := strings.ToLower(word)
	for _, suffix := range contractionSuffixes {
		if len(lower) > len(suffix) && strings.HasSuffix(lower, suffix) {
			cut := len(word) - len(suffix)
			return []string{word[:cut], word[cut:]}
		}
	}
	return []string{word}
}

// isPunctRune reports whether r is punctuation or a symbol. Hyphens stay
// inside words so hyphenated compounds survive as single tokens.
func isPunctRune(r rune) bool {
	if r == '-' {
		return false
	}
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}
