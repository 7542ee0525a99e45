package tokenize

import "regexp"

// wordPattern matches runs of word characters (plus hyphens, apostrophes
// and the degree sign), or a currency symbol followed by digits and a
// decimal point. Everything between matches is discarded implicitly.
var wordPattern = regexp.MustCompile(`['°\p{L}\p{N}_-]+|[$€£][0-9.]+`)

// RegexpTokenizer extracts word tokens with a single regular expression.
// It is the default variant: faster than rule-based splitting and good
// enough for keyword extraction, where discarded symbols act as phrase
// boundaries anyway.
type RegexpTokenizer struct {
	stopwords   WordSet
	punctuation WordSet
}

// NewRegexpTokenizer creates a regexp tokenizer with the default stopword
// and punctuation sets
func NewRegexpTokenizer() *RegexpTokenizer {
	return &RegexpTokenizer{
		stopwords:   DefaultStopwords(),
		punctuation: DefaultPunctuation(),
	}
}

// SegmentSentences splits a line into sentences
func (t *RegexpTokenizer) SegmentSentences(line string) []string {
	return SegmentSentences(line)
}

// GenerateCandidates expands one sentence into candidate keywords
func (t *RegexpTokenizer) GenerateCandidates(sentence string, maxSize int, flexible bool) []Candidate {
	tokens := wordPattern.FindAllString(sentence, -1)
	return candidates(tokens, t.punctuation, t.stopwords, maxSize, flexible)
}
