// Package tokenize turns raw document lines into candidate keywords.
//
// The pipeline inside each tokenizer variant is fixed: a sentence is split
// into word tokens, punctuation tokens are dropped, the remaining stream is
// chunked at stopword boundaries, and each chunk is expanded into n-gram
// candidates. Variants differ only in how they split a sentence into words.
package tokenize

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/fievelk/kwe/internal/model"
)

// Candidate is an ordered sequence of word tokens drawn contiguously from
// one stopword-free chunk. Original casing is preserved.
type Candidate []string

// String joins the candidate tokens with single spaces
func (c Candidate) String() string {
	return strings.Join(c, " ")
}

// Tokenizer extracts sentences and candidate keywords from text.
// Implementations must be safe for reuse across documents.
type Tokenizer interface {
	// SegmentSentences splits one physical line into sentences.
	// Sentences never span two lines; an empty line yields none.
	SegmentSentences(line string) []string

	// GenerateCandidates expands one sentence into candidate keywords of
	// up to maxSize tokens, under the selected windowing policy.
	GenerateCandidates(sentence string, maxSize int, flexible bool) []Candidate
}

// New builds the tokenizer variant selected by the extraction config.
// Stopword and punctuation overrides are applied here so the sets become
// immutable for the lifetime of the tokenizer.
func New(cfg model.ExtractionConfig) (Tokenizer, error) {
	stops := DefaultStopwords()
	if len(cfg.Stopwords) > 0 {
		stops = NewWordSet(cfg.Stopwords...)
	}
	punct := DefaultPunctuation()
	for _, sym := range cfg.ExtraPunctuation {
		punct[sym] = struct{}{}
	}

	switch cfg.Tokenizer {
	case model.TokenizerTreebank:
		return &TreebankTokenizer{stopwords: stops, punctuation: punct}, nil
	case model.TokenizerRegexp:
		return &RegexpTokenizer{stopwords: stops, punctuation: punct}, nil
	default:
		return nil, fmt.Errorf("%w: unknown tokenizer %q", model.ErrInvalidConfiguration, cfg.Tokenizer)
	}
}

// SegmentSentences splits a line at sentence terminators (".", "!", "?")
// that are followed by whitespace or end the line. Trailing closers like
// quotes or parentheses stay attached to the sentence they end.
func SegmentSentences(line string) []string {
	var sentences []string
	var current strings.Builder

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		current.WriteRune(r)

		if !isTerminator(r) {
			continue
		}
		// Absorb terminator runs ("...", "?!") and closing quotes/brackets
		for i+1 < len(runes) && (isTerminator(runes[i+1]) || isCloser(runes[i+1])) {
			i++
			current.WriteRune(runes[i])
		}
		if i+1 < len(runes) && !unicode.IsSpace(runes[i+1]) {
			continue // mid-token period, e.g. "3.14" or "e.g"
		}
		if s := strings.TrimSpace(current.String()); s != "" {
			sentences = append(sentences, s)
		}
		current.Reset()
	}

	if s := strings.TrimSpace(current.String()); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

func isCloser(r rune) bool {
	switch r {
	case '"', '\'', ')', ']', '”', '’':
		return true
	}
	return false
}

// candidates runs the shared post-tokenization pipeline: punctuation
// removal, stopword chunking, and n-gram expansion.
func candidates(tokens []string, punct, stops WordSet, maxSize int, flexible bool) []Candidate {
	tokens = RemovePunctuation(tokens, punct)
	chunks := SplitAtStopwords(tokens, stops)
	return ExtractNGrams(chunks, maxSize, flexible)
}
