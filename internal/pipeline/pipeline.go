// Package pipeline wires the extraction stages together: document reading,
// sentence segmentation, candidate generation, graph building, scoring and
// pruning. One Extractor call owns its vocabulary and graph exclusively, so
// extractions are independent and safe to run in parallel across documents.
package pipeline

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fievelk/kwe/internal/model"
	"github.com/fievelk/kwe/internal/score"
	"github.com/fievelk/kwe/internal/tokenize"
)

// Format identifies how a document source is decoded before segmentation
type Format string

const (
	FormatAuto Format = "" // resolve from the file extension
	FormatText Format = "text"
	FormatHTML Format = "html"
)

// DetectFormat resolves a document format from the file extension
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return FormatHTML
	default:
		return FormatText
	}
}

// Extractor runs the complete keyword extraction pipeline
type Extractor struct {
	tokenizer tokenize.Tokenizer
	scorer    *score.Scorer
	cfg       *model.Config
}

// NewExtractor validates the configuration and builds the pipeline
func NewExtractor(cfg *model.Config) (*Extractor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	tokenizer, err := tokenize.New(cfg.Extraction)
	if err != nil {
		return nil, err
	}
	return &Extractor{
		tokenizer: tokenizer,
		scorer:    score.NewScorer(),
		cfg:       cfg,
	}, nil
}

// ExtractFile extracts ranked keywords from the document at path. The file
// is streamed line by line and not retained. Formats other than plain text
// are reduced to visible text first.
func (e *Extractor) ExtractFile(path string, format Format) (*model.Result, error) {
	if format == FormatAuto {
		format = DetectFormat(path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open document: %w", err)
	}
	defer f.Close()

	result, err := e.Extract(f, format)
	if err != nil {
		return nil, fmt.Errorf("extract %s: %w", path, err)
	}
	result.Source = path
	return result, nil
}

// Extract extracts ranked keywords from a document source. An empty or
// whitespace-only document is not an error: it yields an empty result.
func (e *Extractor) Extract(r io.Reader, format Format) (*model.Result, error) {
	if format == FormatHTML {
		text, err := VisibleText(r)
		if err != nil {
			return nil, fmt.Errorf("strip html: %w", err)
		}
		r = strings.NewReader(text)
	}

	var (
		candidates    []tokenize.Candidate
		sentenceCount int
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		// Sentence boundaries are computed per physical line; callers
		// must pre-join paragraphs if cross-line sentences matter.
		for _, sentence := range e.tokenizer.SegmentSentences(scanner.Text()) {
			sentenceCount++
			candidates = append(candidates, e.tokenizer.GenerateCandidates(
				sentence,
				e.cfg.Extraction.MaxKeywordSize,
				e.cfg.Extraction.FlexibleWindow,
			)...)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}

	graph := score.BuildGraph(candidates)
	keywords := e.scorer.Rank(graph, candidates)

	return &model.Result{
		Source:         "-",
		ExtractedAt:    time.Now().UTC(),
		Keywords:       keywords,
		VocabularySize: graph.VocabularySize(),
		CandidateCount: len(candidates),
		SentenceCount:  sentenceCount,
		Extraction:     e.cfg.Extraction,
	}, nil
}
