package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fievelk/kwe/internal/model"
)

// Renderer writes extraction results as plain text, JSON or Markdown
type Renderer struct {
	top int // keywords to show, 0 means all
}

// NewRenderer creates a renderer. top limits how many keywords the text and
// Markdown renderings show; the JSON report always carries the full ranked
// list.
func NewRenderer(top int) *Renderer {
	return &Renderer{top: top}
}

// RenderText writes an aligned "score keyword" listing
func (r *Renderer) RenderText(result *model.Result, w io.Writer) error {
	for i, kw := range r.visible(result.Keywords) {
		if _, err := fmt.Fprintf(w, "%3d. %9.4f  %s\n", i+1, kw.Score, kw.Text); err != nil {
			return err
		}
	}
	return nil
}

// RenderJSON writes the full result as indented JSON to path
func (r *Renderer) RenderJSON(result *model.Result, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close report: %w", closeErr)
		}
	}()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}

// RenderMarkdown writes a Markdown report with a ranked keyword table
func (r *Renderer) RenderMarkdown(result *model.Result, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close report: %w", closeErr)
		}
	}()

	printf := func(format string, a ...interface{}) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(f, format, a...)
	}

	printf("# Keywords: %s\n\n", result.Source)
	printf("- Extracted: %s\n", result.ExtractedAt.Format("2006-01-02 15:04:05 UTC"))
	printf("- Sentences: %d\n", result.SentenceCount)
	printf("- Candidates: %d\n", result.CandidateCount)
	printf("- Vocabulary: %d words\n", result.VocabularySize)
	printf("- Tokenizer: %s (max size %d, flexible window %v)\n\n",
		result.Extraction.Tokenizer,
		result.Extraction.MaxKeywordSize,
		result.Extraction.FlexibleWindow)

	printf("| # | Keyword | Score |\n")
	printf("|---|---------|-------|\n")
	for i, kw := range r.visible(result.Keywords) {
		printf("| %d | %s | %.4f |\n", i+1, kw.Text, kw.Score)
	}
	return err
}

func (r *Renderer) visible(keywords []model.Keyword) []model.Keyword {
	if r.top > 0 && r.top < len(keywords) {
		return keywords[:r.top]
	}
	return keywords
}
