package cli

import (
	"fmt"
	"os"

	"github.com/fievelk/kwe/internal/model"
	"github.com/fievelk/kwe/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	maxSize        int
	flexibleWindow bool
	tokenizerName  string
	topN           int
	outJSON        string
	outMD          string
	formatName     string
	stopwordsFile  string
	extraPunct     []string
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract <file>",
	Short: "Extract ranked keywords from a single document",
	Long: `Extract reads one document and prints its keywords, best first:
- Sentences are segmented per line and split into word tokens
- Stopwords and punctuation delimit the candidate phrases
- Each phrase scores the summed degree/frequency ratio of its words
- The top third of the vocabulary is kept

Use "-" to read from standard input.

Example:
  kwe extract document.txt
  kwe extract document.txt --max-size 2 --flexible-window
  kwe extract page.html --json keywords.json --md keywords.md
  kwe extract notes.txt --tokenizer treebank --top 10`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	// Extraction flags
	extractCmd.Flags().IntVar(&maxSize, "max-size", 3, "maximum word tokens per keyword")
	extractCmd.Flags().BoolVar(&flexibleWindow, "flexible-window", false, "emit every n-gram from 1 up to max-size instead of only the longest window")
	extractCmd.Flags().StringVar(&tokenizerName, "tokenizer", "", "word tokenizer variant (regexp, treebank)")
	extractCmd.Flags().StringVar(&stopwordsFile, "stopwords", "", "stopword list file overriding the built-in English set (one word per line)")
	extractCmd.Flags().StringSliceVar(&extraPunct, "punctuation", nil, "extra punctuation symbols to strip")

	// Input/output flags
	extractCmd.Flags().StringVar(&formatName, "format", "", "document format (text, html; default: by file extension)")
	extractCmd.Flags().IntVar(&topN, "top", 0, "show only the best N keywords (0 = all kept after pruning)")
	extractCmd.Flags().StringVar(&outJSON, "json", "", "output JSON report path (optional)")
	extractCmd.Flags().StringVar(&outMD, "md", "", "output Markdown report path (optional)")
}

func runExtract(cmd *cobra.Command, args []string) error {
	path := args[0]

	// Build configuration: file/env first, then flags on top
	cfg := loadConfig()
	if cmd.Flags().Changed("max-size") {
		cfg.Extraction.MaxKeywordSize = maxSize
	}
	if cmd.Flags().Changed("flexible-window") {
		cfg.Extraction.FlexibleWindow = flexibleWindow
	}
	if tokenizerName != "" {
		cfg.Extraction.Tokenizer = tokenizerName
	}
	if len(extraPunct) > 0 {
		cfg.Extraction.ExtraPunctuation = append(cfg.Extraction.ExtraPunctuation, extraPunct...)
	}
	if cmd.Flags().Changed("top") {
		cfg.Output.Top = topN
	}
	if stopwordsFile != "" {
		words, err := loadStopwordsFile(stopwordsFile)
		if err != nil {
			return err
		}
		cfg.Extraction.Stopwords = words
	}

	format, err := parseFormat(formatName)
	if err != nil {
		return err
	}

	extractor, err := pipeline.NewExtractor(cfg)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Extracting: %s\n", path)
		fmt.Fprintf(os.Stderr, "Tokenizer: %s\n", cfg.Extraction.Tokenizer)
		fmt.Fprintf(os.Stderr, "Max keyword size: %d\n", cfg.Extraction.MaxKeywordSize)
		fmt.Fprintf(os.Stderr, "Flexible window: %v\n", cfg.Extraction.FlexibleWindow)
		fmt.Fprintln(os.Stderr)
	}

	res, err := extractResult(extractor, path, format)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Segmented %d sentences\n", res.SentenceCount)
		fmt.Fprintf(os.Stderr, "✓ Generated %d candidate keywords\n", res.CandidateCount)
		fmt.Fprintf(os.Stderr, "✓ Vocabulary of %d words, kept %d keywords\n", res.VocabularySize, len(res.Keywords))
		fmt.Fprintln(os.Stderr)
	}

	renderer := pipeline.NewRenderer(cfg.Output.Top)
	if err := renderer.RenderText(res, os.Stdout); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	if outJSON != "" {
		if err := renderer.RenderJSON(res, outJSON); err != nil {
			return fmt.Errorf("render json: %w", err)
		}
	}
	if outMD != "" {
		if err := renderer.RenderMarkdown(res, outMD); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
	}
	return nil
}

// extractResult runs the pipeline over a file path or standard input
func extractResult(extractor *pipeline.Extractor, path string, format pipeline.Format) (*model.Result, error) {
	if path == "-" {
		return extractor.Extract(os.Stdin, format)
	}
	return extractor.ExtractFile(path, format)
}
