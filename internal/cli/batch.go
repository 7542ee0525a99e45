package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/fievelk/kwe/internal/pipeline"
	"github.com/fievelk/kwe/internal/worker"
	"github.com/spf13/cobra"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
	noCache      bool
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Extract keywords from multiple documents in parallel",
	Long: `Batch processes multiple documents concurrently:
- Read document paths from the input file (one per line, # comments allowed)
- Extract keywords in parallel with a configurable worker count
- Duplicate paths are served from an in-memory result cache
- Write one JSON report per document into the output directory

Example:
  kwe batch documents.txt
  kwe batch documents.txt --concurrency 8 --output-dir ./reports
  kwe batch documents.txt --max-size 2 --flexible-window`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	// Concurrency flags
	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./kwe-reports", "output directory for reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the duplicate-path result cache")

	// Extraction flags shared with the extract command
	batchCmd.Flags().IntVar(&maxSize, "max-size", 3, "maximum word tokens per keyword")
	batchCmd.Flags().BoolVar(&flexibleWindow, "flexible-window", false, "emit every n-gram from 1 up to max-size instead of only the longest window")
	batchCmd.Flags().StringVar(&tokenizerName, "tokenizer", "", "word tokenizer variant (regexp, treebank)")
	batchCmd.Flags().StringVar(&stopwordsFile, "stopwords", "", "stopword list file overriding the built-in English set (one word per line)")
	batchCmd.Flags().StringVar(&formatName, "format", "", "document format (text, html; default: by file extension)")
}

func runBatch(cmd *cobra.Command, args []string) error {
	listFile := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

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
	if stopwordsFile != "" {
		words, err := loadStopwordsFile(stopwordsFile)
		if err != nil {
			return err
		}
		cfg.Extraction.Stopwords = words
	}
	if cmd.Flags().Changed("concurrency") {
		cfg.Concurrency.Workers = concurrency
	}
	if noCache {
		cfg.Cache.Enabled = false
	}

	format, err := parseFormat(formatName)
	if err != nil {
		return err
	}

	extractor, err := pipeline.NewExtractor(cfg)
	if err != nil {
		return err
	}

	paths, err := worker.ReadList(listFile)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Input file:  %s\n", listFile)
	fmt.Fprintf(os.Stderr, "Documents:   %d\n", len(paths))
	fmt.Fprintf(os.Stderr, "Workers:     %d\n", cfg.Concurrency.Workers)
	fmt.Fprintf(os.Stderr, "Output dir:  %s\n", outputDir)
	fmt.Fprintln(os.Stderr)

	// Create output directory
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	processor := worker.NewBatchProcessor(extractor, cfg)
	outcomes := processor.Process(ctx, paths, format)

	renderer := pipeline.NewRenderer(cfg.Output.Top)
	successCount := 0
	failureCount := 0

	for _, outcome := range outcomes {
		if outcome.Err != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", outcome.Path, outcome.Err)
			continue
		}

		reportPath := filepath.Join(outputDir, reportName(outcome.Path))
		if err := renderer.RenderJSON(outcome.Result, reportPath); err != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", outcome.Path, err)
			continue
		}

		successCount++
		note := ""
		if outcome.Cached {
			note = " (cached)"
		}
		fmt.Fprintf(os.Stderr, "✓ %s: %d keywords%s\n", outcome.Path, len(outcome.Result.Keywords), note)
	}

	fmt.Fprintln(os.Stderr)
	fmt.Fprintf(os.Stderr, "Done: %d succeeded, %d failed\n", successCount, failureCount)

	if failureCount > 0 {
		return fmt.Errorf("%d of %d documents failed", failureCount, len(outcomes))
	}
	return nil
}

// reportName maps a document path to its report file name
func reportName(path string) string {
	base := filepath.Base(path)
	if ext := filepath.Ext(base); ext != "" {
		base = strings.TrimSuffix(base, ext)
	}
	return base + ".json"
}
