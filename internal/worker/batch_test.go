package worker

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fievelk/kwe/internal/model"
	"github.com/fievelk/kwe/internal/pipeline"
)

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}
	return path
}

func newTestProcessor(t *testing.T, cfg *model.Config) *BatchProcessor {
	t.Helper()
	extractor, err := pipeline.NewExtractor(cfg)
	if err != nil {
		t.Fatalf("Failed to build extractor: %v", err)
	}
	return NewBatchProcessor(extractor, cfg)
}

func TestReadList(t *testing.T) {
	dir := t.TempDir()
	list := writeFixture(t, dir, "docs.txt", "a.txt\n\n# a comment\nb.txt\n  c.txt  \n")

	paths, err := ReadList(list)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	want := []string{"a.txt", "b.txt", "c.txt"}
	if len(paths) != len(want) {
		t.Fatalf("Expected %d paths, got %d: %v", len(want), len(paths), paths)
	}
	for i, p := range want {
		if paths[i] != p {
			t.Errorf("Position %d: expected %q, got %q", i, p, paths[i])
		}
	}
}

func TestReadList_MissingFile(t *testing.T) {
	if _, err := ReadList(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Error("Expected error for missing list file")
	}
}

func TestBatchProcessor_Process(t *testing.T) {
	dir := t.TempDir()
	doc1 := writeFixture(t, dir, "wolves.txt",
		"Wolves are an endangered species. Food is any substance consumed to provide nutritional support for the body.\n")
	doc2 := writeFixture(t, dir, "short.txt", "hello world\n")

	cfg := model.DefaultConfig()
	cfg.Extraction.FlexibleWindow = true
	processor := newTestProcessor(t, cfg)

	outcomes := processor.Process(context.Background(), []string{doc1, doc2}, pipeline.FormatAuto)

	if len(outcomes) != 2 {
		t.Fatalf("Expected 2 outcomes, got %d", len(outcomes))
	}
	for _, outcome := range outcomes {
		if outcome.Err != nil {
			t.Errorf("Expected no error for %q, got %v", outcome.Path, outcome.Err)
		}
	}
}

func TestBatchProcessor_DuplicatePathsServedFromCache(t *testing.T) {
	dir := t.TempDir()
	doc := writeFixture(t, dir, "wolves.txt",
		"Wolves are an endangered species. Food is any substance consumed to provide nutritional support for the body.\n")

	cfg := model.DefaultConfig()
	cfg.Extraction.FlexibleWindow = true
	cfg.Concurrency.Workers = 1 // sequential, so the second job sees the cache
	processor := newTestProcessor(t, cfg)

	outcomes := processor.Process(context.Background(), []string{doc, doc}, pipeline.FormatAuto)

	if len(outcomes) != 2 {
		t.Fatalf("Expected 2 outcomes, got %d", len(outcomes))
	}

	cached := 0
	for _, outcome := range outcomes {
		if outcome.Err != nil {
			t.Fatalf("Expected no error, got %v", outcome.Err)
		}
		if outcome.Cached {
			cached++
		}
		if len(outcome.Result.Keywords) == 0 {
			t.Error("Expected keywords in every outcome")
		}
	}
	if cached != 1 {
		t.Errorf("Expected exactly 1 cached outcome, got %d", cached)
	}
}

func TestBatchProcessor_CacheDisabled(t *testing.T) {
	dir := t.TempDir()
	doc := writeFixture(t, dir, "wolves.txt", "Wolves are an endangered species.\n")

	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = false
	cfg.Concurrency.Workers = 1
	processor := newTestProcessor(t, cfg)

	outcomes := processor.Process(context.Background(), []string{doc, doc}, pipeline.FormatAuto)

	for _, outcome := range outcomes {
		if outcome.Cached {
			t.Error("Expected no cached outcomes with caching disabled")
		}
	}
}

func TestBatchProcessor_MissingDocument(t *testing.T) {
	cfg := model.DefaultConfig()
	processor := newTestProcessor(t, cfg)

	outcomes := processor.Process(context.Background(),
		[]string{filepath.Join(t.TempDir(), "absent.txt")}, pipeline.FormatAuto)

	if len(outcomes) != 1 {
		t.Fatalf("Expected 1 outcome, got %d", len(outcomes))
	}
	if outcomes[0].Err == nil {
		t.Error("Expected error for missing document")
	}
}
