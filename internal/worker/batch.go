package worker

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fievelk/kwe/internal/cache"
	"github.com/fievelk/kwe/internal/model"
	"github.com/fievelk/kwe/internal/pipeline"
)

// BatchProcessor extracts keywords from many documents concurrently,
// memoizing results so duplicate list entries are extracted once
type BatchProcessor struct {
	extractor *pipeline.Extractor
	cfg       *model.Config
	results   cache.Cache // nil when caching is disabled
	ttl       time.Duration
}

// NewBatchProcessor creates a batch processor for the given pipeline
func NewBatchProcessor(extractor *pipeline.Extractor, cfg *model.Config) *BatchProcessor {
	var results cache.Cache
	ttl := time.Duration(cfg.Cache.TTLMinutes) * time.Minute
	if cfg.Cache.Enabled {
		results = cache.NewMemoryCache(ttl, 2*ttl)
	}
	return &BatchProcessor{
		extractor: extractor,
		cfg:       cfg,
		results:   results,
		ttl:       ttl,
	}
}

// ReadList reads document paths from a list file, one per line. Blank
// lines and lines starting with '#' are skipped.
func ReadList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open list file: %w", err)
	}
	defer f.Close()

	var paths []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		paths = append(paths, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read list file: %w", err)
	}
	return paths, nil
}

// Process extracts keywords from every path concurrently
func (b *BatchProcessor) Process(ctx context.Context, paths []string, format pipeline.Format) []Outcome {
	jobs := make([]Job, len(paths))
	for i, path := range paths {
		jobs[i] = Job{Path: path, Format: format}
	}

	pool := NewPool(b.cfg.Concurrency.Workers, b.extract)
	return pool.Process(ctx, jobs)
}

// extract runs one job, consulting the result cache first
func (b *BatchProcessor) extract(ctx context.Context, job Job) Outcome {
	if err := ctx.Err(); err != nil {
		return Outcome{Path: job.Path, Err: err}
	}

	key, ok := b.cacheKey(job.Path)
	if ok {
		if raw, hit := b.results.Get(key); hit {
			var result model.Result
			if err := json.Unmarshal(raw, &result); err == nil {
				return Outcome{Path: job.Path, Result: &result, Cached: true}
			}
		}
	}

	result, err := b.extractor.ExtractFile(job.Path, job.Format)
	if err != nil {
		return Outcome{Path: job.Path, Err: err}
	}

	if ok {
		if raw, err := json.Marshal(result); err == nil {
			_ = b.results.Set(key, raw, b.ttl)
		}
	}
	return Outcome{Path: job.Path, Result: result}
}

// cacheKey derives the cache key for a path; ok is false when caching is
// disabled or the file cannot be stat'ed (extraction will surface the real
// error).
func (b *BatchProcessor) cacheKey(path string) (string, bool) {
	if b.results == nil {
		return "", false
	}
	info, err := os.Stat(path)
	if err != nil {
		return "", false
	}
	return cache.Key(path, info.ModTime(), b.cfg.Extraction), true
}
