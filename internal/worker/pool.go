// Package worker parallelizes extraction across documents. Each document
// still runs the single-threaded pipeline; the pool only fans out over
// inputs.
package worker

import (
	"context"
	"sync"

	"github.com/fievelk/kwe/internal/model"
	"github.com/fievelk/kwe/internal/pipeline"
)

// Job names one document to extract
type Job struct {
	Path   string
	Format pipeline.Format
}

// Outcome is the result of one extraction job
type Outcome struct {
	Path   string
	Result *model.Result
	Err    error
	Cached bool
}

// Pool runs extraction jobs on a fixed number of worker goroutines
type Pool struct {
	workers int
	run     func(ctx context.Context, job Job) Outcome
}

// NewPool creates a pool. run executes a single job; it must be safe to
// call from multiple goroutines.
func NewPool(workers int, run func(ctx context.Context, job Job) Outcome) *Pool {
	if workers <= 0 {
		workers = 1
	}
	return &Pool{workers: workers, run: run}
}

// Process runs all jobs and returns one outcome per job, in completion
// order. A cancelled context stops feeding new jobs; outcomes for jobs
// never started are reported with the context error.
func (p *Pool) Process(ctx context.Context, jobs []Job) []Outcome {
	jobQueue := make(chan Job)
	outcomes := make(chan Outcome, len(jobs))

	var wg sync.WaitGroup
	for i := 0; i < p.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobQueue {
				outcomes <- p.run(ctx, job)
			}
		}()
	}

	for i := 0; i < len(jobs); {
		select {
		case <-ctx.Done():
			for _, job := range jobs[i:] {
				outcomes <- Outcome{Path: job.Path, Err: ctx.Err()}
			}
			i = len(jobs)
		case jobQueue <- jobs[i]:
			i++
		}
	}
	close(jobQueue)

	wg.Wait()
	close(outcomes)

	collected := make([]Outcome, 0, len(jobs))
	for outcome := range outcomes {
		collected = append(collected, outcome)
	}
	return collected
}
