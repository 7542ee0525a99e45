package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
)

func TestNewPool_WorkerFloor(t *testing.T) {
	run := func(ctx context.Context, job Job) Outcome { return Outcome{Path: job.Path} }

	if p := NewPool(0, run); p.workers != 1 {
		t.Errorf("Expected 1 worker for 0 input, got %d", p.workers)
	}
	if p := NewPool(-3, run); p.workers != 1 {
		t.Errorf("Expected 1 worker for negative input, got %d", p.workers)
	}
	if p := NewPool(8, run); p.workers != 8 {
		t.Errorf("Expected 8 workers, got %d", p.workers)
	}
}

func TestPool_RunsEveryJob(t *testing.T) {
	var executed int32
	run := func(ctx context.Context, job Job) Outcome {
		atomic.AddInt32(&executed, 1)
		return Outcome{Path: job.Path}
	}

	jobs := make([]Job, 12)
	for i := range jobs {
		jobs[i] = Job{Path: "doc"}
	}

	outcomes := NewPool(3, run).Process(context.Background(), jobs)

	if len(outcomes) != len(jobs) {
		t.Errorf("Expected %d outcomes, got %d", len(jobs), len(outcomes))
	}
	if got := atomic.LoadInt32(&executed); got != int32(len(jobs)) {
		t.Errorf("Expected %d executions, got %d", len(jobs), got)
	}
}

func TestPool_PropagatesErrors(t *testing.T) {
	wantErr := errors.New("boom")
	run := func(ctx context.Context, job Job) Outcome {
		if job.Path == "bad" {
			return Outcome{Path: job.Path, Err: wantErr}
		}
		return Outcome{Path: job.Path}
	}

	jobs := []Job{{Path: "good"}, {Path: "bad"}, {Path: "good"}}
	outcomes := NewPool(2, run).Process(context.Background(), jobs)

	failures := 0
	for _, outcome := range outcomes {
		if outcome.Err != nil {
			failures++
			if !errors.Is(outcome.Err, wantErr) {
				t.Errorf("Expected wrapped job error, got %v", outcome.Err)
			}
		}
	}
	if failures != 1 {
		t.Errorf("Expected exactly 1 failure, got %d", failures)
	}
}

func TestPool_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	run := func(ctx context.Context, job Job) Outcome {
		if err := ctx.Err(); err != nil {
			return Outcome{Path: job.Path, Err: err}
		}
		return Outcome{Path: job.Path}
	}

	jobs := []Job{{Path: "a"}, {Path: "b"}, {Path: "c"}}
	outcomes := NewPool(2, run).Process(ctx, jobs)

	if len(outcomes) != len(jobs) {
		t.Fatalf("Expected an outcome per job even when cancelled, got %d of %d",
			len(outcomes), len(jobs))
	}
	for _, outcome := range outcomes {
		if outcome.Err == nil {
			t.Errorf("Expected context error for %q after cancellation", outcome.Path)
		}
	}
}
