package scanrunner

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"akwana/internal/domain"
	"akwana/internal/ports"
)

// ErrQueueFull is returned by Enqueue when every worker is busy and the
// queue is at capacity. Jobs are rejected rather than blocking the caller.
var ErrQueueFull = fmt.Errorf("%w: scan queue full", domain.ErrCapability)

// ErrStopped is returned by Enqueue after the runner's context is done.
var ErrStopped = fmt.Errorf("%w: scan runner stopped", domain.ErrCapability)

const DefaultTimeout = 10 * time.Second

// Outcome is the result of one classification job.
type Outcome struct {
	Match domain.MatchResult
	Err   error
}

// Job is one classification request. Deliver is called exactly once from a
// worker goroutine, including when the job was cancelled.
type Job struct {
	ID        string
	SessionID string
	Input     domain.Input
	Deliver   func(Outcome)
}

type queued struct {
	job    Job
	ctx    context.Context
	cancel context.CancelFunc
}

type Options struct {
	Workers   int
	QueueSize int
	Timeout   time.Duration
}

// Runner executes classification jobs on a fixed pool of workers.
type Runner struct {
	classifier ports.Classifier
	opts       Options
	logger     *zap.Logger

	mu      sync.RWMutex
	jobs    chan queued
	base    context.Context
	stopped bool
	wg      sync.WaitGroup
}

func New(classifier ports.Classifier, opts Options, logger *zap.Logger) *Runner {
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.QueueSize < 1 {
		opts.QueueSize = opts.Workers * 4
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		classifier: classifier,
		opts:       opts,
		logger:     logger.Named("scanrunner"),
		jobs:       make(chan queued, opts.QueueSize),
	}
}

func (r *Runner) Timeout() time.Duration { return r.opts.Timeout }

// Start launches the workers. They exit once ctx is done and the queue has
// drained; queued jobs still get an outcome carrying the context error.
func (r *Runner) Start(ctx context.Context) {
	r.mu.Lock()
	r.base = ctx
	r.mu.Unlock()

	for i := 0; i < r.opts.Workers; i++ {
		r.wg.Add(1)
		go func(idx int) {
			defer r.wg.Done()
			for q := range r.jobs {
				out := r.process(q.ctx, q.job.Input)
				q.cancel()
				if out.Err != nil {
					r.logger.Debug("job failed", zap.Int("worker", idx), zap.String("job_id", q.job.ID), zap.Error(out.Err))
				}
				q.job.Deliver(out)
			}
		}(i)
	}

	go func() {
		<-ctx.Done()
		r.mu.Lock()
		r.stopped = true
		close(r.jobs)
		r.mu.Unlock()
	}()
}

// Wait blocks until every worker has exited.
func (r *Runner) Wait() { r.wg.Wait() }

// Enqueue hands job to the pool without blocking. The returned cancel func
// cancels the job's context; the job is still delivered.
func (r *Runner) Enqueue(job Job) (context.CancelFunc, error) {
	if job.Deliver == nil {
		return nil, fmt.Errorf("%w: job without deliver func", domain.ErrPrecondition)
	}
	if job.ID == "" {
		job.ID = uuid.NewString()
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.stopped || r.base == nil {
		return nil, ErrStopped
	}
	ctx, cancel := context.WithCancel(r.base)
	select {
	case r.jobs <- queued{job: job, ctx: ctx, cancel: cancel}:
		return cancel, nil
	default:
		cancel()
		return nil, ErrQueueFull
	}
}

// ProcessInline runs one classification synchronously with the same deadline
// the workers apply.
func (r *Runner) ProcessInline(ctx context.Context, in domain.Input) (domain.MatchResult, error) {
	out := r.process(ctx, in)
	return out.Match, out.Err
}

// process applies the deadline around the classifier. If the classifier
// ignores its context the result is abandoned once the deadline passes.
func (r *Runner) process(ctx context.Context, in domain.Input) Outcome {
	ctx, cancel := context.WithTimeout(ctx, r.opts.Timeout)
	defer cancel()

	done := make(chan Outcome, 1)
	go func() {
		m, err := r.classifier.Match(ctx, in)
		done <- Outcome{Match: m, Err: err}
	}()

	select {
	case out := <-done:
		if out.Err != nil && errors.Is(out.Err, context.DeadlineExceeded) && !errors.Is(out.Err, domain.ErrTimeout) {
			out.Err = fmt.Errorf("classification: %w", domain.ErrTimeout)
		}
		return out
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return Outcome{Err: fmt.Errorf("classification exceeded %s: %w", r.opts.Timeout, domain.ErrTimeout)}
		}
		return Outcome{Err: fmt.Errorf("classification cancelled: %w", ctx.Err())}
	}
}
