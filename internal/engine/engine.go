// Package engine fans (flag, target) submission tasks out across a
// bounded worker pool, retries transport failures and collects the
// structured results.
package engine

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"bytemomo/remora/internal/domain"

	"github.com/sirupsen/logrus"
)

const defaultRetryDelay = 1 * time.Second

// task is the pairing of one flag with one target, consumed by exactly
// one worker.
type task struct {
	target domain.Target
	flag   domain.Flag
}

// Engine executes submission runs. Construct with New.
type Engine struct {
	Log    *logrus.Entry
	Poster domain.Poster

	// RetryDelay is the fixed wait between failed attempts of one task.
	RetryDelay time.Duration

	cfg domain.RunConfig
}

// New validates the configuration and builds an engine backed by the
// real HTTP poster. Fails fast when no targets are configured; nothing
// is contacted at construction time.
func New(log *logrus.Entry, cfg domain.RunConfig) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid run configuration: %w", err)
	}

	return &Engine{
		Log:        log,
		Poster:     NewHTTPPoster(cfg.VerifySSL),
		RetryDelay: defaultRetryDelay,
		cfg:        cfg,
	}, nil
}

// SubmitAll crosses flags with the configured targets and submits every
// pair. Results arrive in completion order; a single task's failure
// never aborts the run. An empty flag sequence returns immediately
// without contacting any target.
func (e *Engine) SubmitAll(ctx context.Context, flags []domain.Flag) []domain.SubmissionResult {
	if len(flags) == 0 {
		return nil
	}

	tasks := make([]task, 0, len(flags)*len(e.cfg.Targets))
	for _, f := range flags {
		for _, t := range e.cfg.Targets {
			tasks = append(tasks, task{target: t, flag: f})
		}
	}

	e.Log.WithFields(logrus.Fields{
		"flag_count":        len(flags),
		"target_count":      len(e.cfg.Targets),
		"total_submissions": len(tasks),
	}).Info("Starting submission run")

	queue := make(chan task)
	out := make(chan domain.SubmissionResult, len(tasks))

	var wg sync.WaitGroup
	workers := e.cfg.MaxWorkers
	if workers < 1 {
		workers = 1
	}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go e.worker(ctx, &wg, queue, out)
	}

	for _, t := range tasks {
		queue <- t
	}
	close(queue)
	wg.Wait()
	close(out)

	results := make([]domain.SubmissionResult, 0, len(tasks))
	for res := range out {
		results = append(results, res)
	}

	e.Log.WithFields(logrus.Fields{
		"success_rate":  fmt.Sprintf("%.2f%%", successRate(results)),
		"total_results": len(results),
	}).Info("Submission run finished")
	return results
}

// worker drains the task queue, one task (including its retry loop) at
// a time. A panic while executing a task is logged and the task's
// result is dropped rather than aborting the run.
func (e *Engine) worker(ctx context.Context, wg *sync.WaitGroup, queue <-chan task, out chan<- domain.SubmissionResult) {
	defer wg.Done()
	for t := range queue {
		func() {
			defer func() {
				if r := recover(); r != nil {
					e.Log.WithFields(logrus.Fields{
						"target": t.target.Addr(),
						"error":  fmt.Sprint(r),
					}).Error("Submission task failed unexpectedly")
				}
			}()
			out <- e.submitOne(ctx, t)
		}()
	}
}

// submitOne performs up to MaxRetries attempts for a single task.
// Transport errors are retried after a fixed delay; any HTTP response,
// whatever its status, ends the loop. Success is strictly status 200.
func (e *Engine) submitOne(ctx context.Context, t task) domain.SubmissionResult {
	result := domain.SubmissionResult{
		Target: t.target.Addr(),
		Flag:   domain.Redact(t.flag),
	}

	for attempt := 1; attempt <= e.cfg.MaxRetries; attempt++ {
		resp, err := e.Poster.Post(ctx, t.target, t.flag)
		if err != nil {
			result.Error = err.Error()
			result.Attempt = attempt
			if attempt < e.cfg.MaxRetries {
				time.Sleep(e.RetryDelay)
			}
			continue
		}

		result.StatusCode = resp.StatusCode
		result.Response = truncate(resp.Body, 100)
		result.Attempt = attempt
		result.Success = resp.StatusCode == http.StatusOK
		break
	}

	e.Log.WithFields(logrus.Fields{
		"target":      result.Target,
		"flag":        result.Flag,
		"success":     result.Success,
		"status_code": result.StatusCode,
		"attempt":     result.Attempt,
		"error":       result.Error,
	}).Info("Submission result")
	return result
}

func successRate(results []domain.SubmissionResult) float64 {
	if len(results) == 0 {
		return 0
	}
	succeeded := 0
	for _, r := range results {
		if r.Success {
			succeeded++
		}
	}
	return float64(succeeded) / float64(len(results)) * 100
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
