// Package async runs card scans on a bounded worker pool so the ingest
// watcher and the gRPC surface never block on OCR.
package async

import (
	"context"
	"sync"
	"time"

	"log/slog"

	"github.com/cardkeep/cardkeep/internal/common"
	"github.com/cardkeep/cardkeep/internal/pipeline"
)

// Job is the smallest useful unit: one card image to scan.
type Job struct {
	SourcePath  string
	Force       bool // enqueue even if deduplicated
	SubmittedAt time.Time
	TraceID     string
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}

type ScanQueue struct {
	pipe    *pipeline.Pipeline
	logger  *slog.Logger
	workers int
	timeout time.Duration

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type Option func(*ScanQueue)

func WithWorkers(n int) Option {
	return func(q *ScanQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}
func WithQueueSize(n int) Option {
	return func(q *ScanQueue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}
func WithProcessTimeout(d time.Duration) Option {
	return func(q *ScanQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewScanQueue(pipe *pipeline.Pipeline, logger *slog.Logger, opts ...Option) *ScanQueue {
	q := &ScanQueue{
		pipe:    pipe,
		logger:  logger,
		workers: 4,
		timeout: 2 * time.Minute,
		ch:      make(chan Job, 256),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *ScanQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("worker started", "worker_id", workerID)

				for job := range q.ch {
					ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
					if job.TraceID != "" {
						ctx = common.WithRequestID(ctx, job.TraceID)
					}
					_, err := q.pipe.Run(ctx, job.SourcePath)
					cancel()

					if err != nil {
						q.logger.Error("scan failed", "worker_id", workerID, "source_path", job.SourcePath, "error", err)
					} else {
						q.logger.Info("scanned card successfully", "worker_id", workerID, "source_path", job.SourcePath)
					}
				}

				q.logger.Info("worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

func (q *ScanQueue) Enqueue(_ context.Context, job Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("cannot enqueue: queue is shutting down", "source_path", job.SourcePath)
		return nil
	}
	select {
	case q.ch <- job:
		q.logger.Info("queued card for scanning", "source_path", job.SourcePath, "force", job.Force)
	default:
		q.logger.Warn("queue full, applying backpressure", "source_path", job.SourcePath)
		q.ch <- job
	}
	return nil
}

func (q *ScanQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-done:
		q.logger.Info("scan queue drained")
	case <-ctx.Done():
		q.logger.Warn("scan queue shutdown timed out", "error", ctx.Err())
	}
}
