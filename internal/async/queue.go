package async

import (
	"context"
	"sync"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"github.com/facturascan/pipeline/internal/ingest"
)

// Job is one registration request, usually produced by the directory watcher.
type Job struct {
	Path        string
	SubmittedAt time.Time
	TraceID     string
}

// NewJob stamps a registration request with a trace ID for log correlation.
func NewJob(path string) Job {
	return Job{Path: path, SubmittedAt: time.Now(), TraceID: uuid.NewString()}
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}

// RegisterQueue runs registrations on a fixed worker pool so a burst of
// dropped files cannot spawn unbounded pdfcpu work.
type RegisterQueue struct {
	registrar ingest.Registrar
	logger    *slog.Logger
	workers   int
	timeout   time.Duration

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type Option func(*RegisterQueue)

func WithWorkers(n int) Option {
	return func(q *RegisterQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}

func WithQueueSize(n int) Option {
	return func(q *RegisterQueue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}

func WithJobTimeout(d time.Duration) Option {
	return func(q *RegisterQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewRegisterQueue(registrar ingest.Registrar, logger *slog.Logger, opts ...Option) *RegisterQueue {
	if logger == nil {
		logger = slog.Default()
	}
	q := &RegisterQueue{
		registrar: registrar,
		logger:    logger,
		workers:   4,
		timeout:   2 * time.Minute,
		ch:        make(chan Job, 256),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *RegisterQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("worker started", "worker_id", workerID)

				for job := range q.ch {
					ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
					res, err := q.registrar.RegisterPath(ctx, job.Path)
					cancel()

					if err != nil {
						q.logger.Error("registration failed",
							"worker_id", workerID, "path", job.Path, "trace_id", job.TraceID, "error", err)
					} else {
						q.logger.Info("registered",
							"worker_id", workerID, "path", job.Path, "trace_id", job.TraceID,
							"documentos", len(res.DocumentIDs), "dedup", res.Deduplicated)
					}
				}

				q.logger.Info("worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

func (q *RegisterQueue) Enqueue(_ context.Context, job Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("cannot enqueue: queue is shutting down", "path", job.Path)
		return nil
	}
	select {
	case q.ch <- job:
		q.logger.Debug("queued for registration", "path", job.Path, "trace_id", job.TraceID)
	default:
		q.logger.Warn("queue full, applying backpressure", "path", job.Path)
		q.ch <- job
	}
	return nil
}

func (q *RegisterQueue) Shutdown(ctx context.Context) {
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
	case <-ctx.Done():
		q.logger.Warn("shutdown interrupted by context")
	case <-done:
		q.logger.Info("queue drained, shutdown complete")
	}
}
