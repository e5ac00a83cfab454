package workers

import (
	"chat-room/contract"
	"chat-room/errors"
	"context"
	"fmt"
	"log/slog"
	"sync"
)

var _ contract.Worker = (*StoreWorker)(nil)

type storeJob struct {
	ctx  context.Context
	run  func(ctx context.Context) (any, error)
	done chan storeResult
}

type storeResult struct {
	value any
	err   error
}

// StorePool bounds the number of persistence calls running at the same time.
// Callers block on their own job until a worker replied.
type StorePool struct {
	log    *slog.Logger
	size   int
	jobs   chan storeJob
	closed chan struct{}
	once   sync.Once
}

func NewStorePool(log *slog.Logger, size, queueSize int) *StorePool {
	if size <= 0 {
		size = 1
	}
	if queueSize < 0 {
		queueSize = 0
	}
	return &StorePool{
		log:    log,
		size:   size,
		jobs:   make(chan storeJob, queueSize),
		closed: make(chan struct{}),
	}
}

// Workers returns one worker per slot, meant to be run by the Supervisor.
func (p *StorePool) Workers() []contract.Worker {
	workers := make([]contract.Worker, p.size)
	for i := range workers {
		workers[i] = &StoreWorker{id: i, pool: p}
	}
	return workers
}

// Submit enqueues fn and waits for its result.
func (p *StorePool) Submit(ctx context.Context, fn func(ctx context.Context) error) error {
	_, err := p.submit(ctx, func(ctx context.Context) (any, error) {
		return nil, fn(ctx)
	})
	return err
}

// submit hands the job's value back through its result channel only,
// a caller giving up on ctx never shares memory with the worker.
func (p *StorePool) submit(ctx context.Context, fn func(ctx context.Context) (any, error)) (any, error) {
	job := storeJob{ctx: ctx, run: fn, done: make(chan storeResult, 1)}

	select {
	case <-p.closed:
		return nil, errors.ErrPoolClosed
	default:
	}

	select {
	case p.jobs <- job:
	case <-p.closed:
		return nil, errors.ErrPoolClosed
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	select {
	case result := <-job.done:
		return result.value, result.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Close rejects new jobs and lets the workers return.
func (p *StorePool) Close() {
	p.once.Do(func() { close(p.closed) })
}

// Do runs fn on the pool and hands its value back to the caller's goroutine.
func Do[T any](ctx context.Context, p *StorePool, fn func(ctx context.Context) (T, error)) (T, error) {
	value, err := p.submit(ctx, func(ctx context.Context) (any, error) {
		return fn(ctx)
	})
	out, _ := value.(T)
	return out, err
}

// StoreWorker executes store jobs one at a time.
type StoreWorker struct {
	id   int
	pool *StorePool
}

func (w *StoreWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.pool.log.Debug("Stopping store worker", "worker", w.id)
			return ctx.Err()
		case <-w.pool.closed:
			w.pool.log.Debug("Store pool closed", "worker", w.id)
			return nil
		case job := <-w.pool.jobs:
			if err := w.execute(job); err != nil {
				return err
			}
		}
	}
}

// execute always answers the submitter, a panicking job is reported to it
// and the error is returned so the Supervisor restarts this worker.
func (w *StoreWorker) execute(job storeJob) (err error) {
	defer func() {
		if r := recover(); r != nil {
			w.pool.log.Error("Store job panicked", "worker", w.id, "panic", r)
			err = fmt.Errorf("%w: %v", errors.ErrWorkerPanic, r)
			job.done <- storeResult{err: err}
		}
	}()
	if job.ctx.Err() != nil {
		job.done <- storeResult{err: job.ctx.Err()}
		return nil
	}
	value, err := job.run(job.ctx)
	job.done <- storeResult{value: value, err: err}
	return nil
}
