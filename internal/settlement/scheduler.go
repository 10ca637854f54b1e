// Package settlement runs deferred payment settlements. A settlement is
// scheduled with a fixed delay and can be stopped until it fires. A
// settlement that never gets to run is handed to its drop callback.
package settlement

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
)

var ErrClosed = errors.New("scheduler closed")

type Scheduler struct {
	pool WorkerPoolI

	mu      sync.Mutex
	nextID  uint64
	pending map[uint64]*Pending
	// queued holds settlements handed to the pool that have not started yet.
	queued map[uint64]*Pending
	closed bool
}

type Pending struct {
	id    uint64
	timer *time.Timer
	drop  func(error)
	s     *Scheduler
}

func New(pool WorkerPoolI) *Scheduler {
	return &Scheduler{
		pool:    pool,
		pending: make(map[uint64]*Pending),
		queued:  make(map[uint64]*Pending),
	}
}

// After runs task on the worker pool once delay has elapsed. If the task
// can no longer run, because the scheduler closed or the pool refused it,
// drop is called with the reason instead. drop may be nil.
func (s *Scheduler) After(delay time.Duration, task Task, drop func(error)) (*Pending, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrClosed
	}
	s.nextID++
	p := &Pending{id: s.nextID, drop: drop, s: s}
	s.pending[p.id] = p
	p.timer = time.AfterFunc(delay, func() { s.fire(p, task) })
	return p, nil
}

func (s *Scheduler) fire(p *Pending, task Task) {
	s.mu.Lock()
	_, live := s.pending[p.id]
	delete(s.pending, p.id)
	if live {
		s.queued[p.id] = p
	}
	s.mu.Unlock()

	if !live {
		return
	}
	err := s.pool.AddTask(context.Background(), func() error {
		if !s.take(p.id) {
			return nil
		}
		return task()
	})
	if err != nil && s.take(p.id) {
		zap.L().Error("failed to queue settlement", zap.Error(err))
		p.dropped(err)
	}
}

// take reports whether the queued settlement was still owned by the
// scheduler and releases it.
func (s *Scheduler) take(id uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.queued[id]
	delete(s.queued, id)
	return ok
}

func (p *Pending) dropped(err error) {
	if p.drop != nil {
		p.drop(err)
	}
}

// Stop reports whether the task was prevented from running.
func (p *Pending) Stop() bool {
	if p == nil || p.s == nil {
		return false
	}
	p.s.mu.Lock()
	defer p.s.mu.Unlock()

	if _, queued := p.s.queued[p.id]; queued {
		delete(p.s.queued, p.id)
		return true
	}
	if _, live := p.s.pending[p.id]; !live {
		return false
	}
	delete(p.s.pending, p.id)
	p.timer.Stop()
	return true
}

func (s *Scheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Run blocks until ctx is done and then closes the scheduler.
func (s *Scheduler) Run(ctx context.Context) error {
	zap.L().Info("settlement scheduler started")
	<-ctx.Done()
	s.Close()
	zap.L().Info("settlement scheduler stopped")
	return nil
}

// Close stops the worker pool after its running settlements. Every
// settlement that did not run is dropped with ErrClosed.
func (s *Scheduler) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	var dropped []*Pending
	for id, p := range s.pending {
		p.timer.Stop()
		delete(s.pending, id)
		dropped = append(dropped, p)
	}
	s.mu.Unlock()

	s.pool.Close()

	s.mu.Lock()
	for id, p := range s.queued {
		delete(s.queued, id)
		dropped = append(dropped, p)
	}
	s.mu.Unlock()

	for _, p := range dropped {
		p.dropped(ErrClosed)
	}
}
