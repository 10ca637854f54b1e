package settlement

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type SchedulerSuite struct {
	suite.Suite
	scheduler *Scheduler
}

func TestScheduler(t *testing.T) {
	suite.Run(t, &SchedulerSuite{})
}

func (s *SchedulerSuite) SetupTest() {
	s.scheduler = New(NewWorkerPool(2))
}

func (s *SchedulerSuite) TearDownTest() {
	s.scheduler.Close()
}

func (s *SchedulerSuite) TestAfterRunsTask() {
	done := make(chan struct{})
	start := time.Now()

	_, err := s.scheduler.After(30*time.Millisecond, func() error {
		close(done)
		return nil
	}, nil)
	s.Require().NoError(err)

	select {
	case <-done:
		s.GreaterOrEqual(time.Since(start), 30*time.Millisecond)
	case <-time.After(time.Second):
		s.Fail("task did not run")
	}
	s.Eventually(func() bool { return s.scheduler.Len() == 0 }, time.Second, 5*time.Millisecond)
}

func (s *SchedulerSuite) TestStopPreventsTask() {
	var ran atomic.Bool

	p, err := s.scheduler.After(50*time.Millisecond, func() error {
		ran.Store(true)
		return nil
	}, nil)
	s.Require().NoError(err)

	s.True(p.Stop())
	s.False(p.Stop())
	time.Sleep(100 * time.Millisecond)
	s.False(ran.Load())
	s.Equal(0, s.scheduler.Len())
}

func (s *SchedulerSuite) TestStopAfterFire() {
	done := make(chan struct{})

	p, err := s.scheduler.After(0, func() error {
		close(done)
		return nil
	}, nil)
	s.Require().NoError(err)
	<-done

	s.False(p.Stop())
}

func (s *SchedulerSuite) TestCloseDropsPending() {
	var ran atomic.Bool

	_, err := s.scheduler.After(50*time.Millisecond, func() error {
		ran.Store(true)
		return nil
	}, nil)
	s.Require().NoError(err)
	s.Equal(1, s.scheduler.Len())

	s.scheduler.Close()
	time.Sleep(100 * time.Millisecond)

	s.False(ran.Load())
	s.Equal(0, s.scheduler.Len())
	_, err = s.scheduler.After(0, func() error { return nil }, nil)
	s.ErrorIs(err, ErrClosed)
}

func (s *SchedulerSuite) TestCloseReportsDropped() {
	dropped := make(chan error, 1)

	_, err := s.scheduler.After(time.Hour, func() error { return nil }, func(err error) {
		dropped <- err
	})
	s.Require().NoError(err)

	s.scheduler.Close()

	select {
	case err := <-dropped:
		s.ErrorIs(err, ErrClosed)
	case <-time.After(time.Second):
		s.Fail("drop was not reported")
	}
}

func (s *SchedulerSuite) TestStoppedIsNotDropped() {
	var dropped atomic.Bool

	p, err := s.scheduler.After(time.Hour, func() error { return nil }, func(error) {
		dropped.Store(true)
	})
	s.Require().NoError(err)
	s.True(p.Stop())

	s.scheduler.Close()
	s.False(dropped.Load())
}

type refusingPool struct {
	closed atomic.Bool
}

func (p *refusingPool) AddTask(context.Context, Task) error { return ErrPoolClosed }
func (p *refusingPool) Close()                              { p.closed.Store(true) }

func TestScheduler_PoolRefusesTask(t *testing.T) {
	pool := &refusingPool{}
	scheduler := New(pool)
	defer scheduler.Close()

	dropped := make(chan error, 1)
	var ran atomic.Bool
	_, err := scheduler.After(0, func() error {
		ran.Store(true)
		return nil
	}, func(err error) {
		dropped <- err
	})
	require.NoError(t, err)

	select {
	case err := <-dropped:
		assert.ErrorIs(t, err, ErrPoolClosed)
	case <-time.After(time.Second):
		t.Fatal("drop was not reported")
	}
	assert.False(t, ran.Load())

	scheduler.Close()
	assert.True(t, pool.closed.Load())
	select {
	case err := <-dropped:
		t.Fatalf("dropped twice: %v", err)
	default:
	}
}

func TestScheduler_Run(t *testing.T) {
	scheduler := New(NewWorkerPool(1))
	ctx, cancel := context.WithCancel(context.Background())

	errCh := make(chan error, 1)
	go func() { errCh <- scheduler.Run(ctx) }()
	cancel()

	select {
	case err := <-errCh:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return")
	}
	_, err := scheduler.After(0, func() error { return nil }, nil)
	assert.ErrorIs(t, err, ErrClosed)
}
