package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestRunOnStartFiresImmediately(t *testing.T) {
	s := New()
	var runs atomic.Int32
	s.Register(Job{
		Name:       "immediate",
		Interval:   time.Hour,
		RunOnStart: true,
		Fn: func(ctx context.Context) error {
			runs.Add(1)
			return nil
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s.Start(ctx)

	deadline := time.After(2 * time.Second)
	for runs.Load() == 0 {
		select {
		case <-deadline:
			t.Fatal("job with RunOnStart never ran")
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestWithoutRunOnStartWaitsInterval(t *testing.T) {
	s := New()
	var runs atomic.Int32
	s.Register(Job{
		Name:     "deferred",
		Interval: time.Hour,
		Fn: func(ctx context.Context) error {
			runs.Add(1)
			return nil
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	s.Start(ctx)

	time.Sleep(100 * time.Millisecond)
	if got := runs.Load(); got != 0 {
		t.Fatalf("job ran %d times before its interval elapsed", got)
	}
}

func TestManualRunRecordsStatus(t *testing.T) {
	s := New()
	done := make(chan struct{})
	s.Register(Job{
		Name:     "failing",
		Interval: time.Hour,
		Fn: func(ctx context.Context) error {
			defer close(done)
			return errors.New("boom")
		},
	})

	if err := s.Run(context.Background(), "failing"); err != nil {
		t.Fatalf("Run: %v", err)
	}
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("job did not run")
	}

	// execute updates state after Fn returns, poll briefly.
	var res *TaskResult
	for i := 0; i < 100; i++ {
		var err error
		res, err = s.GetTask("failing")
		if err != nil {
			t.Fatalf("GetTask: %v", err)
		}
		if res.Status == StatusReject {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	if res.Status != StatusReject {
		t.Fatalf("status = %s, want %s", res.Status, StatusReject)
	}
	if res.Message != "boom" {
		t.Fatalf("message = %q, want %q", res.Message, "boom")
	}
}

func TestRunUnknownJob(t *testing.T) {
	s := New()
	if err := s.Run(context.Background(), "missing"); err == nil {
		t.Fatal("expected error for unknown job")
	}
}

func TestList(t *testing.T) {
	s := New()
	s.Register(Job{Name: "a", Description: "first", Interval: time.Hour})
	s.Register(Job{Name: "b", Description: "second", Interval: time.Hour})

	items := s.List()
	if len(items) != 2 {
		t.Fatalf("len(items) = %d, want 2", len(items))
	}
	for _, it := range items {
		if it.Status != StatusIdle {
			t.Errorf("job %s status = %s, want idle", it.Name, it.Status)
		}
	}
}
