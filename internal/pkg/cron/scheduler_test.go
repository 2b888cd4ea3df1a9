package cron

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler_RunOnce(t *testing.T) {
	s := NewScheduler()

	ran := 0
	s.Register(Job{
		Name:  "count_runs",
		Every: time.Hour,
		Run: func(ctx context.Context) error {
			ran++
			return nil
		},
	})

	wantErr := errors.New("boom")
	s.Register(Job{
		Name:  "always_fails",
		Every: time.Hour,
		Run: func(ctx context.Context) error {
			return wantErr
		},
	})

	require.NoError(t, s.RunOnce(context.Background(), "count_runs"))
	assert.Equal(t, 1, ran)

	assert.ErrorIs(t, s.RunOnce(context.Background(), "always_fails"), wantErr)

	err := s.RunOnce(context.Background(), "no_such_job")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no_such_job")
}

func TestScheduler_ExecuteAppliesTimeout(t *testing.T) {
	s := NewScheduler()

	done := make(chan error, 1)
	job := Job{
		Name:    "slow_job",
		Every:   time.Hour,
		Timeout: 10 * time.Millisecond,
		Run: func(ctx context.Context) error {
			<-ctx.Done()
			done <- ctx.Err()
			return ctx.Err()
		},
	}

	s.execute(job)

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	case <-time.After(time.Second):
		t.Fatal("job was not cancelled by its timeout")
	}
}

func TestScheduler_StopWaitsForLoops(t *testing.T) {
	s := NewScheduler()

	s.Register(Job{
		Name:  "blocks_until_cancelled",
		Every: time.Hour,
		Run: func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		},
	})

	s.Start()

	stopped := make(chan struct{})
	go func() {
		s.Stop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return")
	}
}
