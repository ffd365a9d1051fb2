package app

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopfront/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeService struct {
	name     string
	startErr error
	block    bool
	stopped  atomic.Bool
}

func (s *fakeService) Name() string { return s.name }

func (s *fakeService) Start(ctx context.Context) error {
	if s.block {
		<-ctx.Done()
		return nil
	}
	return s.startErr
}

func (s *fakeService) Stop(ctx context.Context) error {
	s.stopped.Store(true)
	return nil
}

func TestRunnerStopsAllServicesOnFailure(t *testing.T) {
	failing := &fakeService{name: "http", startErr: errors.New("bind: address already in use")}
	blocking := &fakeService{name: "worker", block: true}
	runner := NewRunner(failing, blocking)
	var cleaned atomic.Bool
	runner.OnStop(func() { cleaned.Store(true) })

	err := runner.Run(context.Background(), time.Second, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "address already in use")
	assert.True(t, failing.stopped.Load())
	assert.True(t, blocking.stopped.Load())
	assert.True(t, cleaned.Load())
}

func TestRunnerCancelledContextIsCleanExit(t *testing.T) {
	svc := &fakeService{name: "http", block: true}
	runner := NewRunner(svc)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := runner.Run(ctx, time.Second, nil)

	assert.NoError(t, err)
	assert.True(t, svc.stopped.Load())
}

func TestRunnerWithoutServices(t *testing.T) {
	assert.Error(t, NewRunner().Run(context.Background(), time.Second, nil))
}

func TestBuildRunnerValidatesInput(t *testing.T) {
	_, err := BuildRunner(nil, ModeAll)
	assert.Error(t, err)

	_, err = BuildRunner(&config.Config{}, "batch")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown run mode")
}

func TestNormalizeOptionsDefaults(t *testing.T) {
	opts := normalizeOptions(Options{})
	assert.Equal(t, ModeAll, opts.Mode)
	assert.Equal(t, 10*time.Second, opts.ShutdownTimeout)
	assert.NotNil(t, opts.Logger)
}
