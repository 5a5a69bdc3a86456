package ticker

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"azan/config"
	"azan/internal/domain/clock"
	mockUsecase "azan/internal/mocks/usecase"
	"azan/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTestTicker(t *testing.T, enabled bool, spec string) (*tickerServer, *fxtest.Lifecycle, *mockUsecase.MockTriggerUsecase, error) {
	t.Helper()

	cfg := &config.Config{}
	cfg.Scheduler.Enabled = enabled
	cfg.Scheduler.Spec = spec
	cfg.Scheduler.TickTimeout = time.Second

	lc := fxtest.NewLifecycle(t)
	triggerUC := mockUsecase.NewMockTriggerUsecase(t)

	d, err := NewTicker(TickerParams{
		Lc:        lc,
		Ctx:       context.Background(),
		Cfg:       cfg,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		TriggerUC: triggerUC,
	})
	if err != nil {
		return nil, lc, triggerUC, err
	}

	return d.(*tickerServer), lc, triggerUC, nil
}

func TestTicker_RunTicksAtCurrentInstant(t *testing.T) {
	ticker, _, triggerUC, err := newTestTicker(t, true, "* * * * *")
	require.NoError(t, err)

	instant := time.Date(2024, 3, 15, 7, 30, 0, 0, time.UTC)
	ticker.now = func() time.Time { return instant }

	triggerUC.EXPECT().Tick(mock.Anything, instant).
		RunAndReturn(func(ctx context.Context, _ time.Time) (*usecase.TickResult, error) {
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)

			return &usecase.TickResult{TickID: "t1", Minute: clock.Resolve(instant, 330)}, nil
		}).Once()

	ticker.run()
}

func TestTicker_RunSurvivesTickError(t *testing.T) {
	ticker, _, triggerUC, err := newTestTicker(t, true, "* * * * *")
	require.NoError(t, err)

	triggerUC.EXPECT().Tick(mock.Anything, mock.Anything).Return(nil, errors.New("store down")).Once()

	assert.NotPanics(t, ticker.run)
}

func TestTicker_InvalidSpec(t *testing.T) {
	_, _, _, err := newTestTicker(t, true, "every minute")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid scheduler spec")
}

func TestTicker_DisabledServeReturns(t *testing.T) {
	ticker, _, _, err := newTestTicker(t, false, "* * * * *")
	require.NoError(t, err)

	assert.NoError(t, ticker.Serve(context.Background()))
}

func TestTicker_StopDrainsDeliveries(t *testing.T) {
	ticker, lc, triggerUC, err := newTestTicker(t, true, "0 0 1 1 *")
	require.NoError(t, err)

	triggerUC.EXPECT().Drain(mock.Anything).Return(nil).Once()

	served := make(chan error, 1)
	go func() { served <- ticker.Serve(context.Background()) }()

	lc.RequireStart()
	lc.RequireStop()

	select {
	case err := <-served:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Serve did not return after stop")
	}
}

func TestTicker_StopReportsDrainTimeout(t *testing.T) {
	ticker, _, triggerUC, err := newTestTicker(t, true, "0 0 1 1 *")
	require.NoError(t, err)

	triggerUC.EXPECT().Drain(mock.Anything).Return(context.DeadlineExceeded).Once()

	assert.ErrorIs(t, ticker.stop(context.Background()), context.DeadlineExceeded)
	// a second stop is a no-op
	assert.NoError(t, ticker.stop(context.Background()))
}
