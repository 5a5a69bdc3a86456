// Package ticker drives the trigger engine once per minute.
package ticker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"azan/config"
	"azan/internal/delivery"
	"azan/internal/domain/lifecycle"
	"azan/internal/errors"
	"azan/internal/usecase"

	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

// TickerParams holds dependencies for the tick driver, injected by Fx.
type TickerParams struct {
	fx.In

	Lc        fx.Lifecycle
	Ctx       context.Context
	Cfg       *config.Config
	Logger    *slog.Logger
	TriggerUC usecase.TriggerUsecase
}

type tickerServer struct {
	ctx         context.Context
	logger      *slog.Logger
	triggerUC   usecase.TriggerUsecase
	cron        *cron.Cron
	spec        string
	enabled     bool
	tickTimeout time.Duration
	now         func() time.Time

	stopOnce sync.Once
	done     chan struct{}
}

// NewTicker creates the per-minute tick driver. The cron spec is evaluated
// in UTC; a run that is still going when the next one is due is skipped.
func NewTicker(params TickerParams) (delivery.Delivery, error) {
	logger := params.Logger.With(slog.String("component", "ticker"))
	cronLog := cronLogger{logger: logger}

	t := &tickerServer{
		ctx:         params.Ctx,
		logger:      logger,
		triggerUC:   params.TriggerUC,
		spec:        params.Cfg.Scheduler.Spec,
		enabled:     params.Cfg.Scheduler.Enabled,
		tickTimeout: params.Cfg.Scheduler.TickTimeout,
		now:         time.Now,
		done:        make(chan struct{}),
		cron: cron.New(
			cron.WithLocation(time.UTC),
			cron.WithLogger(cronLog),
			cron.WithChain(cron.Recover(cronLog), cron.SkipIfStillRunning(cronLog)),
		),
	}

	if _, err := t.cron.AddFunc(t.spec, t.run); err != nil {
		return nil, errors.Wrapf(err, "invalid scheduler spec %q", t.spec)
	}

	params.Lc.Append(fx.Hook{
		OnStop: t.stop,
	})

	return t, nil
}

// Serve starts the schedule and blocks until the ticker is stopped.
func (t *tickerServer) Serve(ctx context.Context) error {
	if !t.enabled {
		t.logger.Info("Scheduler disabled, no ticks will run")

		return nil
	}

	t.logger.Info("Starting ticker", slog.String("spec", t.spec))
	t.cron.Start()
	<-t.done

	return nil
}

func (t *tickerServer) run() {
	ctx := t.ctx
	if t.tickTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.tickTimeout)
		defer cancel()
	}

	result, err := t.triggerUC.Tick(ctx, t.now())
	if err != nil {
		t.logger.Warn("Tick aborted", slog.Any("error", err))

		return
	}

	t.logger.Debug("Tick completed",
		slog.String("tick_id", result.TickID),
		slog.String("minute", result.Minute.String()),
		slog.Int("events", len(result.Events)),
		slog.Bool("repeated", result.Repeated),
	)
}

// stop halts the schedule, waits for a running tick, then drains detached
// push deliveries.
func (t *tickerServer) stop(ctx context.Context) error {
	stopCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	t.logger.Info("Stopping ticker")

	var err error
	t.stopOnce.Do(func() {
		defer close(t.done)

		select {
		case <-t.cron.Stop().Done():
		case <-stopCtx.Done():
			err = errors.Wrap(stopCtx.Err(), "wait for running tick")

			return
		}

		err = t.triggerUC.Drain(stopCtx)
	})

	return err
}
