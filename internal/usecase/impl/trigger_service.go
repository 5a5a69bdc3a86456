package impl

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"azan/config"
	"azan/internal/domain/clock"
	"azan/internal/domain/constants"
	"azan/internal/domain/entity"
	"azan/internal/domain/repository"
	"azan/internal/domain/schedule"
	"azan/internal/domain/service"
	"azan/internal/errors"
	"azan/internal/usecase"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	dispatcherComponent    = "trigger_dispatcher"
	defaultDeliveryTimeout = 2 * time.Minute
)

type triggerService struct {
	logger          *slog.Logger
	triggerRepo     repository.TriggerRepository
	broadcaster     service.Broadcaster
	notifier        usecase.NotificationUsecase
	reporter        service.ErrorReporter
	clock           *clock.Resolver
	deliveryTimeout time.Duration

	mu         sync.Mutex
	lastMinute string
	inflight   sync.WaitGroup
}

// NewTriggerService creates the trigger dispatcher
func NewTriggerService(
	cfg *config.Config,
	logger *slog.Logger,
	triggerRepo repository.TriggerRepository,
	broadcaster service.Broadcaster,
	notifier usecase.NotificationUsecase,
	reporter service.ErrorReporter,
	clockResolver *clock.Resolver,
) usecase.TriggerUsecase {
	deliveryTimeout := cfg.Notification.DeliveryTimeout
	if deliveryTimeout <= 0 {
		deliveryTimeout = defaultDeliveryTimeout
	}

	return &triggerService{
		logger:          logger,
		triggerRepo:     triggerRepo,
		broadcaster:     broadcaster,
		notifier:        notifier,
		reporter:        reporter,
		clock:           clockResolver,
		deliveryTimeout: deliveryTimeout,
	}
}

// tickCandidates is what the store returned for one minute.
type tickCandidates struct {
	definitions []*entity.TriggerDefinition
	overrides   []*entity.ScheduleOverride
	prayers     []*entity.TriggerDefinition
}

// Tick evaluates the minute of instant. A store failure aborts the tick
// before anything is emitted.
func (s *triggerService) Tick(ctx context.Context, instant time.Time) (*usecase.TickResult, error) {
	now := clock.Resolve(instant, s.clock.OffsetMinutes())
	result := &usecase.TickResult{TickID: uuid.NewString(), Minute: now}

	if !s.claimMinute(now) {
		s.logger.WarnContext(ctx, "Minute already evaluated, skipping tick",
			slog.String("tick_id", result.TickID),
			slog.String("minute", now.String()),
		)
		result.Repeated = true

		return result, nil
	}

	candidates, err := s.loadCandidates(ctx, now)
	if err != nil {
		s.reporter.Report(ctx, dispatcherComponent, "load_candidates", err,
			slog.String("tick_id", result.TickID),
			slog.String("minute", now.String()),
		)

		return nil, err
	}

	result.Events = s.resolveDue(ctx, now, instant, candidates)
	if len(result.Events) == 0 {
		s.logger.DebugContext(ctx, "No triggers due",
			slog.String("tick_id", result.TickID),
			slog.String("minute", now.String()),
		)

		return result, nil
	}

	s.logger.InfoContext(ctx, "Triggers due",
		slog.String("tick_id", result.TickID),
		slog.String("minute", now.String()),
		slog.Int("count", len(result.Events)),
	)

	// Push delivery is detached so a slow provider never holds up the next tick.
	s.dispatchNotifications(result.TickID, result.Events)
	s.broadcast(ctx, result.TickID, result.Events)

	return result, nil
}

// claimMinute guards against evaluating the same local minute twice.
func (s *triggerService) claimMinute(now clock.LocalMinute) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := now.String()
	if key == s.lastMinute {
		return false
	}
	s.lastMinute = key

	return true
}

func (s *triggerService) loadCandidates(ctx context.Context, now clock.LocalMinute) (*tickCandidates, error) {
	candidates := &tickCandidates{}
	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		defs, err := s.triggerRepo.FindActiveTriggerDefinitions(groupCtx)
		if err != nil {
			return errors.Wrap(err, "find active trigger definitions")
		}
		candidates.definitions = defs

		return nil
	})
	group.Go(func() error {
		overrides, err := s.triggerRepo.FindOverrides(groupCtx, now.Date, now.Time)
		if err != nil {
			return errors.Wrap(err, "find overrides")
		}
		candidates.overrides = overrides

		return nil
	})
	group.Go(func() error {
		prayers, err := s.triggerRepo.FindActivePrayerRecords(groupCtx, now.Date, now.Time)
		if err != nil {
			return errors.Wrap(err, "find prayer records")
		}
		candidates.prayers = prayers

		return nil
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return candidates, nil
}

// resolveDue runs every candidate through the schedule resolver and returns
// one event per definition, deduplicated before any sink sees them.
func (s *triggerService) resolveDue(ctx context.Context, now clock.LocalMinute, instant time.Time, c *tickCandidates) []*entity.TriggerEvent {
	due := make(map[entity.TriggerKey]*entity.TriggerEvent)

	consider := func(def *entity.TriggerDefinition, overrideTime string) {
		if def == nil {
			return
		}
		if _, seen := due[def.Key]; seen {
			return
		}
		if err := def.Validate(); err != nil {
			s.logger.WarnContext(ctx, "Skipping invalid trigger definition",
				slog.String("trigger", def.Key.String()),
				slog.Any("error", err),
			)

			return
		}

		decision := schedule.Evaluate(def, now, overrideTime)
		if !decision.Due {
			return
		}

		due[def.Key] = s.newEvent(ctx, def, decision.Time, instant)
	}

	overrideFor := make(map[int64]string, len(c.overrides))
	for _, override := range c.overrides {
		overrideFor[override.TriggerID] = override.Time
	}

	for _, def := range c.definitions {
		consider(def, overrideFor[def.ID])
	}
	// Overrides carry their own definition and may reach one the main query missed.
	for _, override := range c.overrides {
		consider(override.Trigger, override.Time)
	}
	for _, prayer := range c.prayers {
		consider(prayer, "")
	}

	events := make([]*entity.TriggerEvent, 0, len(due))
	for _, event := range due {
		events = append(events, event)
	}
	slices.SortFunc(events, func(a, b *entity.TriggerEvent) int {
		return cmp.Or(cmp.Compare(a.Source, b.Source), cmp.Compare(a.ID, b.ID))
	})

	return events
}

func (s *triggerService) newEvent(ctx context.Context, def *entity.TriggerDefinition, at string, instant time.Time) *entity.TriggerEvent {
	locator := def.SoundLocator()
	if locator == nil {
		s.logger.WarnContext(ctx, "Trigger has no sound asset",
			slog.String("trigger", def.Key.String()),
			slog.String("name", def.Name),
		)
	}

	return &entity.TriggerEvent{
		ID:           def.ID,
		Source:       def.Key.Source,
		Name:         def.Name,
		Time:         at,
		SoundLocator: locator,
		Category:     def.Category,
		TriggeredAt:  instant.UTC(),
	}
}

func (s *triggerService) broadcast(ctx context.Context, tickID string, events []*entity.TriggerEvent) {
	for _, event := range events {
		if err := s.broadcaster.Publish(ctx, constants.ChannelTrigger, event); err != nil {
			s.reporter.Report(ctx, dispatcherComponent, "broadcast", err,
				slog.String("tick_id", tickID),
				slog.Int64("trigger_id", event.ID),
			)
		}
	}
}

func (s *triggerService) dispatchNotifications(tickID string, events []*entity.TriggerEvent) {
	s.inflight.Add(1)

	go func() {
		defer s.inflight.Done()

		ctx, cancel := context.WithTimeout(context.Background(), s.deliveryTimeout)
		defer cancel()

		for _, event := range events {
			if _, err := s.notifier.DeliverTriggerEvent(ctx, event); err != nil {
				s.reporter.Report(ctx, dispatcherComponent, "deliver", err,
					slog.String("tick_id", tickID),
					slog.Int64("trigger_id", event.ID),
				)
			}
		}
	}()
}

// Drain waits for detached deliveries or until ctx is done.
func (s *triggerService) Drain(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "drain deliveries")
	}
}

// TodaySchedule resolves every trigger firing on the current local date.
// Custom-time definitions without an override for today are omitted.
func (s *triggerService) TodaySchedule(ctx context.Context) (*usecase.DaySchedule, error) {
	_, today := s.clock.Now()

	var (
		defs      []*entity.TriggerDefinition
		overrides []*entity.ScheduleOverride
		prayers   []*entity.TriggerDefinition
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() (err error) {
		defs, err = s.triggerRepo.FindActiveTriggerDefinitions(groupCtx)

		return errors.Wrap(err, "find active trigger definitions")
	})
	group.Go(func() (err error) {
		overrides, err = s.triggerRepo.FindOverridesForDate(groupCtx, today.Date)

		return errors.Wrap(err, "find overrides for date")
	})
	group.Go(func() (err error) {
		prayers, err = s.triggerRepo.FindPrayerRecordsForDate(groupCtx, today.Date)

		return errors.Wrap(err, "find prayer records for date")
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	overrideFor := make(map[int64]string, len(overrides))
	for _, override := range overrides {
		overrideFor[override.TriggerID] = override.Time
	}

	scheduled := make([]*entity.ScheduledTrigger, 0, len(defs)+len(prayers))
	add := func(def *entity.TriggerDefinition, overrideTime string) {
		if def.Validate() != nil {
			return
		}
		at, reason := schedule.EffectiveTime(def, today, overrideTime)
		if reason != "" {
			return
		}

		item := &entity.ScheduledTrigger{
			ID:           def.ID,
			Source:       def.Key.Source,
			Name:         def.Name,
			Category:     def.Category,
			Time:         at,
			SoundLocator: def.SoundLocator(),
		}
		if def.Voice != nil {
			item.VoiceName = def.Voice.Name
		}
		scheduled = append(scheduled, item)
	}

	for _, def := range defs {
		add(def, overrideFor[def.ID])
	}
	for _, prayer := range prayers {
		add(prayer, "")
	}

	slices.SortFunc(scheduled, func(a, b *entity.ScheduledTrigger) int {
		return cmp.Or(cmp.Compare(a.Time, b.Time), cmp.Compare(a.Name, b.Name), cmp.Compare(a.ID, b.ID))
	})

	return &usecase.DaySchedule{
		Date:     today.Date,
		Weekday:  today.Weekday,
		Timezone: s.clock.Label(),
		Triggers: scheduled,
	}, nil
}
