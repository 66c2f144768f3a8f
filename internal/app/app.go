package app

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"release-notes-bot/internal/domain/model"
	"release-notes-bot/internal/domain/ports"
	"release-notes-bot/internal/usecase"
)

// Options controls scheduling of digest runs.
type Options struct {
	Schedule   string
	RunTimeout time.Duration
}

// App manages the lifecycle of the release digest scheduler.
type App struct {
	cron       *cron.Cron
	usecase    *usecase.ReleaseDigest
	logger     ports.Logger
	schedule   string
	runTimeout time.Duration
}

// New constructs an App instance.
func New(digest *usecase.ReleaseDigest, logger ports.Logger, opts Options) *App {
	if opts.RunTimeout <= 0 {
		opts.RunTimeout = 5 * time.Minute
	}
	return &App{
		cron:       cron.New(cron.WithLocation(time.UTC)),
		usecase:    digest,
		logger:     logger,
		schedule:   opts.Schedule,
		runTimeout: opts.RunTimeout,
	}
}

// RunOnce executes a single digest run for trigger.
func (a *App) RunOnce(ctx context.Context, trigger model.Trigger) (*model.DeliveryResponse, error) {
	return a.usecase.Run(ctx, trigger)
}

// Run executes the use case once immediately and then according to the cron schedule.
func (a *App) Run(ctx context.Context) error {
	if err := a.scheduleJob(); err != nil {
		return err
	}

	a.logger.Info(ctx, "running first digest immediately")
	a.runScheduled(ctx)

	a.logger.Info(ctx, "starting scheduler", "cron", a.schedule)
	a.cron.Start()

	<-ctx.Done()
	stopCtx := a.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-time.After(5 * time.Second):
	}
	a.logger.Info(context.Background(), "scheduler stopped")
	return nil
}

func (a *App) scheduleJob() error {
	_, err := a.cron.AddFunc(a.schedule, func() {
		a.runScheduled(context.Background())
	})
	return err
}

func (a *App) runScheduled(parent context.Context) {
	ctx, cancel := context.WithTimeout(parent, a.runTimeout)
	defer cancel()

	resp, err := a.usecase.Run(ctx, model.Trigger{})
	if err != nil {
		a.logger.Error(ctx, "digest run failed", "error", err)
		return
	}
	if resp != nil {
		a.logger.Info(ctx, "digest delivered", "status", resp.StatusCode)
	}
}
