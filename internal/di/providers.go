package di

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"release-notes-bot/internal/adapter/bigquery"
	"release-notes-bot/internal/adapter/googlechat"
	"release-notes-bot/internal/adapter/logging"
	"release-notes-bot/internal/adapter/markdown"
	"release-notes-bot/internal/adapter/querysource"
	"release-notes-bot/internal/adapter/sqlite"
	"release-notes-bot/internal/app"
	"release-notes-bot/internal/config"
	"release-notes-bot/internal/domain/ports"
	"release-notes-bot/internal/usecase"
)

func provideSlogLogger(cfg *config.Config) *slog.Logger {
	return logging.NewJSON(os.Stdout, cfg.LogLevel)
}

func provideReleaseStore(ctx context.Context, cfg *config.Config, logger ports.Logger) (ports.ReleaseStore, func(), error) {
	switch cfg.StoreDriver {
	case config.DriverBigQuery:
		store, err := bigquery.New(ctx, cfg.ProjectID, logger)
		if err != nil {
			return nil, nil, err
		}
		return store, func() { _ = store.Close() }, nil
	case config.DriverSQLite:
		store, err := sqlite.Open(ctx, cfg.SQLitePath, logger)
		if err != nil {
			return nil, nil, err
		}
		return store, func() { _ = store.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}

func provideQuerySource(cfg *config.Config) ports.QuerySource {
	return querysource.NewLoader(cfg.StoreDriver, cfg.QueriesDir)
}

func provideMarkupRenderer() ports.MarkupRenderer {
	return markdown.New()
}

func provideNotifier(cfg *config.Config, logger ports.Logger) ports.Notifier {
	return googlechat.NewWebhook(cfg.RequestTimeout, logger)
}

func provideDigestConfig(cfg *config.Config) usecase.ReleaseDigestConfig {
	return usecase.ReleaseDigestConfig{
		ProjectID: cfg.ProjectID,
		Static:    cfg.Static,
	}
}

func provideAppOptions(cfg *config.Config) app.Options {
	return app.Options{
		Schedule:   cfg.ScheduleCron,
		RunTimeout: cfg.RunTimeout,
	}
}
