//go:build wireinject

package di

import (
	"context"

	"github.com/google/wire"

	"release-notes-bot/internal/adapter/logging"
	"release-notes-bot/internal/app"
	"release-notes-bot/internal/config"
	"release-notes-bot/internal/domain/ports"
	"release-notes-bot/internal/usecase"
)

// InitializeApp wires the application components together.
func InitializeApp(ctx context.Context) (*app.App, func(), error) {
	wire.Build(
		config.Load,
		provideSlogLogger,
		logging.New,
		wire.Bind(new(ports.Logger), new(*logging.SLogger)),
		provideReleaseStore,
		provideQuerySource,
		provideMarkupRenderer,
		usecase.NewCardBuilder,
		provideNotifier,
		provideDigestConfig,
		usecase.NewReleaseDigest,
		provideAppOptions,
		app.New,
	)
	return nil, nil, nil
}
