//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/google/wire"
	"invoicer/internal/pkg/config"
	"invoicer/internal/service/pipeline"
	"invoicer/pkg/logger"
)

// InitializeApplication собирает пайплайн для одного прогона. cleanup
// закрывает пулы сторов.
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	cfg *config.Config,
	opts pipeline.Options,
) (*Application, func(), error) {
	wire.Build(
		provideSchema,
		provideSource,
		provideWriter,
		provideStoreConfigs,
		provideStores,
		provideResolver,
		provideLogoTable,
		provideAggregator,
		provideGateway,
		provideDispatcher,
		providePipeline,

		wire.Struct(new(Application), "*"),
	)
	return &Application{}, nil, nil
}
