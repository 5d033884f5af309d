package app

import (
	"context"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"invoicer/internal/gateway/invoiceapi"
	"invoicer/internal/pkg/config"
	"invoicer/internal/pkg/postgres"
	"invoicer/internal/pkg/schema"
	"invoicer/internal/repository/identity"
	"invoicer/internal/repository/shipmentfile"
	"invoicer/internal/service/aggregator"
	"invoicer/internal/service/dispatcher"
	"invoicer/internal/service/pipeline"
	"invoicer/internal/service/resolver"
	"invoicer/pkg/logger"
	"invoicer/pkg/querier"
)

func provideSchema(cfg *config.Config) (*schema.Schema, error) {
	return schema.Load(cfg.Pipeline.SchemaVersion)
}

func provideSource(s *schema.Schema, cfg *config.Config) *shipmentfile.Source {
	return shipmentfile.New(s, cfg.Pipeline.LazyQuotes)
}

func provideWriter(s *schema.Schema, cfg *config.Config) *shipmentfile.Writer {
	return shipmentfile.NewWriter(s, cfg.Pipeline.AppendStoreTag)
}

func provideStoreConfigs(cfg *config.Config) ([]config.RecordStore, error) {
	return config.LoadStores(cfg.Stores.File)
}

// provideStores поднимает пул на каждый стор в порядке приоритета.
// cleanup закрывает все пулы в конце прогона. Для прогона без резолва
// (уже обогащённая выгрузка) к сторам не подключаемся вовсе.
func provideStores(
	ctx context.Context,
	log logger.Logger,
	opts pipeline.Options,
	storeConfigs []config.RecordStore,
) ([]resolver.Store, func(), error) {
	if !opts.Stages.Resolve {
		return nil, func() {}, nil
	}

	pools := make([]*pgxpool.Pool, 0, len(storeConfigs))
	cleanup := func() {
		for _, pool := range pools {
			pool.Close()
		}
	}

	stores := make([]resolver.Store, 0, len(storeConfigs))
	for _, storeConfig := range storeConfigs {
		pool, err := postgres.NewConnPool(ctx, log, storeConfig.Name, storeConfig.DSN)
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		pools = append(pools, pool)

		repo := identity.New(querier.New(pool), storeConfig.Name, identity.Naming{
			UsersTable:     storeConfig.Naming.UsersTable,
			ShipmentsTable: storeConfig.Naming.ShipmentsTable,
			UserIDColumn:   storeConfig.Naming.UserIDColumn,
			FullNameColumn: storeConfig.Naming.FullNameColumn,
			EmailColumn:    storeConfig.Naming.EmailColumn,
			TrackingColumn: storeConfig.Naming.TrackingColumn,
		})
		stores = append(stores, repo)
	}

	return stores, cleanup, nil
}

func provideResolver(log logger.Logger, cfg *config.Config, stores []resolver.Store) (*resolver.Resolver, error) {
	return resolver.New(log, stores, cfg.Stores.OnUnavailable)
}

func provideLogoTable(storeConfigs []config.RecordStore) aggregator.LogoTable {
	logos := make(map[string]string, len(storeConfigs))
	for _, storeConfig := range storeConfigs {
		logos[storeConfig.Name] = storeConfig.Logo
	}
	return aggregator.NewLogoTable(logos, "")
}

func provideAggregator(logos aggregator.LogoTable) *aggregator.Aggregator {
	return aggregator.New(logos)
}

func provideGateway(cfg *config.Config) *invoiceapi.Gateway {
	return invoiceapi.New(http.DefaultClient, cfg.InvoiceAPI.URL, cfg.InvoiceAPI.RequestTimeout)
}

func provideDispatcher(log logger.Logger, cfg *config.Config, gateway *invoiceapi.Gateway) *dispatcher.Dispatcher {
	return dispatcher.New(log, gateway, cfg.Pipeline.OutputDir, cfg.Pipeline.DispatchWorkers)
}

func providePipeline(
	log logger.Logger,
	source *shipmentfile.Source,
	identityResolver *resolver.Resolver,
	writer *shipmentfile.Writer,
	invoiceAggregator *aggregator.Aggregator,
	invoiceDispatcher *dispatcher.Dispatcher,
	opts pipeline.Options,
) *pipeline.Pipeline {
	return pipeline.New(log, source, identityResolver, writer, invoiceAggregator, invoiceDispatcher, opts)
}
