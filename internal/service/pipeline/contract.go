//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=pipeline_test
package pipeline

import (
	"context"

	"invoicer/internal/entities"
	"invoicer/internal/service/dispatcher"
	"invoicer/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Source interface {
	Load(path string) ([]entities.ShipmentRecord, error)
}

type Resolver interface {
	Resolve(ctx context.Context, trackingID string) (*entities.CustomerIdentity, error)
}

type EnrichedWriter interface {
	WriteEnriched(path string, records []entities.EnrichedRecord) error
}

type Aggregator interface {
	Build(records []entities.EnrichedRecord, mode entities.AggregationMode) ([]entities.Invoice, error)
}

type Dispatcher interface {
	DispatchAll(ctx context.Context, invoices []entities.Invoice) (*dispatcher.Report, error)
}
