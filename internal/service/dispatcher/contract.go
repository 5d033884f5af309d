//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=dispatcher_test
package dispatcher

import (
	"context"

	"invoicer/internal/entities"
	"invoicer/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// Renderer внешний сервис, превращающий счёт в PDF.
type Renderer interface {
	Render(ctx context.Context, invoice entities.Invoice) ([]byte, error)
}
