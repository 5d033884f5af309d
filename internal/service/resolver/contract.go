//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=resolver_test
package resolver

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

// Store один внешний стор с читающим лукапом личности по трекинг-номеру.
// Lookup возвращает ErrIdentityNotFound при отсутствии совпадения и
// *StoreUnavailableError при отказе соединения или запроса.
type Store interface {
	Lookup(ctx context.Context, trackingID string) (*entities.CustomerIdentity, error)
	Tag() string
}
