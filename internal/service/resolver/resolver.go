package resolver

import (
	"context"
	"errors"
	"fmt"

	"invoicer/internal/entities"
	"invoicer/pkg/logger"
)

// UnavailablePolicy определяет реакцию на недоступный стор: пропустить его
// и идти к следующему либо прервать резолв ошибкой.
type UnavailablePolicy string

const (
	SkipUnavailable UnavailablePolicy = "skip"
	FailUnavailable UnavailablePolicy = "fail"
)

func (p UnavailablePolicy) Valid() bool {
	return p == SkipUnavailable || p == FailUnavailable
}

type Resolver struct {
	log    handlerLogger
	stores []Store
	policy UnavailablePolicy
}

func New(log handlerLogger, stores []Store, policy UnavailablePolicy) (*Resolver, error) {
	if !policy.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPolicy, policy)
	}

	return &Resolver{
		log:    log,
		stores: stores,
		policy: policy,
	}, nil
}

// Resolve обходит сторы в заданном порядке и возвращает первый непустой
// результат, не трогая оставшиеся сторы. (nil, nil) означает, что личность
// не нашлась нигде — это валидный исход, а не ошибка.
func (r *Resolver) Resolve(ctx context.Context, trackingID string) (*entities.CustomerIdentity, error) {
	if trackingID == "" {
		return nil, ErrEmptyTrackingID
	}

	for _, store := range r.stores {
		identity, err := store.Lookup(ctx, trackingID)
		if err == nil {
			if identity.Empty() {
				continue
			}
			if identity.SourceTag == "" {
				identity.SourceTag = store.Tag()
			}
			return identity, nil
		}

		if errors.Is(err, ErrIdentityNotFound) {
			continue
		}

		if IsStoreUnavailable(err) && r.policy == SkipUnavailable {
			r.log.Warn("record store unavailable, falling through to next",
				logger.NewField("store", store.Tag()),
				logger.NewField("error", err),
			)
			continue
		}

		return nil, fmt.Errorf("resolve identity for %s: %w", trackingID, err)
	}

	return nil, nil
}
