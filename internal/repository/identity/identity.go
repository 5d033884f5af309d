package identity

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"invoicer/internal/entities"
	"invoicer/internal/service/resolver"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repository читающий лукап личности в одном сторе. Трекинг-номер уходит
// в запрос только связанным параметром, никакой интерполяции.
type Repository struct {
	querier Querier
	tag     string
	naming  Naming
}

func New(querier Querier, tag string, naming Naming) *Repository {
	return &Repository{
		querier: querier,
		tag:     tag,
		naming:  naming.withDefaults(),
	}
}

func (r *Repository) Tag() string {
	return r.tag
}

func (r *Repository) Lookup(ctx context.Context, trackingID string) (*entities.CustomerIdentity, error) {
	n := r.naming

	sub := sq.Select(n.UserIDColumn).
		From(n.ShipmentsTable).
		Where(sq.Eq{n.TrackingColumn: trackingID})

	subQuery, subArgs, err := sub.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected identity repository lookup error: %w", err)
	}

	query, args, err := qb.
		Select(n.FullNameColumn, n.EmailColumn).
		From(n.UsersTable).
		Where(n.UserIDColumn+" = ("+subQuery+")", subArgs...).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected identity repository lookup error: %w", err)
	}

	var identityModel IdentityDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&identityModel.FullName,
			&identityModel.Email,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, resolver.ErrIdentityNotFound
		}

		return nil, &resolver.StoreUnavailableError{
			Store: r.tag,
			Err:   err,
		}
	}

	identity := ToDomain(&identityModel, r.tag)
	if identity.Empty() {
		return nil, resolver.ErrIdentityNotFound
	}

	return identity, nil
}
