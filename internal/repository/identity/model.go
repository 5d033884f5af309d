package identity

import (
	"context"

	"github.com/jackc/pgx/v5"
)

type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

type IdentityDB struct {
	FullName *string
	Email    *string
}

// Naming имена таблиц и колонок стора. Легаси-сторы несут схему в духе
// USER/SHIPMENT, новые — users/shipments; оверрайды задаются в stores.yaml.
type Naming struct {
	UsersTable     string
	ShipmentsTable string
	UserIDColumn   string
	FullNameColumn string
	EmailColumn    string
	TrackingColumn string
}

func DefaultNaming() Naming {
	return Naming{
		UsersTable:     "users",
		ShipmentsTable: "shipments",
		UserIDColumn:   "user_id",
		FullNameColumn: "full_name",
		EmailColumn:    "email",
		TrackingColumn: "tracking_number",
	}
}

func (n Naming) withDefaults() Naming {
	def := DefaultNaming()
	if n.UsersTable == "" {
		n.UsersTable = def.UsersTable
	}
	if n.ShipmentsTable == "" {
		n.ShipmentsTable = def.ShipmentsTable
	}
	if n.UserIDColumn == "" {
		n.UserIDColumn = def.UserIDColumn
	}
	if n.FullNameColumn == "" {
		n.FullNameColumn = def.FullNameColumn
	}
	if n.EmailColumn == "" {
		n.EmailColumn = def.EmailColumn
	}
	if n.TrackingColumn == "" {
		n.TrackingColumn = def.TrackingColumn
	}
	return n
}
