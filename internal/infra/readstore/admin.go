package readstore

import (
	"context"

	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/procs"
	"hotel-booking/internal/usecase/queries"
)

type AdminViewQueries interface {
	AdminViewAllReservations(ctx context.Context, db procs.DBTX) ([]map[string]any, error)
	AdminViewAllMessages(ctx context.Context, db procs.DBTX) ([]map[string]any, error)
}

type AdminReadStore struct {
	queries AdminViewQueries
	db      procs.DBTX
}

func NewAdminReadStore(queries AdminViewQueries, db procs.DBTX) *AdminReadStore {
	return &AdminReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *AdminReadStore) Reservations(ctx context.Context) ([]queries.Row, error) {
	rows, err := r.queries.AdminViewAllReservations(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to view all reservations", err)
	}
	return normalizeRows(rows), nil
}

func (r *AdminReadStore) Messages(ctx context.Context) ([]queries.Row, error) {
	rows, err := r.queries.AdminViewAllMessages(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to view all messages", err)
	}
	return normalizeRows(rows), nil
}
