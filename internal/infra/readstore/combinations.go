package readstore

import (
	"context"
	"encoding/json"

	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/procs"
	"hotel-booking/internal/pkg/pgconv"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type CombinationViewQueries interface {
	GetCombinationDetails(ctx context.Context, db procs.DBTX, id uuid.UUID) (procs.GetCombinationDetailsRow, error)
	ListCombinations(ctx context.Context, db procs.DBTX) ([]procs.CombinationRow, error)
	GetCombinationBookingDetails(ctx context.Context, db procs.DBTX, id uuid.UUID) ([]map[string]any, error)
}

type CombinationReadStore struct {
	queries CombinationViewQueries
	db      procs.DBTX
}

func NewCombinationReadStore(queries CombinationViewQueries, db procs.DBTX) *CombinationReadStore {
	return &CombinationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CombinationReadStore) FindDetails(ctx context.Context, id uuid.UUID) (*queries.CombinationDetailsView, error) {
	row, err := r.queries.GetCombinationDetails(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("combination not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get combination details", err)
	}
	return &queries.CombinationDetailsView{
		Combination: rawOrNull(row.CombinationInfo),
		Rooms:       rawOrNull(row.RoomsInfo),
		Guests:      rawOrNull(row.GuestsInfo),
	}, nil
}

func (r *CombinationReadStore) List(ctx context.Context) ([]queries.CombinationListItem, error) {
	rows, err := r.queries.ListCombinations(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list combinations", err)
	}

	items := make([]queries.CombinationListItem, 0, len(rows))
	for _, row := range rows {
		total, err := pgconv.Float64FromNumeric(row.TotalPrice)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid combination total_price", err, infra.KindDBFailure)
		}
		items = append(items, queries.CombinationListItem{
			ID:              row.ID,
			CombinationName: pgconv.TextFromPgtype(row.CombinationName),
			TotalRooms:      pgconv.Int64FromPgtype(row.TotalRooms),
			TotalGuests:     pgconv.Int64FromPgtype(row.TotalGuests),
			TotalPrice:      total,
			CheckIn:         pgconv.DateString(row.CheckIn),
			CheckOut:        pgconv.DateString(row.CheckOut),
			Email:           pgconv.TextFromPgtype(row.Email),
			PaymentStatus:   pgconv.TextFromPgtype(row.PaymentStatus),
			CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return items, nil
}

func (r *CombinationReadStore) BookingRows(ctx context.Context, id uuid.UUID) ([]queries.Row, error) {
	rows, err := r.queries.GetCombinationBookingDetails(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get combination booking details", err)
	}
	return normalizeRows(rows), nil
}

func rawOrNull(b []byte) json.RawMessage {
	if len(b) == 0 {
		return json.RawMessage("null")
	}
	return json.RawMessage(b)
}
