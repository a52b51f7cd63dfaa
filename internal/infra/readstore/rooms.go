package readstore

import (
	"context"
	"encoding/json"

	"hotel-booking/internal/domain/room"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/procs"
	"hotel-booking/internal/pkg/pgconv"
	"hotel-booking/internal/usecase/queries"
)

type RoomViewQueries interface {
	GetAvailableRoomsFull(ctx context.Context, db procs.DBTX, arg procs.RoomSearchParams) ([][]byte, error)
	SearchRoomsCombined(ctx context.Context, db procs.DBTX, arg procs.RoomSearchParams) ([]procs.SearchRoomsCombinedRow, error)
	ViewAllRooms(ctx context.Context, db procs.DBTX) ([]map[string]any, error)
	GetDynamicPrice(ctx context.Context, db procs.DBTX, roomID int32, checkIn string) (*float64, error)
}

type RoomReadStore struct {
	queries RoomViewQueries
	db      procs.DBTX
}

func NewRoomReadStore(queries RoomViewQueries, db procs.DBTX) *RoomReadStore {
	return &RoomReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RoomReadStore) AvailableRooms(ctx context.Context, criteria room.SearchCriteria) ([]queries.Row, error) {
	params, err := searchParams(criteria)
	if err != nil {
		return nil, err
	}
	docs, err := r.queries.GetAvailableRoomsFull(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get available rooms", err)
	}

	rooms := make([]queries.Row, 0, len(docs))
	for _, doc := range docs {
		var row queries.Row
		if err := json.Unmarshal(doc, &row); err != nil {
			return nil, infra.WrapRepoErr("failed to decode room document", err, infra.KindDBFailure)
		}
		if row != nil {
			rooms = append(rooms, row)
		}
	}
	return rooms, nil
}

func (r *RoomReadStore) CombinedRooms(ctx context.Context, criteria room.SearchCriteria) ([]queries.CombinationOption, error) {
	params, err := searchParams(criteria)
	if err != nil {
		return nil, err
	}
	rows, err := r.queries.SearchRoomsCombined(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search room combinations", err)
	}

	options := make([]queries.CombinationOption, 0, len(rows))
	for _, row := range rows {
		perNight, err := pgconv.Float64FromNumeric(row.PricePerNight)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid price_per_night", err, infra.KindDBFailure)
		}
		total, err := pgconv.Float64FromNumeric(row.TotalPrice)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid total_price", err, infra.KindDBFailure)
		}
		details := json.RawMessage(row.RoomDetails)
		if len(details) == 0 {
			details = json.RawMessage("null")
		}
		ids := row.CombinationRoomIDs
		if ids == nil {
			ids = []int64{}
		}
		options = append(options, queries.CombinationOption{
			CombinationRoomIDs: ids,
			PricePerNight:      perNight,
			TotalPrice:         total,
			Capacity: queries.Capacity{
				MaxAdults:    pgconv.Int64FromPgtype(row.TotalMaxAdults),
				MaxChildren:  pgconv.Int64FromPgtype(row.TotalMaxChildren),
				MinOccupancy: pgconv.Int64FromPgtype(row.TotalMinOccupancy),
				MaxOccupancy: pgconv.Int64FromPgtype(row.TotalMaxOccupancy),
			},
			RoomDetails: details,
		})
	}
	return options, nil
}

func (r *RoomReadStore) AllRooms(ctx context.Context) ([]queries.Row, error) {
	rows, err := r.queries.ViewAllRooms(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to view all rooms", err)
	}
	return normalizeRows(rows), nil
}

// DynamicPrice also serves as the checkout quoter, so it always reads through to the store.
func (r *RoomReadStore) DynamicPrice(ctx context.Context, roomID int64, checkIn string) (float64, error) {
	id, err := pgconv.Int32(roomID)
	if err != nil {
		return 0, infra.WrapRepoErr("invalid room id", err, infra.KindInvalidInput)
	}
	price, err := r.queries.GetDynamicPrice(ctx, r.db, id, checkIn)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to get dynamic price", err)
	}
	if price == nil {
		return 0, infra.NewRepoErr(infra.KindNotFound, "no price for room and date")
	}
	return *price, nil
}

func searchParams(c room.SearchCriteria) (procs.RoomSearchParams, error) {
	counts := [3]int32{}
	for i, n := range []int{c.Adults(), c.Children(), c.Rooms()} {
		v, err := pgconv.Int32(int64(n))
		if err != nil {
			return procs.RoomSearchParams{}, infra.WrapRepoErr("invalid search counts", err, infra.KindInvalidInput)
		}
		counts[i] = v
	}
	return procs.RoomSearchParams{
		CheckIn:  c.Stay().CheckInString(),
		CheckOut: c.Stay().CheckOutString(),
		Adults:   counts[0],
		Children: counts[1],
		Rooms:    counts[2],
	}, nil
}

func normalizeRows(rows []map[string]any) []queries.Row {
	out := make([]queries.Row, 0, len(rows))
	for _, row := range rows {
		out = append(out, pgconv.NormalizeRow(row))
	}
	return out
}
