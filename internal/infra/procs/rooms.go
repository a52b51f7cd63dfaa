package procs

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type RoomSearchParams struct {
	CheckIn  string
	CheckOut string
	Adults   int32
	Children int32
	Rooms    int32
}

const getAvailableRoomsFull = `SELECT room FROM get_available_rooms_full($1, $2, $3, $4, $5)`

// GetAvailableRoomsFull returns one JSON document per available room.
func (q *Queries) GetAvailableRoomsFull(ctx context.Context, db DBTX, arg RoomSearchParams) ([][]byte, error) {
	rows, err := db.Query(ctx, getAvailableRoomsFull, arg.CheckIn, arg.CheckOut, arg.Adults, arg.Children, arg.Rooms)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[[]byte])
}

const searchRoomsCombined = `SELECT combination_room_ids, price_per_night, total_price,
       total_max_adults, total_max_children, total_min_occupancy, total_max_occupancy,
       room_details
FROM search_rooms_combined($1, $2, $3, $4, $5)`

type SearchRoomsCombinedRow struct {
	CombinationRoomIDs []int64
	PricePerNight      pgtype.Numeric
	TotalPrice         pgtype.Numeric
	TotalMaxAdults     pgtype.Int8
	TotalMaxChildren   pgtype.Int8
	TotalMinOccupancy  pgtype.Int8
	TotalMaxOccupancy  pgtype.Int8
	RoomDetails        []byte
}

func (q *Queries) SearchRoomsCombined(ctx context.Context, db DBTX, arg RoomSearchParams) ([]SearchRoomsCombinedRow, error) {
	rows, err := db.Query(ctx, searchRoomsCombined, arg.Adults, arg.Children, arg.Rooms, arg.CheckIn, arg.CheckOut)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []SearchRoomsCombinedRow
	for rows.Next() {
		var i SearchRoomsCombinedRow
		if err := rows.Scan(
			&i.CombinationRoomIDs,
			&i.PricePerNight,
			&i.TotalPrice,
			&i.TotalMaxAdults,
			&i.TotalMaxChildren,
			&i.TotalMinOccupancy,
			&i.TotalMaxOccupancy,
			&i.RoomDetails,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const viewAllRooms = `SELECT * FROM view_all_rooms()`

func (q *Queries) ViewAllRooms(ctx context.Context, db DBTX) ([]map[string]any, error) {
	rows, err := db.Query(ctx, viewAllRooms)
	if err != nil {
		return nil, err
	}
	return collectMaps(rows)
}
