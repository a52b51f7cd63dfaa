package procs

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const getCombinationDetails = `SELECT combination_info, rooms_info, guests_info FROM get_combination_details($1)`

type GetCombinationDetailsRow struct {
	CombinationInfo []byte
	RoomsInfo       []byte
	GuestsInfo      []byte
}

func (q *Queries) GetCombinationDetails(ctx context.Context, db DBTX, id uuid.UUID) (GetCombinationDetailsRow, error) {
	row := db.QueryRow(ctx, getCombinationDetails, id)
	var i GetCombinationDetailsRow
	err := row.Scan(&i.CombinationInfo, &i.RoomsInfo, &i.GuestsInfo)
	return i, err
}

const listCombinations = `SELECT id, combination_name, total_rooms, total_guests, total_price,
       check_in, check_out, email, payment_status, created_at
FROM combinations
ORDER BY created_at DESC`

type CombinationRow struct {
	ID              uuid.UUID
	CombinationName pgtype.Text
	TotalRooms      pgtype.Int8
	TotalGuests     pgtype.Int8
	TotalPrice      pgtype.Numeric
	CheckIn         pgtype.Date
	CheckOut        pgtype.Date
	Email           pgtype.Text
	PaymentStatus   pgtype.Text
	CreatedAt       pgtype.Timestamptz
}

func (q *Queries) ListCombinations(ctx context.Context, db DBTX) ([]CombinationRow, error) {
	rows, err := db.Query(ctx, listCombinations)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []CombinationRow
	for rows.Next() {
		var i CombinationRow
		if err := rows.Scan(
			&i.ID,
			&i.CombinationName,
			&i.TotalRooms,
			&i.TotalGuests,
			&i.TotalPrice,
			&i.CheckIn,
			&i.CheckOut,
			&i.Email,
			&i.PaymentStatus,
			&i.CreatedAt,
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

const getCombinationBookingDetails = `SELECT * FROM get_combination_booking_details($1)`

// GetCombinationBookingDetails returns one row per booked room of the combination.
func (q *Queries) GetCombinationBookingDetails(ctx context.Context, db DBTX, id uuid.UUID) ([]map[string]any, error) {
	rows, err := db.Query(ctx, getCombinationBookingDetails, id)
	if err != nil {
		return nil, err
	}
	return collectMaps(rows)
}
