package procs

import (
	"context"
)

const createBooking = `SELECT create_booking($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

type CreateBookingParams struct {
	Email              string
	Phone              string
	CheckIn            string
	CheckOut           string
	Guests             int32
	RoomID             int32
	GuestsJSON         string
	PaymentStatus      string
	PaymentMethod      *string
	SpecialRequests    *string
	IsCombination      bool
	CombinationRoomIDs []int32
}

// CreateBooking returns the raw JSON document produced by create_booking.
func (q *Queries) CreateBooking(ctx context.Context, db DBTX, arg CreateBookingParams) ([]byte, error) {
	row := db.QueryRow(ctx, createBooking,
		arg.Email,
		arg.Phone,
		arg.CheckIn,
		arg.CheckOut,
		arg.Guests,
		arg.RoomID,
		arg.GuestsJSON,
		arg.PaymentStatus,
		arg.PaymentMethod,
		arg.SpecialRequests,
		arg.IsCombination,
		arg.CombinationRoomIDs,
	)
	var result []byte
	err := row.Scan(&result)
	return result, err
}

const updateBookingStatus = `SELECT update_booking_status($1, $2)`

func (q *Queries) UpdateBookingStatus(ctx context.Context, db DBTX, bookingNumber, status string) error {
	_, err := db.Exec(ctx, updateBookingStatus, bookingNumber, status)
	return err
}

const getDynamicPrice = `SELECT get_dynamic_price($1, $2)::float8`

func (q *Queries) GetDynamicPrice(ctx context.Context, db DBTX, roomID int32, checkIn string) (*float64, error) {
	row := db.QueryRow(ctx, getDynamicPrice, roomID, checkIn)
	var price *float64
	err := row.Scan(&price)
	return price, err
}

const sendMessage = `SELECT send_message($1, $2, $3)`

func (q *Queries) SendMessage(ctx context.Context, db DBTX, fullName, email, message string) error {
	_, err := db.Exec(ctx, sendMessage, fullName, email, message)
	return err
}
