package converter

import (
	"encoding/json"
	"strings"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/infra/procs"
	"hotel-booking/internal/pkg/pgconv"
)

func BookingToCreateParams(b *booking.Booking) (procs.CreateBookingParams, error) {
	guestsJSON, err := b.GuestsJSON()
	if err != nil {
		return procs.CreateBookingParams{}, err
	}

	room := b.Room()
	guests, err := pgconv.Int32(int64(b.Guests()))
	if err != nil {
		return procs.CreateBookingParams{}, err
	}
	roomID, err := pgconv.Int32(room.RoomID())
	if err != nil {
		return procs.CreateBookingParams{}, err
	}
	params := procs.CreateBookingParams{
		Email:           b.Email(),
		Phone:           b.Phone(),
		CheckIn:         b.Stay().CheckInString(),
		CheckOut:        b.Stay().CheckOutString(),
		Guests:          guests,
		RoomID:          roomID,
		GuestsJSON:      guestsJSON,
		PaymentStatus:   b.Status().String(),
		PaymentMethod:   b.PaymentMethod(),
		SpecialRequests: b.SpecialRequests(),
		IsCombination:   room.IsCombination(),
	}
	if ids := room.CombinationRoomIDs(); ids != nil {
		params.CombinationRoomIDs = make([]int32, len(ids))
		for i, id := range ids {
			if params.CombinationRoomIDs[i], err = pgconv.Int32(id); err != nil {
				return procs.CreateBookingParams{}, err
			}
		}
	}
	return params, nil
}

// BookingNumberFromResult reads booking_number from create_booking's JSON result.
// The store may emit it as a string or a number; a missing or null value yields "".
func BookingNumberFromResult(raw []byte) (string, error) {
	if len(raw) == 0 {
		return "", nil
	}
	dec := json.NewDecoder(strings.NewReader(string(raw)))
	dec.UseNumber()
	var doc map[string]any
	if err := dec.Decode(&doc); err != nil {
		return "", err
	}
	switch v := doc["booking_number"].(type) {
	case string:
		return v, nil
	case json.Number:
		return v.String(), nil
	default:
		return "", nil
	}
}
