package request

import (
	"time"

	"hotel-booking/internal/domain/room"
)

type SearchRoomsQuery struct {
	CheckIn  string `form:"check_in"`
	CheckOut string `form:"check_out"`
	Adults   string `form:"adults"`
	Children string `form:"children"`
	Rooms    string `form:"number_of_rooms"`
}

func (q SearchRoomsQuery) ToCriteria(today time.Time) (room.SearchCriteria, error) {
	return room.NewSearchCriteria(room.SearchInput{
		CheckIn:  q.CheckIn,
		CheckOut: q.CheckOut,
		Adults:   q.Adults,
		Children: q.Children,
		Rooms:    q.Rooms,
	}, today)
}

type DynamicPriceQuery struct {
	RoomID  string `form:"roomId"`
	CheckIn string `form:"checkIn"`
}
