package queries

import (
	"context"
	"encoding/json"

	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
)

var (
	ErrCombinationNotFound        = errs.NotFound("no combination found with this ID")
	ErrCombinationBookingNotFound = errs.NotFound("no combination booking found with this ID")
)

var emptyJSONArray = json.RawMessage("[]")

type CombinationQueries interface {
	Details(ctx context.Context, id uuid.UUID) (*CombinationDetailsView, error)
	List(ctx context.Context) ([]CombinationListItem, error)
	Booking(ctx context.Context, id uuid.UUID) (*CombinationBookingView, error)
}

type combinationQueriesImpl struct {
	repo CombinationReadStore
}

func NewCombinationQueries(repo CombinationReadStore) CombinationQueries {
	return &combinationQueriesImpl{repo: repo}
}

func (q *combinationQueriesImpl) Details(ctx context.Context, id uuid.UUID) (*CombinationDetailsView, error) {
	view, err := q.repo.FindDetails(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrCombinationNotFound
		}
		return nil, storeErr(err, "failed to fetch combination details")
	}
	if isNullJSON(view.Rooms) {
		view.Rooms = emptyJSONArray
	}
	if isNullJSON(view.Guests) {
		view.Guests = emptyJSONArray
	}
	return view, nil
}

func (q *combinationQueriesImpl) List(ctx context.Context) ([]CombinationListItem, error) {
	items, err := q.repo.List(ctx)
	if err != nil {
		return nil, storeErr(err, "failed to fetch combinations")
	}
	if items == nil {
		items = []CombinationListItem{}
	}
	return items, nil
}

func (q *combinationQueriesImpl) Booking(ctx context.Context, id uuid.UUID) (*CombinationBookingView, error) {
	rows, err := q.repo.BookingRows(ctx, id)
	if err != nil {
		return nil, storeErr(err, "failed to fetch combination booking details")
	}
	if len(rows) == 0 {
		return nil, ErrCombinationBookingNotFound
	}
	return GroupCombinationBooking(id.String(), rows), nil
}

// GroupCombinationBooking folds per-room booking rows into one view; shared fields come from the first row.
func GroupCombinationBooking(id string, rows []Row) *CombinationBookingView {
	view := &CombinationBookingView{
		CombinationID: id,
		Rooms:         make([]CombinationBookedRoom, 0, len(rows)),
		TotalRooms:    len(rows),
	}
	if len(rows) == 0 {
		return view
	}

	first := rows[0]
	view.BookingInfo = CombinationBookingInfo{
		Email:           first["email"],
		Phone:           first["phone"],
		CheckIn:         first["check_in"],
		CheckOut:        first["check_out"],
		PaymentStatus:   first["payment_status"],
		PaymentMethod:   first["payment_method"],
		SpecialRequests: first["special_requests"],
		CreatedAt:       first["created_at"],
	}

	for _, r := range rows {
		view.Rooms = append(view.Rooms, CombinationBookedRoom{
			BookingID:       r["booking_id"],
			BookingNumber:   r["booking_number"],
			RoomID:          r["room_id"],
			RoomName:        r["room_name"],
			RoomDescription: r["room_description"],
			RoomPrice:       r["room_price"],
			Guests:          r["guests"],
			RoomImages:      orEmptyList(r["room_images"]),
			GuestDetails:    orEmptyList(r["guest_details"]),
		})
		view.TotalGuests += pgconv.ToInt64(r["guests"])
	}
	return view
}

func orEmptyList(v any) any {
	if v == nil {
		return []any{}
	}
	return v
}

func isNullJSON(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}

func isNotFound(err error) bool {
	return infra.IsKind(err, infra.KindNotFound)
}
