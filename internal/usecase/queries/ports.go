package queries

import (
	"context"

	"hotel-booking/internal/domain/room"

	"github.com/google/uuid"
)

type RoomReadStore interface {
	// AvailableRooms returns one decoded document per room free for the whole stay.
	AvailableRooms(ctx context.Context, criteria room.SearchCriteria) ([]Row, error)
	CombinedRooms(ctx context.Context, criteria room.SearchCriteria) ([]CombinationOption, error)
	AllRooms(ctx context.Context) ([]Row, error)
	DynamicPrice(ctx context.Context, roomID int64, checkIn string) (float64, error)
}

type CombinationReadStore interface {
	// FindDetails reports KindNotFound when the combination has no info row.
	FindDetails(ctx context.Context, id uuid.UUID) (*CombinationDetailsView, error)
	List(ctx context.Context) ([]CombinationListItem, error)
	BookingRows(ctx context.Context, id uuid.UUID) ([]Row, error)
}

type AdminReadStore interface {
	Reservations(ctx context.Context) ([]Row, error)
	Messages(ctx context.Context) ([]Row, error)
}
