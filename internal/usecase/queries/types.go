package queries

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Row is a stored-function row passed through to callers as-is.
type Row = map[string]any

type SearchParameters struct {
	CheckIn     string `json:"check_in"`
	CheckOut    string `json:"check_out"`
	Adults      int    `json:"adults"`
	Children    int    `json:"children"`
	Rooms       int    `json:"rooms"`
	TotalGuests int    `json:"total_guests"`
	Nights      *int   `json:"nights,omitempty"`
}

type RoomSearchResult struct {
	Rooms            []Row            `json:"rooms"`
	SearchParameters SearchParameters `json:"search_parameters"`
}

type Capacity struct {
	MaxAdults    int64 `json:"max_adults"`
	MaxChildren  int64 `json:"max_children"`
	MinOccupancy int64 `json:"min_occupancy"`
	MaxOccupancy int64 `json:"max_occupancy"`
}

type CombinationOption struct {
	CombinationRoomIDs []int64         `json:"combination_room_ids"`
	PricePerNight      float64         `json:"price_per_night"`
	TotalPrice         float64         `json:"total_price"`
	Capacity           Capacity        `json:"capacity"`
	RoomDetails        json.RawMessage `json:"room_details"`
}

type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type CombinationSummary struct {
	TotalCombinations         int         `json:"total_combinations"`
	PriceRange                *PriceRange `json:"price_range"`
	AlternativeRoomsAvailable int         `json:"alternative_rooms_available"`
}

type CombinationSearchResult struct {
	Combinations     []CombinationOption `json:"combinations"`
	Rooms            []Row               `json:"rooms"`
	SearchParameters SearchParameters    `json:"search_parameters"`
	Summary          CombinationSummary  `json:"summary"`
}

type CombinationDetailsView struct {
	Combination json.RawMessage `json:"combination"`
	Rooms       json.RawMessage `json:"rooms"`
	Guests      json.RawMessage `json:"guests"`
}

type CombinationListItem struct {
	ID              uuid.UUID  `json:"id"`
	CombinationName *string    `json:"combination_name"`
	TotalRooms      int64      `json:"total_rooms"`
	TotalGuests     int64      `json:"total_guests"`
	TotalPrice      float64    `json:"total_price"`
	CheckIn         *string    `json:"check_in"`
	CheckOut        *string    `json:"check_out"`
	Email           *string    `json:"email"`
	PaymentStatus   *string    `json:"payment_status"`
	CreatedAt       *time.Time `json:"created_at"`
}

type CombinationBookingInfo struct {
	Email           any `json:"email"`
	Phone           any `json:"phone"`
	CheckIn         any `json:"check_in"`
	CheckOut        any `json:"check_out"`
	PaymentStatus   any `json:"payment_status"`
	PaymentMethod   any `json:"payment_method"`
	SpecialRequests any `json:"special_requests"`
	CreatedAt       any `json:"created_at"`
}

type CombinationBookedRoom struct {
	BookingID       any `json:"booking_id"`
	BookingNumber   any `json:"booking_number"`
	RoomID          any `json:"room_id"`
	RoomName        any `json:"room_name"`
	RoomDescription any `json:"room_description"`
	RoomPrice       any `json:"room_price"`
	Guests          any `json:"guests"`
	RoomImages      any `json:"room_images"`
	GuestDetails    any `json:"guest_details"`
}

type CombinationBookingView struct {
	CombinationID string                  `json:"combination_id"`
	BookingInfo   CombinationBookingInfo  `json:"booking_info"`
	Rooms         []CombinationBookedRoom `json:"rooms"`
	TotalRooms    int                     `json:"total_rooms"`
	TotalGuests   int64                   `json:"total_guests"`
}
