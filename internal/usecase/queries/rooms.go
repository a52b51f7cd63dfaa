package queries

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"hotel-booking/internal/domain/room"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/pkg/errs"
)

const allRoomsCacheKey = "rooms:all"

type PriceView struct {
	Price float64 `json:"price"`
}

type RoomQueries interface {
	SearchRooms(ctx context.Context, criteria room.SearchCriteria) (*RoomSearchResult, error)
	SearchCombinations(ctx context.Context, criteria room.SearchCriteria) (*CombinationSearchResult, error)
	ListRooms(ctx context.Context) ([]Row, error)
	DynamicPrice(ctx context.Context, roomID int64, checkIn string) (*PriceView, error)
}

type roomQueriesImpl struct {
	repo   RoomReadStore
	cache  *readThrough
	logger *slog.Logger
}

func NewRoomQueries(repo RoomReadStore, cache Cache, cfg config.Config, logger *slog.Logger) RoomQueries {
	return &roomQueriesImpl{
		repo:   repo,
		cache:  newReadThrough(cache, cfg.Redis.TTL, logger),
		logger: logger,
	}
}

func (q *roomQueriesImpl) SearchRooms(ctx context.Context, criteria room.SearchCriteria) (*RoomSearchResult, error) {
	rooms, err := q.repo.AvailableRooms(ctx, criteria)
	if err != nil {
		return nil, storeErr(err, "failed to search rooms")
	}
	return &RoomSearchResult{
		Rooms:            withImageURLs(rooms),
		SearchParameters: searchParameters(criteria, false),
	}, nil
}

func (q *roomQueriesImpl) SearchCombinations(ctx context.Context, criteria room.SearchCriteria) (*CombinationSearchResult, error) {
	combos, err := q.repo.CombinedRooms(ctx, criteria)
	if err != nil {
		return nil, storeErr(err, "failed to search room combinations")
	}

	alternatives := []Row{}
	if len(combos) == 0 {
		rooms, err := q.repo.AvailableRooms(ctx, criteria.WithRooms(1))
		if err != nil {
			q.logger.WarnContext(ctx, "single room fallback failed", "error", err)
		} else {
			alternatives = withImageURLs(rooms)
		}
	}
	if combos == nil {
		combos = []CombinationOption{}
	}

	return &CombinationSearchResult{
		Combinations:     combos,
		Rooms:            alternatives,
		SearchParameters: searchParameters(criteria, true),
		Summary: CombinationSummary{
			TotalCombinations:         len(combos),
			PriceRange:                priceRange(combos),
			AlternativeRoomsAvailable: len(alternatives),
		},
	}, nil
}

func (q *roomQueriesImpl) ListRooms(ctx context.Context) ([]Row, error) {
	rooms, err := cached(ctx, q.cache, allRoomsCacheKey, func(ctx context.Context) ([]Row, error) {
		rooms, err := q.repo.AllRooms(ctx)
		if err != nil {
			return nil, err
		}
		if rooms == nil {
			rooms = []Row{}
		}
		return rooms, nil
	})
	if err != nil {
		return nil, storeErr(err, "failed to list rooms")
	}
	return rooms, nil
}

func (q *roomQueriesImpl) DynamicPrice(ctx context.Context, roomID int64, checkIn string) (*PriceView, error) {
	key := fmt.Sprintf("price:%d:%s", roomID, checkIn)
	price, err := cached(ctx, q.cache, key, func(ctx context.Context) (PriceView, error) {
		p, err := q.repo.DynamicPrice(ctx, roomID, checkIn)
		if err != nil {
			return PriceView{}, err
		}
		return PriceView{Price: p}, nil
	})
	if err != nil {
		return nil, storeErr(err, "failed to fetch dynamic price")
	}
	return &price, nil
}

func searchParameters(c room.SearchCriteria, withNights bool) SearchParameters {
	p := SearchParameters{
		CheckIn:     c.Stay().CheckInString(),
		CheckOut:    c.Stay().CheckOutString(),
		Adults:      c.Adults(),
		Children:    c.Children(),
		Rooms:       c.Rooms(),
		TotalGuests: c.TotalGuests(),
	}
	if withNights {
		n := c.Stay().Nights()
		p.Nights = &n
	}
	return p
}

// withImageURLs flattens images[].image_url into image_urls, defaulting when a room has none.
func withImageURLs(rooms []Row) []Row {
	out := make([]Row, 0, len(rooms))
	for _, r := range rooms {
		var urls []string
		if images, ok := r["images"].([]any); ok {
			for _, img := range images {
				m, ok := img.(map[string]any)
				if !ok {
					continue
				}
				if u, ok := m["image_url"].(string); ok && u != "" {
					urls = append(urls, u)
				}
			}
		}
		if len(urls) == 0 {
			urls = []string{room.DefaultImageURL}
		}
		r["image_urls"] = urls
		out = append(out, r)
	}
	return out
}

func priceRange(combos []CombinationOption) *PriceRange {
	if len(combos) == 0 {
		return nil
	}
	pr := &PriceRange{Min: math.Inf(1), Max: math.Inf(-1)}
	for _, c := range combos {
		pr.Min = math.Min(pr.Min, c.TotalPrice)
		pr.Max = math.Max(pr.Max, c.TotalPrice)
	}
	return pr
}

// storeErr keeps NotFound visible to handlers and folds everything else into StoreUnavailable.
func storeErr(err error, msg string) error {
	if isNotFound(err) {
		return errs.Mark(errs.Wrap(err, msg), errs.ErrNotFound)
	}
	return errs.Mark(errs.Wrap(err, msg), errs.ErrStoreUnavailable)
}
