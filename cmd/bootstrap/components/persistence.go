package components

import (
	"hotel-booking/internal/infra/procs"
	"hotel-booking/internal/infra/readstore"
	"hotel-booking/internal/infra/repository"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewProcs,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Rooms
		fx.Annotate(
			NewProcs,
			fx.As(new(readstore.RoomViewQueries)),
		),
		fx.Annotate(
			readstore.NewRoomReadStore,
			fx.As(new(queries.RoomReadStore)),
			fx.As(new(commands.PriceQuoter)),
		),
		// Combinations
		fx.Annotate(
			NewProcs,
			fx.As(new(readstore.CombinationViewQueries)),
		),
		fx.Annotate(
			readstore.NewCombinationReadStore,
			fx.As(new(queries.CombinationReadStore)),
		),
		// Admin
		fx.Annotate(
			NewProcs,
			fx.As(new(readstore.AdminViewQueries)),
		),
		fx.Annotate(
			readstore.NewAdminReadStore,
			fx.As(new(queries.AdminReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// Booking
		fx.Annotate(
			NewProcs,
			fx.As(new(repository.BookingWriteQueries)),
		),
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(commands.BookingStore)),
		),
		// Message
		fx.Annotate(
			NewProcs,
			fx.As(new(repository.MessageWriteQueries)),
		),
		fx.Annotate(
			repository.NewMessageRepository,
			fx.As(new(commands.MessageStore)),
		),
	),
)

func NewProcs(_ *pgxpool.Pool) *procs.Queries {
	return procs.New()
}

func NewDBTX(pool *pgxpool.Pool) procs.DBTX {
	return pool
}
