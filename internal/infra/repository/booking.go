package repository

import (
	"context"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/procs"
	"hotel-booking/internal/infra/repository/converter"
)

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db procs.DBTX, arg procs.CreateBookingParams) ([]byte, error)
	UpdateBookingStatus(ctx context.Context, db procs.DBTX, bookingNumber, status string) error
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      procs.DBTX
}

func NewBookingRepository(queries BookingWriteQueries, db procs.DBTX) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *BookingRepository) CreateBooking(ctx context.Context, b *booking.Booking) (string, error) {
	params, err := converter.BookingToCreateParams(b)
	if err != nil {
		return "", infra.WrapRepoErr("failed to build create_booking arguments", err, infra.KindInvalidInput)
	}

	raw, err := r.queries.CreateBooking(ctx, r.db, params)
	if err != nil {
		return "", infra.WrapRepoErr("failed to create booking", err)
	}

	number, err := converter.BookingNumberFromResult(raw)
	if err != nil {
		return "", infra.WrapRepoErr("failed to decode create_booking result", err, infra.KindDBFailure)
	}
	return number, nil
}

func (r *BookingRepository) UpdateBookingStatus(ctx context.Context, bookingNumber string, status booking.Status) error {
	if err := r.queries.UpdateBookingStatus(ctx, r.db, bookingNumber, status.String()); err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	return nil
}
