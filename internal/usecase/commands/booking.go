package commands

import (
	"context"
	"log/slog"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/config"
	"hotel-booking/internal/pkg/errs"
)

var ErrBookingCreationFailed = errs.New("booking creation failed, no booking number returned")

type CreateBookingResult struct {
	BookingNumber string
	Booking       *booking.Booking
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, in booking.Input) (*CreateBookingResult, error)
	UpdateBookingStatus(ctx context.Context, bookingNumber string, status booking.Status) error
}

type bookingCommandsImpl struct {
	store  BookingStore
	clock  clock.Clock
	loc    *time.Location
	logger *slog.Logger
}

func NewBookingCommands(store BookingStore, clk clock.Clock, cfg config.Config, logger *slog.Logger) BookingCommands {
	return &bookingCommandsImpl{
		store:  store,
		clock:  clk,
		loc:    cfg.App.Location(),
		logger: logger,
	}
}

func (s *bookingCommandsImpl) CreateBooking(ctx context.Context, in booking.Input) (*CreateBookingResult, error) {
	b, err := booking.NewBooking(in, clock.Today(s.clock, s.loc))
	if err != nil {
		return nil, err
	}

	number, err := s.store.CreateBooking(ctx, b)
	if err != nil {
		s.logger.ErrorContext(ctx, "create_booking failed",
			"room_id", b.Room().RoomID(),
			"combination", b.Room().IsCombination(),
			"error", err,
		)
		return nil, errs.Mark(errs.Wrap(err, "failed to create booking"), errs.ErrStoreUnavailable)
	}
	if number == "" {
		s.logger.ErrorContext(ctx, "create_booking returned no booking number", "room_id", b.Room().RoomID())
		return nil, errs.Mark(ErrBookingCreationFailed, errs.ErrStoreUnavailable)
	}

	s.logger.InfoContext(ctx, "booking created",
		"booking_number", number,
		"status", b.Status().String(),
		"rooms", b.Room().RoomCount(),
	)
	return &CreateBookingResult{BookingNumber: number, Booking: b}, nil
}

func (s *bookingCommandsImpl) UpdateBookingStatus(ctx context.Context, bookingNumber string, status booking.Status) error {
	if err := booking.ValidateSettlement(bookingNumber, status); err != nil {
		return err
	}
	if err := s.store.UpdateBookingStatus(ctx, bookingNumber, status); err != nil {
		return errs.Mark(errs.Wrap(err, "failed to update booking status"), errs.ErrStoreUnavailable)
	}
	return nil
}
