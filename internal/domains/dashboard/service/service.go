package service

import (
	"context"
	"fmt"
	"time"

	"hotelier/infras/otel"
	archiveRepo "hotelier/internal/domains/archive/repository"
	bookingModel "hotelier/internal/domains/booking/model"
	bookingRepo "hotelier/internal/domains/booking/repository"
	"hotelier/internal/domains/dashboard/model/dto"
	guestRepo "hotelier/internal/domains/guest/repository"
	roomModel "hotelier/internal/domains/room/model"
	roomRepo "hotelier/internal/domains/room/repository"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/timezone"

	"github.com/rs/zerolog/log"
)

type Dashboard interface {
	Stats(ctx context.Context) (dto.StatsResponse, error)
}

type serviceImpl struct {
	roomRepo    roomRepo.Room
	bookingRepo bookingRepo.Booking
	guestRepo   guestRepo.Guest
	archiveRepo archiveRepo.Archive
	otel        otel.Otel
}

func New(roomRepo roomRepo.Room, bookingRepo bookingRepo.Booking, guestRepo guestRepo.Guest, archiveRepo archiveRepo.Archive, otel otel.Otel) Dashboard {
	return &serviceImpl{
		roomRepo:    roomRepo,
		bookingRepo: bookingRepo,
		guestRepo:   guestRepo,
		archiveRepo: archiveRepo,
		otel:        otel,
	}
}

// Stats aggregates the front-desk overview counters. Revenue only counts
// archived bills completed in the current calendar month.
func (s *serviceImpl) Stats(ctx context.Context) (res dto.StatsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Stats")
	defer scope.End()
	defer scope.TraceIfError(err)

	res.TotalRooms, err = s.roomRepo.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return res, fmt.Errorf("failed to count rooms: %w", err)
	}

	res.AvailableRooms, err = s.roomRepo.Count(ctx, statusFilter(roomModel.TableName, roomModel.FieldStatus, roomModel.StatusAvailable))
	if err != nil {
		log.Error().Err(err).Msg("failed to count available rooms")

		return res, fmt.Errorf("failed to count available rooms: %w", err)
	}

	res.ReservedBookings, err = s.bookingRepo.Count(ctx, statusFilter(bookingModel.TableName, bookingModel.FieldStatus, bookingModel.StatusReserved))
	if err != nil {
		log.Error().Err(err).Msg("failed to count reserved bookings")

		return res, fmt.Errorf("failed to count reserved bookings: %w", err)
	}

	res.TotalGuests, err = s.guestRepo.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to count guests")

		return res, fmt.Errorf("failed to count guests: %w", err)
	}

	res.MonthlyRevenue, err = s.archiveRepo.RevenueSince(ctx, firstOfMonth(timezone.Now()))
	if err != nil {
		log.Error().Err(err).Msg("failed to sum monthly revenue")

		return res, fmt.Errorf("failed to sum monthly revenue: %w", err)
	}

	return res, nil
}

func statusFilter(table, field, status string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    status,
				Table:    table,
			},
		},
	}
}

func firstOfMonth(t time.Time) time.Time {
	t = timezone.ToAppTime(t)

	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, timezone.GetLocation())
}
