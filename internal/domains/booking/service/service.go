package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotelier/config"
	"hotelier/infras/otel"
	"hotelier/infras/postgres"
	billingModel "hotelier/internal/domains/billing/model"
	billingRepo "hotelier/internal/domains/billing/repository"
	"hotelier/internal/domains/booking/model"
	"hotelier/internal/domains/booking/model/dto"
	"hotelier/internal/domains/booking/repository"
	guestModel "hotelier/internal/domains/guest/model"
	guestRepo "hotelier/internal/domains/guest/repository"
	roomModel "hotelier/internal/domains/room/model"
	roomRepo "hotelier/internal/domains/room/repository"
	"hotelier/shared"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/failure"
	"hotelier/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	TodayCheckIns(ctx context.Context, req gDto.QueryParams) (dto.GetBookingsResponse, error)
	CheckIn(ctx context.Context, id string) error
	CheckOut(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo      repository.Booking
	roomRepo  roomRepo.Room
	guestRepo guestRepo.Guest
	billRepo  billingRepo.Bill
	txm       postgres.Transactor
	cfg       *config.Config
	otel      otel.Otel
}

func New(repo repository.Booking, roomRepo roomRepo.Room, guestRepo guestRepo.Guest, billRepo billingRepo.Bill, txm postgres.Transactor, cfg *config.Config, otel otel.Otel) Booking {
	return &serviceImpl{
		repo:      repo,
		roomRepo:  roomRepo,
		guestRepo: guestRepo,
		billRepo:  billRepo,
		txm:       txm,
		cfg:       cfg,
		otel:      otel,
	}
}

// Create reserves a room. The availability check and both status writes run
// inside one transaction with the room row locked, so two concurrent requests
// for the same room cannot both pass the check.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := req.ToModel(user)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse booking request")

		return failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	if !booking.CheckOutDate.After(booking.CheckInDate) {
		return failure.BadRequestFromString("check-out date must be after check-in date") // nolint:wrapcheck
	}

	guestExists, err := s.guestRepo.Exist(ctx, shared.FilterByID(req.GuestID, guestModel.FieldID, guestModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if guest exists")

		return fmt.Errorf("failed to check if guest exists: %w", err)
	}

	if !guestExists {
		return failure.NotFound("guest not found") // nolint:wrapcheck
	}

	err = s.txm.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		room, err := s.roomRepo.GetForUpdateTx(ctx, tx, shared.FilterByID(req.RoomID, roomModel.FieldID, roomModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to get room")

			return fmt.Errorf("failed to get room: %w", err)
		}

		if room.ID == constant.Empty {
			return failure.NotFound("room not found") // nolint:wrapcheck
		}

		if req.NumberOfGuests > room.Capacity {
			return failure.BadRequestFromString(fmt.Sprintf( // nolint:wrapcheck
				"room %d holds up to %d guests, requested %d", room.Number, room.Capacity, req.NumberOfGuests))
		}

		if room.Status != roomModel.StatusAvailable {
			return failure.Conflict(fmt.Sprintf("room %d is currently %s", room.Number, room.Status)) // nolint:wrapcheck
		}

		if err := s.repo.InsertTx(ctx, tx, booking); err != nil {
			log.Error().Err(err).Msg("failed to create booking")

			return fmt.Errorf("failed to create booking: %w", err)
		}

		statusUpdate := map[string]any{
			roomModel.FieldStatus:    roomModel.StatusReserved,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: user,
		}

		if err := s.roomRepo.UpdateTx(ctx, tx, statusUpdate, shared.FilterByID(room.ID, roomModel.FieldID, roomModel.TableName)); err != nil {
			log.Error().Err(err).Msg("failed to reserve room")

			return fmt.Errorf("failed to reserve room: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	scope.AddEvent("Booking reserved for room " + req.RoomID)

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	res.FromModel(booking)

	return res, nil
}

// TodayCheckIns lists reserved bookings whose check-in date falls inside
// [start of today, start of tomorrow) in the application timezone.
func (s *serviceImpl) TodayCheckIns(ctx context.Context, req gDto.QueryParams) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".TodayCheckIns")
	defer scope.End()
	defer scope.TraceIfError(err)

	startOfDay := dto.StartOfDay(timezone.Now())
	startOfNextDay := startOfDay.AddDate(0, 0, 1)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    model.StatusReserved,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "check_in_from",
				Field:    model.FieldCheckInDate,
				Operator: gDto.FilterOperatorGreaterEq,
				Value:    startOfDay,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "check_in_to",
				Field:    model.FieldCheckInDate,
				Operator: gDto.FilterOperatorLess,
				Value:    startOfNextDay,
				Table:    model.TableName,
			},
		},
	}

	return s.GetAll(ctx, req, filter)
}

// CheckIn moves a reserved booking to checked-in and the room to occupied in
// one transaction. The booking is loaded up front so the room id used inside
// the transaction is the one the caller saw. A zero-row booking update means
// another request got there first and the whole operation is rejected.
func (s *serviceImpl) CheckIn(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckIn")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	billExists, err := s.billRepo.Exist(ctx, shared.FilterByID(id, billingModel.FieldBookingID, billingModel.BillTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if bill exists")

		return fmt.Errorf("failed to check if bill exists: %w", err)
	}

	if billExists {
		return failure.Conflict("bill already exists for this booking") // nolint:wrapcheck
	}

	roomID := booking.RoomID

	return s.txm.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		bookingUpdate := map[string]any{
			model.FieldStatus:        model.StatusCheckedIn,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: user,
		}

		bookingFilter := gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorAnd,
			Filters: []any{
				gDto.Filter{
					Field:    model.FieldID,
					Operator: gDto.FilterOperatorEq,
					Value:    id,
					Table:    model.TableName,
				},
				gDto.Filter{
					Field:    model.FieldStatus,
					Operator: gDto.FilterOperatorEq,
					Value:    model.StatusReserved,
					Table:    model.TableName,
				},
			},
		}

		affected, err := s.repo.UpdateTxAffected(ctx, tx, bookingUpdate, bookingFilter)
		if err != nil {
			log.Error().Err(err).Msg("failed to check in booking")

			return fmt.Errorf("failed to check in booking: %w", err)
		}

		if affected == 0 {
			return failure.Conflict("booking is no longer reserved") // nolint:wrapcheck
		}

		roomUpdate := map[string]any{
			roomModel.FieldStatus:    roomModel.StatusOccupied,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: user,
		}

		if err := s.roomRepo.UpdateTx(ctx, tx, roomUpdate, shared.FilterByID(roomID, roomModel.FieldID, roomModel.TableName)); err != nil {
			log.Error().Err(err).Msg("failed to mark room occupied")

			return fmt.Errorf("failed to mark room occupied: %w", err)
		}

		return nil
	})
}

// CheckOut only advances the booking. The room stays occupied until billing
// completes and releases it.
func (s *serviceImpl) CheckOut(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckOut")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return s.txm.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		bookingUpdate := map[string]any{
			model.FieldStatus:        model.StatusCheckedOut,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: user,
		}

		bookingFilter := gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorAnd,
			Filters: []any{
				gDto.Filter{
					Field:    model.FieldID,
					Operator: gDto.FilterOperatorEq,
					Value:    id,
					Table:    model.TableName,
				},
				gDto.Filter{
					Field:    model.FieldStatus,
					Operator: gDto.FilterOperatorEq,
					Value:    model.StatusCheckedIn,
					Table:    model.TableName,
				},
			},
		}

		affected, err := s.repo.UpdateTxAffected(ctx, tx, bookingUpdate, bookingFilter)
		if err != nil {
			log.Error().Err(err).Msg("failed to check out booking")

			return fmt.Errorf("failed to check out booking: %w", err)
		}

		if affected == 0 {
			return failure.Conflict("booking is not checked in") // nolint:wrapcheck
		}

		return nil
	})
}
