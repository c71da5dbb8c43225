package service

import (
	"context"
	"fmt"

	"hotelier/config"
	"hotelier/infras/kafka"
	"hotelier/infras/otel"
	"hotelier/infras/postgres"
	archiveModel "hotelier/internal/domains/archive/model"
	archiveRepo "hotelier/internal/domains/archive/repository"
	"hotelier/internal/domains/billing/model"
	"hotelier/internal/domains/billing/model/dto"
	"hotelier/internal/domains/billing/repository"
	bookingModel "hotelier/internal/domains/booking/model"
	bookingRepo "hotelier/internal/domains/booking/repository"
	guestModel "hotelier/internal/domains/guest/model"
	guestRepo "hotelier/internal/domains/guest/repository"
	roomModel "hotelier/internal/domains/room/model"
	roomRepo "hotelier/internal/domains/room/repository"
	"hotelier/shared"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/failure"
	gModel "hotelier/shared/model"
	"hotelier/shared/timezone"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type Billing interface {
	Generate(ctx context.Context, bookingID string) error
	AddItem(ctx context.Context, bookingID string, req dto.AddBillItemRequest) error
	Get(ctx context.Context, bookingID string) (dto.BillResponse, error)
	Complete(ctx context.Context, bookingID string) error
}

type serviceImpl struct {
	billRepo    repository.Bill
	itemRepo    repository.Item
	bookingRepo bookingRepo.Booking
	roomRepo    roomRepo.Room
	guestRepo   guestRepo.Guest
	archiveRepo archiveRepo.Archive
	txm         postgres.Transactor
	kafka       kafka.Client
	cfg         *config.Config
	otel        otel.Otel
}

func New(
	billRepo repository.Bill,
	itemRepo repository.Item,
	bookingRepo bookingRepo.Booking,
	roomRepo roomRepo.Room,
	guestRepo guestRepo.Guest,
	archiveRepo archiveRepo.Archive,
	txm postgres.Transactor,
	kafkaClient kafka.Client,
	cfg *config.Config,
	otel otel.Otel,
) Billing {
	return &serviceImpl{
		billRepo:    billRepo,
		itemRepo:    itemRepo,
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		guestRepo:   guestRepo,
		archiveRepo: archiveRepo,
		txm:         txm,
		kafka:       kafkaClient,
		cfg:         cfg,
		otel:        otel,
	}
}

func filterByBookingID(bookingID, table string) gDto.FilterGroup {
	return shared.FilterByID(bookingID, model.FieldBookingID, table)
}

// Generate creates the bill for a booking with a single room charge covering
// the whole stay. At most one bill may exist per booking.
func (s *serviceImpl) Generate(ctx context.Context, bookingID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Generate")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.bookingRepo.Get(ctx, shared.FilterByID(bookingID, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	nights := NumberOfNights(booking.CheckInDate, booking.CheckOutDate)

	metadata := gModel.Metadata{
		CreatedAt:  timezone.Now(),
		ModifiedAt: timezone.Now(),
		CreatedBy:  user,
		ModifiedBy: user,
	}

	roomItem := model.BillItem{
		ID:          uuid.NewString(),
		BookingID:   bookingID,
		Description: fmt.Sprintf("Room %d (%s), %d night(s)", booking.RoomNumber, booking.RoomType, nights),
		Amount:      booking.RoomPrice,
		Quantity:    nights,
		Category:    model.CategoryRoom,
		Metadata:    metadata,
	}

	subtotal, taxAmount, total := ComputeTotals([]model.BillItem{roomItem}, s.cfg.Billing.TaxRatePercent)

	bill := model.Bill{
		ID:        uuid.NewString(),
		BookingID: bookingID,
		Subtotal:  subtotal,
		TaxRate:   s.cfg.Billing.TaxRatePercent,
		TaxAmount: taxAmount,
		Total:     total,
		IsPaid:    false,
		Metadata:  metadata,
	}

	err = s.txm.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		exists, err := s.billRepo.ExistTx(ctx, tx, filterByBookingID(bookingID, model.BillTableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to check if bill exists")

			return fmt.Errorf("failed to check if bill exists: %w", err)
		}

		if exists {
			return failure.Conflict("bill already exists for this booking") // nolint:wrapcheck
		}

		if err := s.itemRepo.InsertTx(ctx, tx, roomItem); err != nil {
			log.Error().Err(err).Msg("failed to create room charge")

			return fmt.Errorf("failed to create room charge: %w", err)
		}

		if err := s.billRepo.InsertTx(ctx, tx, bill); err != nil {
			log.Error().Err(err).Msg("failed to create bill")

			return fmt.Errorf("failed to create bill: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	scope.AddEvent("Bill generated for booking " + bookingID)

	return nil
}

// AddItem appends a line item and recomputes the bill's derived fields from
// every item now associated with the booking, inside one transaction.
func (s *serviceImpl) AddItem(ctx context.Context, bookingID string, req dto.AddBillItemRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AddItem")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	item := req.ToModel(bookingID, user)

	return s.txm.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		bill, err := s.billRepo.GetTx(ctx, tx, filterByBookingID(bookingID, model.BillTableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to get bill")

			return fmt.Errorf("failed to get bill: %w", err)
		}

		if bill.ID == constant.Empty {
			return failure.NotFound("bill not found for this booking") // nolint:wrapcheck
		}

		if err := s.itemRepo.InsertTx(ctx, tx, item); err != nil {
			log.Error().Err(err).Msg("failed to create bill item")

			return fmt.Errorf("failed to create bill item: %w", err)
		}

		items, err := s.itemRepo.GetAllTx(ctx, tx, filterByBookingID(bookingID, model.ItemTableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to get bill items")

			return fmt.Errorf("failed to get bill items: %w", err)
		}

		subtotal, taxAmount, total := ComputeTotals(items, bill.TaxRate)

		billUpdate := map[string]any{
			model.FieldSubtotal:      subtotal,
			model.FieldTaxAmount:     taxAmount,
			model.FieldTotal:         total,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: user,
		}

		if err := s.billRepo.UpdateTx(ctx, tx, billUpdate, shared.FilterByID(bill.ID, model.FieldID, model.BillTableName)); err != nil {
			log.Error().Err(err).Msg("failed to update bill totals")

			return fmt.Errorf("failed to update bill totals: %w", err)
		}

		return nil
	})
}

func (s *serviceImpl) Get(ctx context.Context, bookingID string) (res dto.BillResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	bill, err := s.billRepo.Get(ctx, filterByBookingID(bookingID, model.BillTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get bill")

		return res, fmt.Errorf("failed to get bill: %w", err)
	}

	if bill.ID == constant.Empty {
		return res, failure.NotFound("bill not found for this booking") // nolint:wrapcheck
	}

	booking, err := s.bookingRepo.Get(ctx, shared.FilterByID(bookingID, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	params := gDto.QueryParams{
		SortBy:  model.ItemTableName + "." + constant.FieldCreatedAt,
		SortDir: "ASC",
	}

	items, err := s.itemRepo.GetAll(ctx, params, filterByBookingID(bookingID, model.ItemTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get bill items")

		return res, fmt.Errorf("failed to get bill items: %w", err)
	}

	res.FromModel(bill, items)
	res.Booking.FromModel(booking)

	return res, nil
}

// Complete finalizes a stay. The archive snapshot, the room release and every
// row deletion commit together or not at all: the room is never released
// without a durable archive record, and the guest row never outlives its
// booking.
func (s *serviceImpl) Complete(ctx context.Context, bookingID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Complete")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	booking, err := s.bookingRepo.Get(ctx, shared.FilterByID(bookingID, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	bill, err := s.billRepo.Get(ctx, filterByBookingID(bookingID, model.BillTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get bill")

		return fmt.Errorf("failed to get bill: %w", err)
	}

	if bill.ID == constant.Empty {
		return failure.NotFound("bill not found for this booking") // nolint:wrapcheck
	}

	completedAt := timezone.Now()

	snapshot := archiveModel.ArchivedBill{
		ID:           uuid.NewString(),
		GuestName:    booking.GuestFullName(),
		Phone:        booking.GuestPhone,
		RoomNumber:   booking.RoomNumber,
		RoomType:     booking.RoomType,
		CheckInDate:  booking.CheckInDate,
		CheckOutDate: booking.CheckOutDate,
		Total:        bill.Total,
		CompletedAt:  completedAt,
		Metadata: gModel.Metadata{
			CreatedAt:  completedAt,
			ModifiedAt: completedAt,
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	err = s.txm.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := s.archiveRepo.InsertTx(ctx, tx, snapshot); err != nil {
			log.Error().Err(err).Msg("failed to archive bill")

			return fmt.Errorf("failed to archive bill: %w", err)
		}

		billUpdate := map[string]any{
			model.FieldIsPaid:        true,
			constant.FieldModifiedAt: completedAt,
			constant.FieldModifiedBy: user,
		}

		if err := s.billRepo.UpdateTx(ctx, tx, billUpdate, shared.FilterByID(bill.ID, model.FieldID, model.BillTableName)); err != nil {
			log.Error().Err(err).Msg("failed to mark bill paid")

			return fmt.Errorf("failed to mark bill paid: %w", err)
		}

		roomUpdate := map[string]any{
			roomModel.FieldStatus:    roomModel.StatusAvailable,
			constant.FieldModifiedAt: completedAt,
			constant.FieldModifiedBy: user,
		}

		if err := s.roomRepo.UpdateTx(ctx, tx, roomUpdate, shared.FilterByID(booking.RoomID, roomModel.FieldID, roomModel.TableName)); err != nil {
			log.Error().Err(err).Msg("failed to release room")

			return fmt.Errorf("failed to release room: %w", err)
		}

		if err := s.itemRepo.DeleteTx(ctx, tx, filterByBookingID(bookingID, model.ItemTableName)); err != nil {
			log.Error().Err(err).Msg("failed to delete bill items")

			return fmt.Errorf("failed to delete bill items: %w", err)
		}

		if err := s.billRepo.DeleteTx(ctx, tx, filterByBookingID(bookingID, model.BillTableName)); err != nil {
			log.Error().Err(err).Msg("failed to delete bill")

			return fmt.Errorf("failed to delete bill: %w", err)
		}

		if err := s.bookingRepo.DeleteTx(ctx, tx, shared.FilterByID(bookingID, bookingModel.FieldID, bookingModel.TableName)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking")

			return fmt.Errorf("failed to delete booking: %w", err)
		}

		if err := s.guestRepo.DeleteTx(ctx, tx, shared.FilterByID(booking.GuestID, guestModel.FieldID, guestModel.TableName)); err != nil {
			log.Error().Err(err).Msg("failed to delete guest")

			return fmt.Errorf("failed to delete guest: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	s.publishStayCompleted(booking, snapshot)
	scope.AddEvent("Stay completed for booking " + bookingID)

	return nil
}

// publishStayCompleted notifies downstream consumers after the completion
// transaction commits. Delivery is best effort; a broker failure must not
// fail an already committed stay.
func (s *serviceImpl) publishStayCompleted(booking bookingModel.Booking, snapshot archiveModel.ArchivedBill) {
	event := dto.StayCompletedEvent{
		BookingID:    booking.ID,
		GuestName:    snapshot.GuestName,
		RoomNumber:   snapshot.RoomNumber,
		RoomType:     snapshot.RoomType,
		CheckInDate:  snapshot.CheckInDate,
		CheckOutDate: snapshot.CheckOutDate,
		Total:        snapshot.Total,
		CompletedAt:  snapshot.CompletedAt,
	}

	message := kafka.Message{
		Key:   booking.ID,
		Value: event,
	}

	go func() {
		if err := s.kafka.SendMessages(context.Background(), s.cfg.Kafka.Topics.StayCompleted, message); err != nil {
			log.Error().Err(err).Str("booking_id", booking.ID).Msg("failed to publish stay completed event")
		}
	}()
}
