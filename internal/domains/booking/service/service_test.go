package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotelier/config"
	"hotelier/infras/otel/mocks"
	txMocks "hotelier/infras/postgres/mocks"
	billingMocks "hotelier/internal/domains/billing/mocks"
	bookingMocks "hotelier/internal/domains/booking/mocks"
	"hotelier/internal/domains/booking/model"
	"hotelier/internal/domains/booking/model/dto"
	"hotelier/internal/domains/booking/service"
	guestMocks "hotelier/internal/domains/guest/mocks"
	roomMocks "hotelier/internal/domains/room/mocks"
	roomModel "hotelier/internal/domains/room/model"
	"hotelier/shared/constant"
	"hotelier/shared/failure"
	gModel "hotelier/shared/model"
	"hotelier/shared/timezone"
)

func passThroughTx(mockTxm *txMocks.MockTransactor) {
	mockTxm.EXPECT().
		WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(*sqlx.Tx) error) error {
			return fn(nil)
		})
}

func TestBookingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockGuestRepo := guestMocks.NewMockGuest(ctrl)
	mockBillRepo := billingMocks.NewMockBill(ctrl)
	mockTxm := txMocks.NewMockTransactor(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockRoomRepo, mockGuestRepo, mockBillRepo, mockTxm, cfg, mockOtel)

	availableRoom := roomModel.Room{
		ID:       "room-id-101",
		Number:   101,
		Type:     "double",
		Capacity: 2,
		Status:   roomModel.StatusAvailable,
	}

	validReq := dto.CreateBookingRequest{
		GuestID:        "guest-id-1",
		RoomID:         "room-id-101",
		CheckInDate:    "2026-09-01",
		CheckOutDate:   "2026-09-03",
		NumberOfGuests: 2,
	}

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful booking reserves the room",
			req:  validReq,
			setupMock: func() {
				mockGuestRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				passThroughTx(mockTxm)

				mockRoomRepo.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(availableRoom, nil)

				mockRepo.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, booking model.Booking) error {
						assert.Equal(t, model.StatusReserved, booking.Status)
						assert.Equal(t, "room-id-101", booking.RoomID)

						return nil
					})

				mockRoomRepo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, update map[string]any, _ any) error {
						assert.Equal(t, roomModel.StatusReserved, update[roomModel.FieldStatus])

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "invalid date format",
			req: dto.CreateBookingRequest{
				GuestID:        "guest-id-1",
				RoomID:         "room-id-101",
				CheckInDate:    "01-09-2026",
				CheckOutDate:   "2026-09-03",
				NumberOfGuests: 2,
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name: "check-out not after check-in",
			req: dto.CreateBookingRequest{
				GuestID:        "guest-id-1",
				RoomID:         "room-id-101",
				CheckInDate:    "2026-09-03",
				CheckOutDate:   "2026-09-03",
				NumberOfGuests: 2,
			},
			setupMock: func() {},
			wantErr:   true,
			wantCode:  400,
		},
		{
			name: "guest not found",
			req:  validReq,
			setupMock: func() {
				mockGuestRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name: "room not found",
			req:  validReq,
			setupMock: func() {
				mockGuestRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				passThroughTx(mockTxm)

				mockRoomRepo.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(roomModel.Room{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name: "party larger than room capacity writes nothing",
			req: dto.CreateBookingRequest{
				GuestID:        "guest-id-1",
				RoomID:         "room-id-101",
				CheckInDate:    "2026-09-01",
				CheckOutDate:   "2026-09-03",
				NumberOfGuests: 5,
			},
			setupMock: func() {
				mockGuestRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				passThroughTx(mockTxm)

				mockRoomRepo.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(availableRoom, nil)
			},
			wantErr:  true,
			wantCode: 400,
		},
		{
			name: "room not available",
			req:  validReq,
			setupMock: func() {
				occupiedRoom := availableRoom
				occupiedRoom.Status = roomModel.StatusOccupied

				mockGuestRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				passThroughTx(mockTxm)

				mockRoomRepo.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(occupiedRoom, nil)
			},
			wantErr:  true,
			wantCode: 409,
		},
		{
			name: "insert failure rolls back",
			req:  validReq,
			setupMock: func() {
				mockGuestRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				passThroughTx(mockTxm)

				mockRoomRepo.EXPECT().
					GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(availableRoom, nil)

				mockRepo.EXPECT().
					InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("insert failed"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "staff-1")
			err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_CheckIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockGuestRepo := guestMocks.NewMockGuest(ctrl)
	mockBillRepo := billingMocks.NewMockBill(ctrl)
	mockTxm := txMocks.NewMockTransactor(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockRoomRepo, mockGuestRepo, mockBillRepo, mockTxm, cfg, mockOtel)

	reservedBooking := model.Booking{
		ID:     "booking-id-1",
		RoomID: "room-id-101",
		Status: model.StatusReserved,
		Metadata: gModel.Metadata{
			CreatedAt: timezone.Now(),
		},
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful check-in marks room occupied",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(reservedBooking, nil)

				mockBillRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				passThroughTx(mockTxm)

				mockRepo.EXPECT().
					UpdateTxAffected(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(int64(1), nil)

				mockRoomRepo.EXPECT().
					UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, update map[string]any, _ any) error {
						assert.Equal(t, roomModel.StatusOccupied, update[roomModel.FieldStatus])

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "booking not found",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name: "bill already exists",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(reservedBooking, nil)

				mockBillRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr:  true,
			wantCode: 409,
		},
		{
			name: "booking no longer reserved",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(reservedBooking, nil)

				mockBillRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				passThroughTx(mockTxm)

				mockRepo.EXPECT().
					UpdateTxAffected(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(int64(0), nil)
			},
			wantErr:  true,
			wantCode: 409,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "staff-1")
			err := svc.CheckIn(ctx, "booking-id-1")

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_CheckOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockGuestRepo := guestMocks.NewMockGuest(ctrl)
	mockBillRepo := billingMocks.NewMockBill(ctrl)
	mockTxm := txMocks.NewMockTransactor(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockRoomRepo, mockGuestRepo, mockBillRepo, mockTxm, cfg, mockOtel)

	checkedInBooking := model.Booking{
		ID:     "booking-id-1",
		RoomID: "room-id-101",
		Status: model.StatusCheckedIn,
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			// The room keeps its occupied status until billing completes,
			// so no room update may happen here.
			name: "successful check-out leaves room untouched",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(checkedInBooking, nil)

				passThroughTx(mockTxm)

				mockRepo.EXPECT().
					UpdateTxAffected(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, update map[string]any, _ any) (int64, error) {
						assert.Equal(t, model.StatusCheckedOut, update[model.FieldStatus])

						return 1, nil
					})
			},
			wantErr: false,
		},
		{
			name: "booking not found",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
		{
			name: "booking not checked in",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(checkedInBooking, nil)

				passThroughTx(mockTxm)

				mockRepo.EXPECT().
					UpdateTxAffected(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(int64(0), nil)
			},
			wantErr:  true,
			wantCode: 409,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "staff-1")
			err := svc.CheckOut(ctx, "booking-id-1")

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
