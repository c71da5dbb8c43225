package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotelier/infras/otel/mocks"
	archiveMocks "hotelier/internal/domains/archive/mocks"
	bookingMocks "hotelier/internal/domains/booking/mocks"
	"hotelier/internal/domains/dashboard/service"
	guestMocks "hotelier/internal/domains/guest/mocks"
	roomMocks "hotelier/internal/domains/room/mocks"
	gDto "hotelier/shared/dto"
	"hotelier/shared/timezone"
)

func TestDashboardService_Stats(t *testing.T) {
	t.Run("aggregates counters and monthly revenue", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRoomRepo := roomMocks.NewMockRoom(ctrl)
		mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
		mockGuestRepo := guestMocks.NewMockGuest(ctrl)
		mockArchiveRepo := archiveMocks.NewMockArchive(ctrl)
		mockOtel := mocks.NewOtel()

		svc := service.New(mockRoomRepo, mockBookingRepo, mockGuestRepo, mockArchiveRepo, mockOtel)

		mockRoomRepo.EXPECT().
			Count(gomock.Any(), gDto.FilterGroup{}).
			Return(20, nil)

		mockRoomRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(12, nil)

		mockBookingRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(5, nil)

		mockGuestRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(8, nil)

		mockArchiveRepo.EXPECT().
			RevenueSince(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, since time.Time) (float64, error) {
				now := timezone.ToAppTime(timezone.Now())

				assert.Equal(t, now.Year(), since.Year())
				assert.Equal(t, now.Month(), since.Month())
				assert.Equal(t, 1, since.Day())
				assert.Equal(t, 0, since.Hour())

				return 1234.56, nil
			})

		res, err := svc.Stats(context.Background())
		assert.NoError(t, err)
		assert.Equal(t, 20, res.TotalRooms)
		assert.Equal(t, 12, res.AvailableRooms)
		assert.Equal(t, 5, res.ReservedBookings)
		assert.Equal(t, 8, res.TotalGuests)
		assert.Equal(t, 1234.56, res.MonthlyRevenue)
	})

	t.Run("revenue query failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRoomRepo := roomMocks.NewMockRoom(ctrl)
		mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
		mockGuestRepo := guestMocks.NewMockGuest(ctrl)
		mockArchiveRepo := archiveMocks.NewMockArchive(ctrl)
		mockOtel := mocks.NewOtel()

		svc := service.New(mockRoomRepo, mockBookingRepo, mockGuestRepo, mockArchiveRepo, mockOtel)

		mockRoomRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(20, nil).Times(2)
		mockBookingRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(5, nil)
		mockGuestRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(8, nil)

		mockArchiveRepo.EXPECT().
			RevenueSince(gomock.Any(), gomock.Any()).
			Return(float64(0), errors.New("query failed"))

		_, err := svc.Stats(context.Background())
		assert.Error(t, err)
	})
}
