package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotelier/config"
	"hotelier/infras/otel/mocks"
	archiveMocks "hotelier/internal/domains/archive/mocks"
	"hotelier/internal/domains/archive/model"
	"hotelier/internal/domains/archive/service"
	gDto "hotelier/shared/dto"
)

func TestArchiveService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := archiveMocks.NewMockArchive(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, cfg, mockOtel)

	archived := []model.ArchivedBill{
		{
			ID:          "archive-id-1",
			GuestName:   "Ada Lovelace",
			RoomNumber:  101,
			RoomType:    "double",
			Total:       236.50,
			CompletedAt: time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC),
		},
	}

	mockRepo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(1, nil)

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(archived, nil)

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})
	assert.NoError(t, err)
	assert.Len(t, res.ArchivedBills, 1)
	assert.Equal(t, "Ada Lovelace", res.ArchivedBills[0].GuestName)
	assert.Equal(t, 1, res.TotalData)
}

func TestArchiveService_RevenueSince(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := archiveMocks.NewMockArchive(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, cfg, mockOtel)

	since := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	t.Run("returns the repository sum", func(t *testing.T) {
		mockRepo.EXPECT().
			RevenueSince(gomock.Any(), since).
			Return(1234.56, nil)

		revenue, err := svc.RevenueSince(context.Background(), since)
		assert.NoError(t, err)
		assert.Equal(t, 1234.56, revenue)
	})

	t.Run("repository failure", func(t *testing.T) {
		mockRepo.EXPECT().
			RevenueSince(gomock.Any(), since).
			Return(float64(0), errors.New("query failed"))

		_, err := svc.RevenueSince(context.Background(), since)
		assert.Error(t, err)
	})
}
