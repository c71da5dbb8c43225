package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotelier/config"
	"hotelier/infras/otel/mocks"
	guestMocks "hotelier/internal/domains/guest/mocks"
	"hotelier/internal/domains/guest/model"
	"hotelier/internal/domains/guest/model/dto"
	"hotelier/internal/domains/guest/service"
	"hotelier/shared/constant"
	"hotelier/shared/failure"
	gDto "hotelier/shared/dto"
)

func TestGuestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := guestMocks.NewMockGuest(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, cfg, mockOtel)

	tests := []struct {
		name      string
		req       dto.CreateGuestRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful create",
			req: dto.CreateGuestRequest{
				FirstName: "Ada",
				LastName:  "Lovelace",
				Email:     "ada@example.com",
				Phone:     "+628123456789",
				IDNumber:  "ID-001",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, guest model.Guest) error {
						assert.Equal(t, "Ada", guest.FirstName)
						assert.Equal(t, "ID-001", guest.IDNumber)
						assert.NotEmpty(t, guest.ID)

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "duplicate id number",
			req: dto.CreateGuestRequest{
				FirstName: "Ada",
				LastName:  "Lovelace",
				IDNumber:  "ID-001",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (bool, error) {
						assert.Len(t, filter.Filters, 1)

						idNumberFilter, ok := filter.Filters[0].(gDto.Filter)
						assert.True(t, ok)
						assert.Equal(t, model.FieldIDNumber, idNumberFilter.Field)
						assert.Equal(t, "ID-001", idNumberFilter.Value)

						return true, nil
					})
			},
			wantErr:  true,
			wantCode: 409,
		},
		{
			name: "insert failure",
			req: dto.CreateGuestRequest{
				FirstName: "Ada",
				LastName:  "Lovelace",
				IDNumber:  "ID-001",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
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

func TestGuestService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := guestMocks.NewMockGuest(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, cfg, mockOtel)

	t.Run("found", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Guest{ID: "guest-id-1", FirstName: "Ada", LastName: "Lovelace"}, nil)

		res, err := svc.Get(context.Background(), "guest-id-1")
		assert.NoError(t, err)
		assert.Equal(t, "guest-id-1", res.ID)
	})

	t.Run("not found", func(t *testing.T) {
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Guest{}, nil)

		_, err := svc.Get(context.Background(), "missing-id")
		assert.Error(t, err)
		assert.Equal(t, 404, failure.GetCode(err))
	})
}

func TestGuestService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := guestMocks.NewMockGuest(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, cfg, mockOtel)

	guests := []model.Guest{
		{ID: "guest-id-1", FirstName: "Ada", LastName: "Lovelace"},
		{ID: "guest-id-2", FirstName: "Grace", LastName: "Hopper"},
	}

	mockRepo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(2, nil)

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(guests, nil)

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})
	assert.NoError(t, err)
	assert.Len(t, res.Guests, 2)
	assert.Equal(t, 2, res.TotalData)
	assert.Equal(t, 1, res.TotalPage)
}
