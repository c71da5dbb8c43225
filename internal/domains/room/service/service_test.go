package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotelier/config"
	"hotelier/infras/otel/mocks"
	s3Mocks "hotelier/infras/s3/mocks"
	roomMocks "hotelier/internal/domains/room/mocks"
	"hotelier/internal/domains/room/model"
	"hotelier/internal/domains/room/model/dto"
	"hotelier/internal/domains/room/service"
	"hotelier/shared/constant"
	"hotelier/shared/failure"
)

func TestRoomService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, cfg, mockOtel, mockS3)

	validReq := dto.CreateRoomRequest{
		Number:        101,
		Type:          "standard",
		Capacity:      2,
		PricePerNight: 100,
		Floor:         1,
		Amenities:     []string{"wifi", "tv"},
	}

	tests := []struct {
		name      string
		req       dto.CreateRoomRequest
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful create without photo",
			req:  validReq,
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, room model.Room) error {
						assert.Equal(t, 101, room.Number)
						assert.Equal(t, model.StatusAvailable, room.Status)

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "room number already exists",
			req:  validReq,
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr:  true,
			wantCode: 409,
		},
		{
			name: "concurrent create loses on unique index",
			req:  validReq,
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(&pq.Error{Code: pq.ErrorCode(constant.PqErrorCodeUniqueViolation)})
			},
			wantErr:  true,
			wantCode: 409,
		},
		{
			name: "insert failure",
			req:  validReq,
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

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")
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

func TestRoomService_UpdateStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, cfg, mockOtel, mockS3)

	tests := []struct {
		name       string
		roomStatus string
		req        dto.UpdateRoomStatusRequest
		setupMock  func(room model.Room)
		wantErr    bool
		wantCode   int
	}{
		{
			name:       "available to maintenance",
			roomStatus: model.StatusAvailable,
			req:        dto.UpdateRoomStatusRequest{Status: model.StatusMaintenance},
			setupMock: func(room model.Room) {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(room, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name:       "maintenance back to available",
			roomStatus: model.StatusMaintenance,
			req:        dto.UpdateRoomStatusRequest{Status: model.StatusAvailable},
			setupMock: func(room model.Room) {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(room, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name:       "occupied room cannot be toggled",
			roomStatus: model.StatusOccupied,
			req:        dto.UpdateRoomStatusRequest{Status: model.StatusMaintenance},
			setupMock: func(room model.Room) {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(room, nil)
			},
			wantErr:  true,
			wantCode: 409,
		},
		{
			name:       "reserved room cannot be toggled",
			roomStatus: model.StatusReserved,
			req:        dto.UpdateRoomStatusRequest{Status: model.StatusMaintenance},
			setupMock: func(room model.Room) {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(room, nil)
			},
			wantErr:  true,
			wantCode: 409,
		},
		{
			name:       "room not found",
			roomStatus: constant.Empty,
			req:        dto.UpdateRoomStatusRequest{Status: model.StatusMaintenance},
			setupMock: func(_ model.Room) {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Room{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			room := model.Room{
				ID:     "room-id-101",
				Number: 101,
				Status: tt.roomStatus,
			}

			tt.setupMock(room)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")
			err := svc.UpdateStatus(ctx, tt.req, "room-id-101")

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

func TestRoomService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.External.S3.BucketName = "hotelier-assets"

	svc := service.New(mockRepo, cfg, mockOtel, mockS3)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "available room is deleted and photo cleaned up",
			setupMock: func() {
				room := model.Room{
					ID:     "room-id-101",
					Number: 101,
					Status: model.StatusAvailable,
					Photo:  "https://cdn.example.com/room/photo.png",
				}

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(room, nil)

				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)

				mockS3.EXPECT().
					GetObjectNameFromURL("hotelier-assets", room.Photo).
					Return("photo.png")

				mockS3.EXPECT().
					DeleteFile(gomock.Any(), "hotelier-assets", model.EntityName, "photo.png").
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "occupied room cannot be deleted",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Room{ID: "room-id-101", Status: model.StatusOccupied}, nil)
			},
			wantErr:  true,
			wantCode: 409,
		},
		{
			name: "reserved room cannot be deleted",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Room{ID: "room-id-101", Status: model.StatusReserved}, nil)
			},
			wantErr:  true,
			wantCode: 409,
		},
		{
			name: "room not found",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Room{}, nil)
			},
			wantErr:  true,
			wantCode: 404,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-1")
			err := svc.Delete(ctx, "room-id-101")

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
