package room

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	otelMocks "hotelier/infras/otel/mocks"
	"hotelier/internal/domains/room/model"
	"hotelier/internal/domains/room/model/dto"
	"hotelier/internal/domains/room/service/mocks"
	gDto "hotelier/shared/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHandler_GetRooms(t *testing.T) {
	t.Run("lists every room when no query parameters are supplied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := mocks.NewMockRoom(ctrl)
		handler := New(mockService, otelMocks.NewOtel())

		mockService.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRoomsResponse, error) {
				assert.Empty(t, filter.Filters)

				return dto.GetRoomsResponse{}, nil
			})

		request := httptest.NewRequest(http.MethodGet, "/v1/rooms/", nil)
		recorder := httptest.NewRecorder()

		handler.GetRooms(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("filters by status and type when provided", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := mocks.NewMockRoom(ctrl)
		handler := New(mockService, otelMocks.NewOtel())

		mockService.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRoomsResponse, error) {
				require.Len(t, filter.Filters, 2)

				statusFilter, ok := filter.Filters[0].(gDto.Filter)
				require.True(t, ok)
				assert.Equal(t, model.FieldStatus, statusFilter.Field)
				assert.Equal(t, model.StatusAvailable, statusFilter.Value)

				typeFilter, ok := filter.Filters[1].(gDto.Filter)
				require.True(t, ok)
				assert.Equal(t, model.FieldType, typeFilter.Field)
				assert.Equal(t, "double", typeFilter.Value)

				return dto.GetRoomsResponse{}, nil
			})

		request := httptest.NewRequest(http.MethodGet, "/v1/rooms/?status=available&type=double", nil)
		recorder := httptest.NewRecorder()

		handler.GetRooms(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}
