package user

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	otelMocks "hotelier/infras/otel/mocks"
	"hotelier/internal/domains/user/model"
	"hotelier/internal/domains/user/model/dto"
	"hotelier/internal/domains/user/service/mocks"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHandler_GetUsers(t *testing.T) {
	t.Run("lists every user when no query parameters are supplied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := mocks.NewMockUser(ctrl)
		handler := New(mockService, otelMocks.NewOtel())

		mockService.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup) (dto.GetUsersResponse, error) {
				assert.Empty(t, filter.Filters)

				return dto.GetUsersResponse{}, nil
			})

		request := httptest.NewRequest(http.MethodGet, "/v1/users/", nil)
		recorder := httptest.NewRecorder()

		handler.GetUsers(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("filters by level when provided", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := mocks.NewMockUser(ctrl)
		handler := New(mockService, otelMocks.NewOtel())

		mockService.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup) (dto.GetUsersResponse, error) {
				require.Len(t, filter.Filters, 1)

				levelFilter, ok := filter.Filters[0].(gDto.Filter)
				require.True(t, ok)
				assert.Equal(t, model.FieldLevel, levelFilter.Field)
				assert.Equal(t, constant.RoleStaff, levelFilter.Value)

				return dto.GetUsersResponse{}, nil
			})

		request := httptest.NewRequest(http.MethodGet, "/v1/users/?level=staff", nil)
		recorder := httptest.NewRecorder()

		handler.GetUsers(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}
