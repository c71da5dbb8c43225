package guest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	otelMocks "hotelier/infras/otel/mocks"
	"hotelier/internal/domains/guest/model"
	"hotelier/internal/domains/guest/model/dto"
	"hotelier/internal/domains/guest/service/mocks"
	gDto "hotelier/shared/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHandler_GetGuests(t *testing.T) {
	t.Run("lists every guest when no query parameters are supplied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := mocks.NewMockGuest(ctrl)
		handler := New(mockService, otelMocks.NewOtel())

		mockService.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup) (dto.GetGuestsResponse, error) {
				assert.Empty(t, filter.Filters)

				return dto.GetGuestsResponse{}, nil
			})

		request := httptest.NewRequest(http.MethodGet, "/v1/guests/", nil)
		recorder := httptest.NewRecorder()

		handler.GetGuests(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("filters by last name and id number when provided", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := mocks.NewMockGuest(ctrl)
		handler := New(mockService, otelMocks.NewOtel())

		mockService.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup) (dto.GetGuestsResponse, error) {
				require.Len(t, filter.Filters, 2)

				lastNameFilter, ok := filter.Filters[0].(gDto.Filter)
				require.True(t, ok)
				assert.Equal(t, model.FieldLastName, lastNameFilter.Field)
				assert.Equal(t, gDto.FilterOperatorLike, lastNameFilter.Operator)
				assert.Equal(t, "Doe", lastNameFilter.Value)

				idNumberFilter, ok := filter.Filters[1].(gDto.Filter)
				require.True(t, ok)
				assert.Equal(t, model.FieldIDNumber, idNumberFilter.Field)
				assert.Equal(t, "ID-123", idNumberFilter.Value)

				return dto.GetGuestsResponse{}, nil
			})

		request := httptest.NewRequest(http.MethodGet, "/v1/guests/?last_name=Doe&id_number=ID-123", nil)
		recorder := httptest.NewRecorder()

		handler.GetGuests(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}
