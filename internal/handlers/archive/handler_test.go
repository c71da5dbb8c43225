package archive

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	otelMocks "hotelier/infras/otel/mocks"
	"hotelier/internal/domains/archive/model"
	"hotelier/internal/domains/archive/model/dto"
	"hotelier/internal/domains/archive/service/mocks"
	gDto "hotelier/shared/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHandler_GetArchivedBills(t *testing.T) {
	t.Run("lists every archived bill most recent first when no query parameters are supplied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := mocks.NewMockArchive(ctrl)
		handler := New(mockService, otelMocks.NewOtel())

		mockService.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetArchivedBillsResponse, error) {
				assert.Empty(t, filter.Filters)
				assert.Equal(t, model.TableName+"."+model.FieldCompletedAt, params.SortBy)
				assert.Equal(t, gDto.SortDirDesc, params.SortDir)

				return dto.GetArchivedBillsResponse{}, nil
			})

		request := httptest.NewRequest(http.MethodGet, "/v1/archives/", nil)
		recorder := httptest.NewRecorder()

		handler.GetArchivedBills(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("filters by room number when provided", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockService := mocks.NewMockArchive(ctrl)
		handler := New(mockService, otelMocks.NewOtel())

		mockService.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup) (dto.GetArchivedBillsResponse, error) {
				require.Len(t, filter.Filters, 1)

				roomNumberFilter, ok := filter.Filters[0].(gDto.Filter)
				require.True(t, ok)
				assert.Equal(t, model.FieldRoomNumber, roomNumberFilter.Field)
				assert.Equal(t, "101", roomNumberFilter.Value)

				return dto.GetArchivedBillsResponse{}, nil
			})

		request := httptest.NewRequest(http.MethodGet, "/v1/archives/?room_number=101", nil)
		recorder := httptest.NewRecorder()

		handler.GetArchivedBills(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}
