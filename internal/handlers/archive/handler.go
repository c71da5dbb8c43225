package archive

import (
	"net/http"

	"hotelier/infras/otel"
	"hotelier/internal/domains/archive/model"
	"hotelier/internal/domains/archive/service"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Archive
	otel    otel.Otel
}

func New(service service.Archive, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/archives", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetArchivedBills)
	})
}

// GetArchivedBills retrieves completed stays, most recent first.
// @Summary Get archived bills
// @Description Retrieve archived bills of completed stays with pagination, most recent first.
// @Tags Archive
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param room_number query string false "Filter by room number"
// @Success 200 {object} dto.GetArchivedBillsResponse "List of archived bills"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/archives [get]
// @Security BearerAuth
func (handler *Handler) GetArchivedBills(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetArchivedBills")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	if queryParams.SortBy == constant.Empty {
		queryParams.SortBy = model.TableName + "." + model.FieldCompletedAt
		queryParams.SortDir = gDto.SortDirDesc
	}

	roomNumber := r.URL.Query().Get(model.FieldRoomNumber)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	// Only add filters if the values are non-empty
	if roomNumber != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldRoomNumber,
			Operator: gDto.FilterOperatorEq,
			Value:    roomNumber,
			Table:    model.TableName,
		})
	}

	archives, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get archived bills")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Archived bills retrieved successfully")

	response.WithJSON(w, http.StatusOK, archives)
}
