package billing

import (
	"net/http"

	"hotelier/infras/otel"
	"hotelier/internal/domains/billing/model/dto"
	"hotelier/internal/domains/billing/service"
	"hotelier/shared/constant"
	"hotelier/shared/validator"
	"hotelier/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Billing
	otel    otel.Otel
}

func New(service service.Billing, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings/{id}/bill", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.GenerateBill)
		routerGroup.Get("/", handler.GetBill)
		routerGroup.Post("/items", handler.AddBillItem)
		routerGroup.Post("/complete", handler.CompleteBill)
	})
}

// GenerateBill creates the bill for a booking.
// @Summary Generate a bill
// @Description Generate the bill for a booking with the room charge for the whole stay.
// @Tags Billing
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 201 {object} response.Message "Bill generated successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/bill [post]
// @Security BearerAuth
func (handler *Handler) GenerateBill(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GenerateBill")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Generate(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to generate bill")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bill generated successfully")

	response.WithMessage(w, http.StatusCreated, "Bill generated successfully")
}

// GetBill retrieves the bill for a booking.
// @Summary Get a booking's bill
// @Description Retrieve the bill with its items and booking details.
// @Tags Billing
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BillResponse] "Bill details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/bill [get]
// @Security BearerAuth
func (handler *Handler) GetBill(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBill")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	bill, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bill")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bill retrieved successfully")

	response.WithJSON(w, http.StatusOK, bill)
}

// AddBillItem appends a line item to the bill.
// @Summary Add a bill item
// @Description Append a line item to the booking's bill and recompute its totals.
// @Tags Billing
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.AddBillItemRequest true "Add Bill Item Request"
// @Success 201 {object} response.Message "Bill item added successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/bill/items [post]
// @Security BearerAuth
func (handler *Handler) AddBillItem(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddBillItem")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.AddBillItemRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.AddItem(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add bill item")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bill item added successfully")

	response.WithMessage(w, http.StatusCreated, "Bill item added successfully")
}

// CompleteBill finalizes the stay for a booking.
// @Summary Complete a bill
// @Description Archive the bill, release the room and remove the live booking records.
// @Tags Billing
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message "Stay completed successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/bill/complete [post]
// @Security BearerAuth
func (handler *Handler) CompleteBill(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CompleteBill")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Complete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to complete bill")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Stay completed successfully")

	response.WithMessage(w, http.StatusOK, "Stay completed successfully")
}
