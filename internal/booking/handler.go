// AngelaMos | 2026
// handler.go

package booking

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/carterperez-dev/talentbook/internal/core"
)

type Handler struct {
	service   *Service
	validator *validator.Validate
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: core.NewValidator(),
	}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/bookings", func(r chi.Router) {
		r.Get("/", h.ListBookings)
		r.Post("/", h.CreateBooking)
		r.Get("/{bookingID}", h.GetBooking)
		r.Patch("/{bookingID}", h.UpdateBooking)
	})

	r.Route("/talents/{talentID}", func(r chi.Router) {
		r.Get("/slots", h.GetSlots)
		r.Post("/quote", h.GetQuote)
		r.Post("/booking-requests", h.SubmitBookingRequest)
	})
}

func (h *Handler) ListBookings(w http.ResponseWriter, r *http.Request) {
	params := ListBookingsParams{
		Page:   core.QueryInt(r, "page", DefaultPage),
		Limit:  core.QueryInt(r, "limit", DefaultLimit),
		Status: r.URL.Query().Get("status"),
	}
	params.Normalize()

	bookings, total, err := h.service.ListBookings(r.Context(), params)
	if err != nil {
		core.InternalServerError(w, err, "Failed to fetch bookings")
		return
	}

	core.OK(w, ListBookingsResponse{
		Bookings:   ToDetailResponseList(bookings),
		Pagination: core.NewPagination(params.Page, params.Limit, total),
	})
}

func (h *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if !h.decode(w, r, &req) {
		return
	}

	booking, err := h.service.CreateBooking(r.Context(), req)
	if err != nil {
		writeError(w, err, "Talent", "Failed to create booking")
		return
	}

	core.Created(w, map[string]any{"booking": ToBookingResponse(booking)})
}

func (h *Handler) GetBooking(w http.ResponseWriter, r *http.Request) {
	id, ok := core.URLParamInt64(r, "bookingID")
	if !ok {
		core.NotFound(w, "Booking")
		return
	}

	booking, err := h.service.GetBooking(r.Context(), id)
	if err != nil {
		writeError(w, err, "Booking", "Failed to fetch booking")
		return
	}

	core.OK(w, map[string]any{"booking": ToDetailResponse(booking)})
}

func (h *Handler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	id, ok := core.URLParamInt64(r, "bookingID")
	if !ok {
		core.NotFound(w, "Booking")
		return
	}

	var req UpdateBookingRequest
	if !h.decode(w, r, &req) {
		return
	}

	booking, err := h.service.UpdateBooking(r.Context(), id, req)
	if err != nil {
		writeError(w, err, "Booking", "Failed to update booking")
		return
	}

	core.OK(w, map[string]any{"booking": ToBookingResponse(booking)})
}

func (h *Handler) GetSlots(w http.ResponseWriter, r *http.Request) {
	talentID, ok := core.URLParamInt64(r, "talentID")
	if !ok {
		core.NotFound(w, "Talent")
		return
	}

	date := r.URL.Query().Get("date")
	slots, err := h.service.Slots(r.Context(), talentID, date)
	if err != nil {
		writeError(w, err, "Talent", "Failed to fetch availability")
		return
	}

	core.OK(w, SlotsResponse{TalentID: talentID, Date: date, Slots: slots})
}

func (h *Handler) GetQuote(w http.ResponseWriter, r *http.Request) {
	talentID, ok := core.URLParamInt64(r, "talentID")
	if !ok {
		core.NotFound(w, "Talent")
		return
	}

	var req QuoteRequest
	if !h.decode(w, r, &req) {
		return
	}

	quote, err := h.service.Quote(r.Context(), talentID, req)
	if err != nil {
		writeError(w, err, "Talent", "Failed to calculate quote")
		return
	}

	core.OK(w, map[string]any{"quote": quote})
}

func (h *Handler) SubmitBookingRequest(w http.ResponseWriter, r *http.Request) {
	talentID, ok := core.URLParamInt64(r, "talentID")
	if !ok {
		core.NotFound(w, "Talent")
		return
	}

	var req SubmitRequest
	if !h.decode(w, r, &req) {
		return
	}

	booking, quote, err := h.service.Submit(r.Context(), talentID, req)
	if err != nil {
		writeError(w, err, "Talent", "Failed to submit booking request")
		return
	}

	core.Created(w, SubmitResponse{
		Booking: ToBookingResponse(booking),
		Quote:   quote,
	})
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		core.BadRequest(w, "invalid request body")
		return false
	}

	if err := h.validator.Struct(dst); err != nil {
		core.BadRequest(w, core.FormatValidationError(err))
		return false
	}

	return true
}

func writeError(w http.ResponseWriter, err error, resource, message string) {
	var incomplete *IncompleteStepError

	switch {
	case errors.Is(err, core.ErrNotFound):
		core.NotFound(w, resource)
	case errors.As(err, &incomplete):
		core.BadRequest(w, incomplete.Error())
	case errors.Is(err, core.ErrConflict):
		core.Conflict(w, "Talent is already booked for that time")
	case errors.Is(err, core.ErrInvalidInput):
		core.BadRequest(w, err.Error())
	default:
		core.InternalServerError(w, err, message)
	}
}
