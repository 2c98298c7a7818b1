package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"spacebook-backend/internal/domain"
	"spacebook-backend/internal/service"
)

type BookingHandler struct {
	bookingSvc service.BookingService
}

func NewBookingHandler(bookingSvc service.BookingService) *BookingHandler {
	return &BookingHandler{bookingSvc: bookingSvc}
}

type createBookingRequest struct {
	BookingDate string `json:"booking_date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(r)
	if !ok {
		writeError(w, domain.ErrUnauthorized)
		return
	}
	spaceID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req createBookingRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	booking, err := h.bookingSvc.CreateBooking(r.Context(), actor, spaceID, req.BookingDate, req.StartTime, req.EndTime)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, booking)
}

func (h *BookingHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(r)
	if !ok {
		writeError(w, domain.ErrUnauthorized)
		return
	}
	bookings, err := h.bookingSvc.ListMyBookings(r.Context(), actor)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bookings)
}

func (h *BookingHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(r)
	if !ok {
		writeError(w, domain.ErrUnauthorized)
		return
	}
	bookings, err := h.bookingSvc.ListPendingBookings(r.Context(), actor)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bookings)
}

func (h *BookingHandler) Report(w http.ResponseWriter, r *http.Request) {
	actor, ok := actorFrom(r)
	if !ok {
		writeError(w, domain.ErrUnauthorized)
		return
	}
	report, err := h.bookingSvc.BookingReport(r.Context(), actor, r.URL.Query().Get("start_date"), r.URL.Query().Get("end_date"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *BookingHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.bookingSvc.ApproveBooking)
}

func (h *BookingHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.bookingSvc.RejectBooking)
}

func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.bookingSvc.CancelBooking)
}

func (h *BookingHandler) StartPayment(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.bookingSvc.StartPayment)
}

func (h *BookingHandler) ConfirmPayment(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.bookingSvc.ConfirmPayment)
}

// transition runs a state-change action. A stale or duplicate request
// gets a 200 echo of the booking's current state rather than an error,
// so repeated clicks behave as no-ops.
func (h *BookingHandler) transition(
	w http.ResponseWriter,
	r *http.Request,
	action func(ctx context.Context, actor domain.Actor, bookingID int32) (*domain.Booking, error),
) {
	actor, ok := actorFrom(r)
	if !ok {
		writeError(w, domain.ErrUnauthorized)
		return
	}
	bookingID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	booking, err := action(r.Context(), actor, bookingID)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidTransition) && booking != nil {
			writeJSON(w, http.StatusOK, booking)
			return
		}
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

func pathID(r *http.Request, name string) (int32, error) {
	id, err := strconv.Atoi(mux.Vars(r)[name])
	if err != nil || id <= 0 {
		return 0, domain.ErrValidation
	}
	return int32(id), nil
}
