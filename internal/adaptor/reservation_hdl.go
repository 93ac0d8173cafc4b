package adaptor

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"seat-reservation/internal/data/registry"
	"seat-reservation/internal/dto/request"
	"seat-reservation/internal/usecase"
	"seat-reservation/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ReservationHandler struct {
	service usecase.ReservationService
	log     *zap.Logger
}

func NewReservationHandler(service usecase.ReservationService, log *zap.Logger) *ReservationHandler {
	return &ReservationHandler{
		service: service,
		log:     log.With(zap.String("handler", "reservation")),
	}
}

// ListSeats handles GET /api/seats
func (h *ReservationHandler) ListSeats(w http.ResponseWriter, r *http.Request) {
	seats, err := h.service.ListSeats(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "list seats")
		return
	}

	utils.ResponseSuccess(w, "success", seats)
}

// LockSeat handles POST /api/seats/{id}/lock
func (h *ReservationHandler) LockSeat(w http.ResponseWriter, r *http.Request) {
	seatID, ok := h.seatIDFromURL(w, r)
	if !ok {
		return
	}

	var req request.LockSeatRequest
	if !h.decodeOptionalBody(w, r, &req) {
		return
	}

	result, err := h.service.LockSeat(r.Context(), seatID, &req)
	if err != nil {
		h.handleServiceError(w, err, "lock seat")
		return
	}

	utils.ResponseSuccess(w, "seat locked", result)
}

// ConfirmSeat handles POST /api/seats/{id}/confirm
func (h *ReservationHandler) ConfirmSeat(w http.ResponseWriter, r *http.Request) {
	seatID, ok := h.seatIDFromURL(w, r)
	if !ok {
		return
	}

	var req request.ConfirmSeatRequest
	if !h.decodeOptionalBody(w, r, &req) {
		return
	}

	result, err := h.service.ConfirmSeat(r.Context(), seatID, &req)
	if err != nil {
		h.handleServiceError(w, err, "confirm seat")
		return
	}

	utils.ResponseSuccess(w, "seat booked", result)
}

// ReleaseSeat handles POST /api/seats/{id}/release (administrative)
func (h *ReservationHandler) ReleaseSeat(w http.ResponseWriter, r *http.Request) {
	seatID, ok := h.seatIDFromURL(w, r)
	if !ok {
		return
	}

	result, err := h.service.ReleaseSeat(r.Context(), seatID)
	if err != nil {
		h.handleServiceError(w, err, "release seat")
		return
	}

	utils.ResponseSuccess(w, "seat released", result)
}

// seatIDFromURL parses the {id} route param. A non-numeric or non-positive
// id is a malformed request, not an unknown seat.
func (h *ReservationHandler) seatIDFromURL(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := chi.URLParam(r, "id")

	seatID, err := strconv.Atoi(raw)
	if err != nil || seatID <= 0 {
		utils.ResponseBadRequest(w, "Seat ID must be a positive integer", nil)
		return 0, false
	}

	return seatID, true
}

// decodeOptionalBody decodes a JSON body into dst. An absent or empty body
// is fine; the caller id then defaults downstream.
func (h *ReservationHandler) decodeOptionalBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}

	utils.ResponseBadRequest(w, "Invalid request body", nil)
	return false
}

// handleServiceError maps registry outcomes onto HTTP status codes.
func (h *ReservationHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	logFailed := func() {
		h.log.Warn(operation+" failed",
			zap.Error(err),
			zap.String("operation", operation))
	}

	switch {
	case errors.Is(err, registry.ErrSeatNotFound):
		logFailed()
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, registry.ErrAlreadyBooked),
		errors.Is(err, registry.ErrCannotReleaseBooked):
		logFailed()
		utils.ResponseConflict(w, err.Error())

	case errors.Is(err, registry.ErrAlreadyLocked):
		logFailed()
		utils.ResponseLocked(w, err.Error())

	case errors.Is(err, registry.ErrLockExpired):
		logFailed()
		utils.ResponseRequestTimeout(w, err.Error())

	case errors.Is(err, registry.ErrForbiddenOwner):
		logFailed()
		utils.ResponseForbidden(w, err.Error())

	case errors.Is(err, registry.ErrNotLocked):
		logFailed()
		utils.ResponseBadRequest(w, err.Error(), nil)

	case strings.Contains(err.Error(), "validation failed"):
		logFailed()
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
