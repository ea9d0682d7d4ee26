package update_booking

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/redzuankdv/Parking-App-FrontEnd/internal/bookingstore/api/handlers"
	"github.com/redzuankdv/Parking-App-FrontEnd/internal/service/bookings"
	"github.com/redzuankdv/Parking-App-FrontEnd/internal/service/bookings/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgNotFound           = "booking not found"
	msgSlotNotAvailable   = "slot is already booked for this interval"
	msgUpdated            = "booking updated"
)

type BookingService interface {
	Update(ctx context.Context, id string, req *models.BookingRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	var req models.BookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.Update(r.Context(), bookingID, &req); err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PUT /bookings/{id} - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("PUT /bookings/{id} - Invalid booking: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, bookings.ErrSlotNotAvailable):
			h.logger.Warn("PUT /bookings/{id} - Slot not available: booking_id=%s", bookingID)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		default:
			h.logger.Error("PUT /bookings/{id} - Failed to update booking: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /bookings/{id} - Booking updated successfully: booking_id=%s", bookingID)
	handlers.RespondSuccess(w, msgUpdated)
}
