package delete_booking

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/redzuankdv/Parking-App-FrontEnd/internal/bookingstore/api/handlers"
	"github.com/redzuankdv/Parking-App-FrontEnd/internal/service/bookings"
)

const (
	msgNotFound = "booking not found"
	msgDeleted  = "booking deleted"
)

type BookingService interface {
	Delete(ctx context.Context, id string) error
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

// Handle DELETE /bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	if err := h.service.Delete(r.Context(), bookingID); err != nil {
		if errors.Is(err, bookings.ErrBookingNotFound) {
			h.logger.Warn("DELETE /bookings/{id} - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("DELETE /bookings/{id} - Failed to delete booking: booking_id=%s, error=%v", bookingID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /bookings/{id} - Booking deleted successfully: booking_id=%s", bookingID)
	handlers.RespondSuccess(w, msgDeleted)
}
