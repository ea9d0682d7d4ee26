package delete_booking

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/redzuankdv/Parking-App-FrontEnd/internal/api/handlers"
	"github.com/redzuankdv/Parking-App-FrontEnd/internal/api/middleware"
	"github.com/redzuankdv/Parking-App-FrontEnd/internal/service/collection"
	"github.com/redzuankdv/Parking-App-FrontEnd/internal/service/sessions"
)

const (
	msgInvalidBookingID = "invalid booking id"
	msgUnauthenticated  = "You must be logged in to delete a booking."
	msgNotFound         = "booking not found"
	msgStoreUnavailable = "Unable to delete the booking. Please try again."
)

type Handler struct {
	service CollectionService
	logger  Logger
}

func NewHandler(service CollectionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := strings.TrimSpace(mux.Vars(r)["bookingId"])
	if bookingID == "" {
		h.logger.Warn("DELETE /bookings/{id} - Empty booking ID")
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	sid := middleware.GetSessionID(r.Context())
	uid := middleware.GetUserID(r.Context())

	err := h.service.Delete(r.Context(), sid, uid, bookingID)
	if err != nil {
		switch {
		case errors.Is(err, collection.ErrUnauthenticated):
			h.logger.Warn("DELETE /bookings/{id} - Not signed in: booking_id=%s", bookingID)
			handlers.RespondUnauthorized(w, msgUnauthenticated)

		case errors.Is(err, collection.ErrBookingNotFound):
			h.logger.Warn("DELETE /bookings/{id} - Booking not found: booking_id=%s, user_id=%s", bookingID, uid)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, collection.ErrStoreUnavailable):
			h.logger.Error("DELETE /bookings/{id} - Booking store unavailable: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondBadGateway(w, msgStoreUnavailable)

		case errors.Is(err, sessions.ErrInvalidInput):
			h.logger.Warn("DELETE /bookings/{id} - Missing session id")
			handlers.RespondBadRequest(w, msgInvalidBookingID)

		default:
			h.logger.Error("DELETE /bookings/{id} - Failed to delete booking: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /bookings/{id} - Booking deleted successfully: booking_id=%s, user_id=%s", bookingID, uid)
	w.WriteHeader(http.StatusNoContent)
}
