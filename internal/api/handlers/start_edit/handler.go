package start_edit

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/redzuankdv/Parking-App-FrontEnd/internal/api/handlers"
	"github.com/redzuankdv/Parking-App-FrontEnd/internal/api/middleware"
	startEdit "github.com/redzuankdv/Parking-App-FrontEnd/internal/usecase/start_edit"
)

const (
	msgInvalidBookingID     = "invalid booking id"
	msgUnauthenticated      = "You must be logged in to edit a booking."
	msgNotFound             = "booking not found"
	msgForbidden            = "access denied"
	msgStoreUnavailable     = "Unable to load the booking. Please try again."
	msgSubmissionInProgress = "a booking is being submitted, please wait"
)

type Handler struct {
	useCase StartEditUseCase
	logger  Logger
}

func NewHandler(useCase StartEditUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/edit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := strings.TrimSpace(mux.Vars(r)["bookingId"])
	if bookingID == "" {
		h.logger.Warn("POST /bookings/{id}/edit - Empty booking ID")
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	sid := middleware.GetSessionID(r.Context())
	uid := middleware.GetUserID(r.Context())

	result, err := h.useCase.Execute(r.Context(), &startEdit.Request{
		SessionID: sid,
		UserID:    uid,
		BookingID: bookingID,
	})
	if err != nil {
		switch {
		case errors.Is(err, startEdit.ErrUnauthenticated):
			h.logger.Warn("POST /bookings/{id}/edit - Not signed in: booking_id=%s", bookingID)
			handlers.RespondUnauthorized(w, msgUnauthenticated)

		case errors.Is(err, startEdit.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/edit - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, startEdit.ErrAccessDenied):
			h.logger.Warn("POST /bookings/{id}/edit - Access denied: booking_id=%s, user_id=%s", bookingID, uid)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, startEdit.ErrStoreUnavailable):
			h.logger.Error("POST /bookings/{id}/edit - Booking store unavailable: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondBadGateway(w, msgStoreUnavailable)

		case errors.Is(err, startEdit.ErrSubmissionInProgress):
			h.logger.Warn("POST /bookings/{id}/edit - Submission in progress: session_id=%s", sid)
			handlers.RespondConflict(w, msgSubmissionInProgress)

		case errors.Is(err, startEdit.ErrInvalidInput):
			h.logger.Warn("POST /bookings/{id}/edit - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidBookingID)

		default:
			h.logger.Error("POST /bookings/{id}/edit - Failed to start edit: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/edit - Edit flow started: booking_id=%s, user_id=%s", bookingID, uid)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromFlow(result.Flow))
}
