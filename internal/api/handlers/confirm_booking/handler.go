package confirm_booking

import (
	"errors"
	"net/http"

	"github.com/redzuankdv/Parking-App-FrontEnd/internal/api/handlers"
	"github.com/redzuankdv/Parking-App-FrontEnd/internal/api/middleware"
	confirmBooking "github.com/redzuankdv/Parking-App-FrontEnd/internal/usecase/confirm_booking"
)

const (
	msgNoSlotSelected       = "Please select a parking slot."
	msgUnauthenticated      = "You must be logged in to book a parking slot."
	msgAccessDenied         = "You can only change your own bookings."
	msgSearchRequired       = "search for available slots first"
	msgSlotNotAvailable     = "selected slot is not available"
	msgSlotTaken            = "This slot was just booked by someone else. Please search again."
	msgBookingNotFound      = "This booking no longer exists."
	msgStoreRejected        = "The booking was rejected. Please check the details and try again."
	msgStoreUnavailable     = "Unable to save the booking. Please try again."
	msgSubmissionInProgress = "a booking is being submitted, please wait"
	msgMissingSession       = "client session is required"
)

type Handler struct {
	useCase ConfirmBookingUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/flow/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sid := middleware.GetSessionID(r.Context())
	uid := middleware.GetUserID(r.Context())

	result, err := h.useCase.Execute(r.Context(), &confirmBooking.Request{
		SessionID: sid,
		UserID:    uid,
	})
	if err != nil {
		switch {
		case errors.Is(err, confirmBooking.ErrNoSlotSelected):
			h.logger.Warn("POST /flow/confirm - No slot selected: session_id=%s", sid)
			handlers.RespondBadRequest(w, msgNoSlotSelected)

		case errors.Is(err, confirmBooking.ErrUnauthenticated):
			h.logger.Warn("POST /flow/confirm - Not signed in: session_id=%s", sid)
			handlers.RespondUnauthorized(w, msgUnauthenticated)

		case errors.Is(err, confirmBooking.ErrAccessDenied):
			h.logger.Warn("POST /flow/confirm - Edit of another user's booking: session_id=%s, user_id=%s", sid, uid)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, confirmBooking.ErrSearchRequired):
			h.logger.Warn("POST /flow/confirm - Confirm before search: session_id=%s", sid)
			handlers.RespondBadRequest(w, msgSearchRequired)

		case errors.Is(err, confirmBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /flow/confirm - Slot not available: session_id=%s, user_id=%s", sid, uid)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, confirmBooking.ErrSlotTaken):
			h.logger.Warn("POST /flow/confirm - Slot taken in store: session_id=%s, user_id=%s", sid, uid)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, confirmBooking.ErrBookingNotFound):
			h.logger.Warn("POST /flow/confirm - Edited booking is gone: session_id=%s, user_id=%s", sid, uid)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, confirmBooking.ErrStoreRejected):
			h.logger.Warn("POST /flow/confirm - Store rejected booking: session_id=%s, error=%v", sid, err)
			handlers.RespondBadRequest(w, msgStoreRejected)

		case errors.Is(err, confirmBooking.ErrStoreUnavailable):
			h.logger.Error("POST /flow/confirm - Booking store unavailable: session_id=%s, error=%v", sid, err)
			handlers.RespondBadGateway(w, msgStoreUnavailable)

		case errors.Is(err, confirmBooking.ErrSubmissionInProgress):
			h.logger.Warn("POST /flow/confirm - Duplicate submit: session_id=%s", sid)
			handlers.RespondConflict(w, msgSubmissionInProgress)

		case errors.Is(err, confirmBooking.ErrInvalidInput):
			h.logger.Warn("POST /flow/confirm - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgMissingSession)

		default:
			h.logger.Error("POST /flow/confirm - Failed to confirm booking: session_id=%s, error=%v", sid, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	status := http.StatusOK
	if result.Operation == confirmBooking.OperationCreate {
		status = http.StatusCreated
	}

	h.logger.Info("POST /flow/confirm - Booking %sd successfully: booking_id=%s, user_id=%s, slot=%s",
		result.Operation, result.Booking.ID, uid, result.Booking.Slot)
	handlers.RespondJSON(w, status, FromUseCaseResponse(result))
}
