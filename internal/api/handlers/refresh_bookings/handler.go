package refresh_bookings

import (
	"errors"
	"net/http"

	"github.com/redzuankdv/Parking-App-FrontEnd/internal/api/handlers"
	"github.com/redzuankdv/Parking-App-FrontEnd/internal/api/middleware"
	"github.com/redzuankdv/Parking-App-FrontEnd/internal/service/collection"
	"github.com/redzuankdv/Parking-App-FrontEnd/internal/service/sessions"
)

const (
	msgUnauthenticated  = "You must be logged in to see your bookings."
	msgStoreUnavailable = "Unable to load bookings. Please try again."
	msgMissingSession   = "client session is required"
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

// Handle POST /api/v1/bookings/refresh
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sid := middleware.GetSessionID(r.Context())
	uid := middleware.GetUserID(r.Context())

	result, err := h.service.Refresh(r.Context(), sid, uid)
	if err != nil {
		switch {
		case errors.Is(err, collection.ErrUnauthenticated):
			h.logger.Warn("POST /bookings/refresh - Not signed in: session_id=%s", sid)
			handlers.RespondUnauthorized(w, msgUnauthenticated)

		case errors.Is(err, collection.ErrStoreUnavailable):
			h.logger.Error("POST /bookings/refresh - Booking store unavailable: user_id=%s, error=%v", uid, err)
			handlers.RespondBadGateway(w, msgStoreUnavailable)

		case errors.Is(err, sessions.ErrInvalidInput):
			h.logger.Warn("POST /bookings/refresh - Missing session id")
			handlers.RespondBadRequest(w, msgMissingSession)

		default:
			h.logger.Error("POST /bookings/refresh - Failed to get bookings: user_id=%s, error=%v", uid, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/refresh - Bookings reloaded successfully: user_id=%s, count=%d", uid, len(result))
	handlers.RespondJSON(w, http.StatusOK, handlers.FromBookings(result))
}
