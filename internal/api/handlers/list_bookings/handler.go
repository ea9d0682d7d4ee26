package list_bookings

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

// Handle GET /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sid := middleware.GetSessionID(r.Context())
	uid := middleware.GetUserID(r.Context())

	result, err := h.service.List(r.Context(), sid, uid)
	if err != nil {
		switch {
		case errors.Is(err, collection.ErrUnauthenticated):
			h.logger.Warn("GET /bookings - Not signed in: session_id=%s", sid)
			handlers.RespondUnauthorized(w, msgUnauthenticated)

		case errors.Is(err, collection.ErrStoreUnavailable):
			h.logger.Error("GET /bookings - Booking store unavailable: user_id=%s, error=%v", uid, err)
			handlers.RespondBadGateway(w, msgStoreUnavailable)

		case errors.Is(err, sessions.ErrInvalidInput):
			h.logger.Warn("GET /bookings - Missing session id")
			handlers.RespondBadRequest(w, msgMissingSession)

		default:
			h.logger.Error("GET /bookings - Failed to get bookings: user_id=%s, error=%v", uid, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings - Bookings retrieved successfully: user_id=%s, count=%d", uid, len(result))
	handlers.RespondJSON(w, http.StatusOK, handlers.FromBookings(result))
}
