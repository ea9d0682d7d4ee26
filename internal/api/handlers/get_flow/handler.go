package get_flow

import (
	"errors"
	"net/http"

	"github.com/redzuankdv/Parking-App-FrontEnd/internal/api/handlers"
	"github.com/redzuankdv/Parking-App-FrontEnd/internal/api/middleware"
	"github.com/redzuankdv/Parking-App-FrontEnd/internal/service/sessions"
)

const (
	msgMissingSession = "client session is required"
)

type Handler struct {
	sessions SessionService
	logger   Logger
}

func NewHandler(sessions SessionService, logger Logger) *Handler {
	return &Handler{
		sessions: sessions,
		logger:   logger,
	}
}

// Handle GET /api/v1/flow
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sid := middleware.GetSessionID(r.Context())

	sess, err := h.sessions.Get(r.Context(), sid)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrInvalidInput):
			h.logger.Warn("GET /flow - Missing session id")
			handlers.RespondBadRequest(w, msgMissingSession)

		default:
			h.logger.Error("GET /flow - Failed to load session: session_id=%s, error=%v", sid, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /flow - Flow returned: session_id=%s, state=%s", sid, sess.Flow.State)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromFlow(sess.Flow))
}
