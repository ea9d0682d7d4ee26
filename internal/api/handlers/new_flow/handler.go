package new_flow

import (
	"errors"
	"net/http"

	"github.com/redzuankdv/Parking-App-FrontEnd/internal/api/handlers"
	"github.com/redzuankdv/Parking-App-FrontEnd/internal/api/middleware"
	"github.com/redzuankdv/Parking-App-FrontEnd/internal/service/sessions"
)

const (
	msgMissingSession       = "client session is required"
	msgSubmissionInProgress = "a booking is being submitted, please wait"
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

// Handle POST /api/v1/flow
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sid := middleware.GetSessionID(r.Context())

	flow, err := h.sessions.ResetFlow(r.Context(), sid)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrInvalidInput):
			h.logger.Warn("POST /flow - Missing session id")
			handlers.RespondBadRequest(w, msgMissingSession)

		case errors.Is(err, sessions.ErrSubmissionInProgress):
			h.logger.Warn("POST /flow - Submission in progress: session_id=%s", sid)
			handlers.RespondConflict(w, msgSubmissionInProgress)

		default:
			h.logger.Error("POST /flow - Failed to reset flow: session_id=%s, error=%v", sid, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /flow - New booking flow started: session_id=%s", sid)
	handlers.RespondJSON(w, http.StatusCreated, handlers.FromFlow(*flow))
}
