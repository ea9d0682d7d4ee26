package select_slot

import (
	"errors"
	"net/http"

	"github.com/redzuankdv/Parking-App-FrontEnd/internal/api/handlers"
	"github.com/redzuankdv/Parking-App-FrontEnd/internal/api/middleware"
	selectSlot "github.com/redzuankdv/Parking-App-FrontEnd/internal/usecase/select_slot"
)

const (
	msgInvalidRequestBody   = "invalid request body"
	msgSlotRequired         = "slot is required"
	msgSearchRequired       = "search for available slots first"
	msgUnknownSlot          = "unknown parking slot"
	msgSubmissionInProgress = "a booking is being submitted, please wait"
)

type Handler struct {
	useCase SelectSlotUseCase
	logger  Logger
}

func NewHandler(useCase SelectSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/flow/select
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SelectSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /flow/select - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	sid := middleware.GetSessionID(r.Context())

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(sid))
	if err != nil {
		switch {
		case errors.Is(err, selectSlot.ErrSearchRequired):
			h.logger.Warn("POST /flow/select - Select before search: session_id=%s, slot=%s", sid, req.Slot)
			handlers.RespondBadRequest(w, msgSearchRequired)

		case errors.Is(err, selectSlot.ErrUnknownSlot):
			h.logger.Warn("POST /flow/select - Unknown slot: session_id=%s, slot=%s", sid, req.Slot)
			handlers.RespondBadRequest(w, msgUnknownSlot)

		case errors.Is(err, selectSlot.ErrSubmissionInProgress):
			h.logger.Warn("POST /flow/select - Submission in progress: session_id=%s", sid)
			handlers.RespondConflict(w, msgSubmissionInProgress)

		case errors.Is(err, selectSlot.ErrInvalidInput):
			h.logger.Warn("POST /flow/select - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgSlotRequired)

		default:
			h.logger.Error("POST /flow/select - Failed to select slot: session_id=%s, error=%v", sid, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /flow/select - Slot selection: session_id=%s, slot=%s, changed=%t", sid, req.Slot, result.Changed)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
