package search_slots

import (
	"errors"
	"net/http"

	"github.com/redzuankdv/Parking-App-FrontEnd/internal/api/handlers"
	"github.com/redzuankdv/Parking-App-FrontEnd/internal/api/middleware"
	searchSlots "github.com/redzuankdv/Parking-App-FrontEnd/internal/usecase/search_slots"
)

const (
	msgInvalidRequestBody   = "invalid request body"
	msgInvalidForm          = "please correct the highlighted fields"
	msgStoreUnavailable     = "Unable to load bookings. Please try again."
	msgSubmissionInProgress = "a booking is being submitted, please wait"
	msgMissingSession       = "client session is required"
)

type Handler struct {
	useCase SearchSlotsUseCase
	logger  Logger
}

func NewHandler(useCase SearchSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/flow/search
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SearchSlotsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /flow/search - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	sid := middleware.GetSessionID(r.Context())
	uid := middleware.GetUserID(r.Context())

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(sid, uid))
	if err != nil {
		var validationErr *searchSlots.ValidationError
		switch {
		case errors.As(err, &validationErr):
			h.logger.Warn("POST /flow/search - Invalid form: session_id=%s, fields=%v", sid, validationErr.Fields)
			handlers.RespondValidation(w, msgInvalidForm, validationErr.Fields)

		case errors.Is(err, searchSlots.ErrStoreUnavailable):
			h.logger.Error("POST /flow/search - Booking store unavailable: session_id=%s, error=%v", sid, err)
			handlers.RespondBadGateway(w, msgStoreUnavailable)

		case errors.Is(err, searchSlots.ErrSubmissionInProgress):
			h.logger.Warn("POST /flow/search - Submission in progress: session_id=%s", sid)
			handlers.RespondConflict(w, msgSubmissionInProgress)

		case errors.Is(err, searchSlots.ErrInvalidInput):
			h.logger.Warn("POST /flow/search - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgMissingSession)

		default:
			h.logger.Error("POST /flow/search - Failed to search slots: session_id=%s, error=%v", sid, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	resp := handlers.FromFlow(result.Flow)

	h.logger.Info("POST /flow/search - Slots resolved: session_id=%s, selected=%q", sid, resp.SelectedSlot)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
