package list_bookings

import (
	"context"
	"net/http"
	"strings"

	"github.com/redzuankdv/Parking-App-FrontEnd/internal/bookingstore/api/handlers"
	"github.com/redzuankdv/Parking-App-FrontEnd/internal/service/bookings/models"
)

type BookingService interface {
	List(ctx context.Context, userID string) ([]*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
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

// Handle GET /bookings[?userId=]
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := strings.TrimSpace(r.URL.Query().Get("userId"))

	result, err := h.service.List(r.Context(), userID)
	if err != nil {
		h.logger.Error("GET /bookings - Failed to list bookings: user_id=%q, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /bookings - Bookings listed: user_id=%q, count=%d", userID, len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}
