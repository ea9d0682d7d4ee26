package create_booking

import (
	"context"
	"errors"
	"net/http"

	"github.com/redzuankdv/Parking-App-FrontEnd/internal/bookingstore/api/handlers"
	"github.com/redzuankdv/Parking-App-FrontEnd/internal/service/bookings"
	"github.com/redzuankdv/Parking-App-FrontEnd/internal/service/bookings/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgSlotNotAvailable   = "slot is already booked for this interval"
)

type BookingService interface {
	Create(ctx context.Context, req *models.BookingRequest) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
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

// Handle POST /bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.BookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid booking: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, bookings.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: slot=%s, user_id=%s", req.Slot, req.UserID)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%s, error=%v", req.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, user_id=%s", result.ID, result.UserID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
