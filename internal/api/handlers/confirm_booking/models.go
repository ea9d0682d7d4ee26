package confirm_booking

import (
	"github.com/redzuankdv/Parking-App-FrontEnd/internal/api/handlers"
	confirmBooking "github.com/redzuankdv/Parking-App-FrontEnd/internal/usecase/confirm_booking"
)

// ConfirmBookingResponse HTTP response model
type ConfirmBookingResponse struct {
	Operation string                   `json:"operation"`
	Booking   handlers.BookingResponse `json:"booking"`
	Flow      handlers.FlowResponse    `json:"flow"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *confirmBooking.Response) *ConfirmBookingResponse {
	return &ConfirmBookingResponse{
		Operation: resp.Operation,
		Booking:   handlers.FromBooking(resp.Booking),
		Flow:      handlers.FromFlow(resp.Flow),
	}
}
