package api

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	createBookingHandler "github.com/redzuankdv/Parking-App-FrontEnd/internal/bookingstore/api/handlers/create_booking"
	deleteBookingHandler "github.com/redzuankdv/Parking-App-FrontEnd/internal/bookingstore/api/handlers/delete_booking"
	getBookingHandler "github.com/redzuankdv/Parking-App-FrontEnd/internal/bookingstore/api/handlers/get_booking"
	listBookingsHandler "github.com/redzuankdv/Parking-App-FrontEnd/internal/bookingstore/api/handlers/list_bookings"
	updateBookingHandler "github.com/redzuankdv/Parking-App-FrontEnd/internal/bookingstore/api/handlers/update_booking"
	"github.com/redzuankdv/Parking-App-FrontEnd/internal/service/bookings/models"
)

// BookingService операции хранилища бронирований
type BookingService interface {
	List(ctx context.Context, userID string) ([]*models.BookingResponse, error)
	GetByID(ctx context.Context, id string) (*models.BookingResponse, error)
	Create(ctx context.Context, req *models.BookingRequest) (*models.BookingResponse, error)
	Update(ctx context.Context, id string, req *models.BookingRequest) error
	Delete(ctx context.Context, id string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RegisterRoutes регистрирует REST-контракт /bookings
func RegisterRoutes(r *mux.Router, service BookingService, logger Logger) {
	r.HandleFunc("/bookings", listBookingsHandler.NewHandler(service, logger).Handle).Methods(http.MethodGet)
	r.HandleFunc("/bookings", createBookingHandler.NewHandler(service, logger).Handle).Methods(http.MethodPost)
	r.HandleFunc("/bookings/{bookingId}", getBookingHandler.NewHandler(service, logger).Handle).Methods(http.MethodGet)
	r.HandleFunc("/bookings/{bookingId}", updateBookingHandler.NewHandler(service, logger).Handle).Methods(http.MethodPut)
	r.HandleFunc("/bookings/{bookingId}", deleteBookingHandler.NewHandler(service, logger).Handle).Methods(http.MethodDelete)
}
