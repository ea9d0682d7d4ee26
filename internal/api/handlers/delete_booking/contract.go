package delete_booking

import "context"

type CollectionService interface {
	Delete(ctx context.Context, sessionID, userID, bookingID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
