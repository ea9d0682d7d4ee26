package collection

import "errors"

var (
	// ErrUnauthenticated возвращается, когда операция требует вошедшего пользователя
	ErrUnauthenticated = errors.New("user is not signed in")

	// ErrBookingNotFound возвращается, когда бронирования нет в коллекции пользователя
	ErrBookingNotFound = errors.New("booking not found")

	// ErrStoreUnavailable возвращается при недоступности хранилища бронирований
	ErrStoreUnavailable = errors.New("booking store unavailable")
)
