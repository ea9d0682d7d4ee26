package bookingstore

import "errors"

var (
	// ErrNotFound возвращается, когда бронирование не найдено (404)
	ErrNotFound = errors.New("bookingstore client: booking not found")

	// ErrConflict возвращается, когда слот уже занят на пересекающийся интервал (409)
	ErrConflict = errors.New("bookingstore client: slot already booked")

	// ErrRejected возвращается, когда хранилище отклонило запрос (4xx или status != success)
	ErrRejected = errors.New("bookingstore client: request rejected")

	// ErrUnavailable возвращается при сетевой ошибке или 5xx
	ErrUnavailable = errors.New("bookingstore client: store unavailable")

	// ErrInvalidResponse возвращается при некорректном ответе от хранилища
	ErrInvalidResponse = errors.New("bookingstore client: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("bookingstore client: internal error")
)
