package start_edit

import "errors"

var (
	// ErrUnauthenticated возвращается, если пользователь не вошел
	ErrUnauthenticated = errors.New("user is not signed in")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrAccessDenied возвращается при попытке изменить чужое бронирование
	ErrAccessDenied = errors.New("access denied")

	// ErrStoreUnavailable возвращается при недоступности хранилища
	ErrStoreUnavailable = errors.New("booking store unavailable")

	// ErrSubmissionInProgress возвращается, пока другое бронирование отправляется в хранилище
	ErrSubmissionInProgress = errors.New("booking submission in progress")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")
)
