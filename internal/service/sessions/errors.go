package sessions

import "errors"

var (
	// ErrInvalidInput возвращается при пустом id сессии
	ErrInvalidInput = errors.New("invalid input data")

	// ErrSubmissionInProgress возвращается, пока бронирование отправляется в хранилище
	ErrSubmissionInProgress = errors.New("booking submission in progress")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
