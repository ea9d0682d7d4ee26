package select_slot

import "errors"

var (
	// ErrSearchRequired возвращается, если слоты еще не были показаны
	ErrSearchRequired = errors.New("search for available slots first")

	// ErrUnknownSlot возвращается для слота вне каталога
	ErrUnknownSlot = errors.New("unknown parking slot")

	// ErrSubmissionInProgress возвращается, пока бронирование отправляется в хранилище
	ErrSubmissionInProgress = errors.New("booking submission in progress")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")
)
