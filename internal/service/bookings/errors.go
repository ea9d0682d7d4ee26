package bookings

import (
	"errors"

	"github.com/redzuankdv/Parking-App-FrontEnd/internal/domain"
)

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrSlotNotAvailable возвращается, когда слот уже занят на пересекающийся интервал
	ErrSlotNotAvailable = errors.New("slot is already booked for this interval")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

// ValidationError ошибки по полям записи
type ValidationError struct {
	Fields domain.FieldErrors
}

func (e *ValidationError) Error() string {
	return e.Fields.Error()
}

// Is позволяет проверять ошибку через errors.Is(err, ErrInvalidInput)
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}
