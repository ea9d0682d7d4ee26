package search_slots

import (
	"errors"

	"github.com/redzuankdv/Parking-App-FrontEnd/internal/domain"
)

var (
	// ErrValidation возвращается, когда поля формы не прошли проверку (детали в ValidationError)
	ErrValidation = errors.New("booking form is invalid")

	// ErrStoreUnavailable возвращается, когда не удалось получить бронирования из хранилища
	ErrStoreUnavailable = errors.New("booking store unavailable")

	// ErrSubmissionInProgress возвращается, пока бронирование отправляется в хранилище
	ErrSubmissionInProgress = errors.New("booking submission in progress")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")
)

// ValidationError сообщения об ошибках по полям формы
type ValidationError struct {
	Fields domain.FieldErrors
}

func (e *ValidationError) Error() string {
	return e.Fields.Error()
}

// Is позволяет проверять ошибку через errors.Is(err, ErrValidation)
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
