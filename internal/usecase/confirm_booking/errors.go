package confirm_booking

import "errors"

var (
	// ErrSearchRequired возвращается, если слоты еще не были показаны
	ErrSearchRequired = errors.New("search for available slots first")

	// ErrNoSlotSelected возвращается, если слот не выбран (хранилище не вызывается)
	ErrNoSlotSelected = errors.New("no parking slot selected")

	// ErrUnauthenticated возвращается, если пользователь не вошел (хранилище не вызывается)
	ErrUnauthenticated = errors.New("user is not signed in")

	// ErrAccessDenied возвращается, если изменяемое бронирование принадлежит другому пользователю
	ErrAccessDenied = errors.New("access denied")

	// ErrSlotNotAvailable возвращается, если выбранный слот занят в текущей сетке
	ErrSlotNotAvailable = errors.New("selected slot is not available")

	// ErrSlotTaken возвращается, если хранилище отклонило запись из-за пересечения
	ErrSlotTaken = errors.New("slot was booked by someone else")

	// ErrBookingNotFound возвращается, если редактируемое бронирование удалено в хранилище
	ErrBookingNotFound = errors.New("booking not found")

	// ErrStoreRejected возвращается, если хранилище отклонило запрос
	ErrStoreRejected = errors.New("booking store rejected the request")

	// ErrStoreUnavailable возвращается при сетевой ошибке или недоступности хранилища
	ErrStoreUnavailable = errors.New("booking store unavailable")

	// ErrSubmissionInProgress возвращается при повторной отправке до завершения первой
	ErrSubmissionInProgress = errors.New("booking submission in progress")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")
)
