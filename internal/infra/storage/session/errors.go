package session

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена или истекла
	ErrSessionNotFound = errors.New("session.repository: session not found")

	// ErrMarshal возвращается при ошибке сериализации сессии
	ErrMarshal = errors.New("session.repository: failed to marshal session")

	// ErrStorage возвращается при ошибке хранилища (redis недоступен и т.п.)
	ErrStorage = errors.New("session.repository: storage error")
)
