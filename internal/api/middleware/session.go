package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// HeaderSessionID заголовок с id клиентской сессии
const HeaderSessionID = "X-Session-ID"

// Session привязывает запрос к клиентской сессии. Клиент без сессии
// получает новый id в заголовке ответа и должен присылать его дальше.
func Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sid := strings.TrimSpace(r.Header.Get(HeaderSessionID))
		if _, err := uuid.Parse(sid); err != nil {
			sid = uuid.NewString()
		}

		w.Header().Set(HeaderSessionID, sid)
		next.ServeHTTP(w, r.WithContext(WithSessionID(r.Context(), sid)))
	})
}
