package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/redzuankdv/Parking-App-FrontEnd/internal/api/handlers"
)

const (
	HeaderAuthorization = "Authorization"
	HeaderUserID        = "X-User-ID"

	msgInvalidToken = "invalid or expired token"
)

var (
	// ErrInvalidToken возвращается для токена с неверной подписью, сроком или без uid
	ErrInvalidToken = errors.New("invalid token")
)

// Claims полезная нагрузка токена провайдера идентификации
type Claims struct {
	UserID string `json:"user_id,omitempty"`
	jwt.RegisteredClaims
}

// UID возвращает user_id, а если его нет, то sub
func (c *Claims) UID() string {
	if c.UserID != "" {
		return c.UserID
	}
	return c.Subject
}

// Identity извлекает uid пользователя из Bearer-токена (HS256).
// Запрос без токена проходит анонимно: вход обязателен только для отдельных операций.
type Identity struct {
	secret      []byte
	trustHeader bool
	logger      Logger
}

func NewIdentity(secret string, trustHeader bool, logger Logger) *Identity {
	return &Identity{
		secret:      []byte(secret),
		trustHeader: trustHeader,
		logger:      logger,
	}
}

func (i *Identity) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)

		var uid string
		switch {
		case token != "":
			claims, err := i.Parse(token)
			if err != nil {
				i.logger.Warn("%s %s - Rejected token: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}
			uid = claims.UID()
		case i.trustHeader:
			uid = strings.TrimSpace(r.Header.Get(HeaderUserID))
		}

		if uid != "" {
			r = r.WithContext(WithUserID(r.Context(), uid))
		}
		next.ServeHTTP(w, r)
	})
}

// Parse проверяет подпись и срок действия токена
func (i *Identity) Parse(token string) (*Claims, error) {
	if len(i.secret) == 0 {
		return nil, ErrInvalidToken
	}

	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, errors.Join(ErrInvalidToken, err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || claims.UID() == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get(HeaderAuthorization)
	if len(h) < 7 || !strings.EqualFold(h[:7], "bearer ") {
		return ""
	}
	return strings.TrimSpace(h[7:])
}
