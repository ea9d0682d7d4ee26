package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redzuankdv/Parking-App-FrontEnd/pkg/logger"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims Claims, method jwt.SigningMethod, key interface{}) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func captureUserID(got *string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*got = GetUserID(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestIdentity(t *testing.T) {
	valid := signToken(t, Claims{
		UserID:           "u1",
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
	}, jwt.SigningMethodHS256, []byte(testSecret))
	subOnly := signToken(t, Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "u2"},
	}, jwt.SigningMethodHS256, []byte(testSecret))
	expired := signToken(t, Claims{
		UserID:           "u1",
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour))},
	}, jwt.SigningMethodHS256, []byte(testSecret))
	wrongKey := signToken(t, Claims{UserID: "u1"}, jwt.SigningMethodHS256, []byte("other"))

	tests := []struct {
		name        string
		trustHeader bool
		headers     map[string]string
		wantStatus  int
		wantUID     string
	}{
		{name: "valid token with user_id", headers: map[string]string{HeaderAuthorization: "Bearer " + valid}, wantStatus: http.StatusNoContent, wantUID: "u1"},
		{name: "sub used when user_id missing", headers: map[string]string{HeaderAuthorization: "Bearer " + subOnly}, wantStatus: http.StatusNoContent, wantUID: "u2"},
		{name: "anonymous without token", wantStatus: http.StatusNoContent, wantUID: ""},
		{name: "expired token", headers: map[string]string{HeaderAuthorization: "Bearer " + expired}, wantStatus: http.StatusUnauthorized},
		{name: "wrong signature", headers: map[string]string{HeaderAuthorization: "Bearer " + wrongKey}, wantStatus: http.StatusUnauthorized},
		{name: "header ignored when not trusted", headers: map[string]string{HeaderUserID: "u9"}, wantStatus: http.StatusNoContent, wantUID: ""},
		{name: "trusted header", trustHeader: true, headers: map[string]string{HeaderUserID: "u9"}, wantStatus: http.StatusNoContent, wantUID: "u9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			h := NewIdentity(testSecret, tt.trustHeader, logger.Nop()).Wrap(captureUserID(&got))

			req := httptest.NewRequest(http.MethodGet, "/api/v1/flow", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantUID, got)
		})
	}
}

func TestIdentity_RejectsOtherAlgorithms(t *testing.T) {
	token := signToken(t, Claims{UserID: "u1"}, jwt.SigningMethodHS512, []byte(testSecret))

	_, err := NewIdentity(testSecret, false, logger.Nop()).Parse(token)

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSession(t *testing.T) {
	var got string
	h := Session(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = GetSessionID(r.Context())
	}))

	t.Run("issues id when missing", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		_, err := uuid.Parse(got)
		require.NoError(t, err)
		assert.Equal(t, got, rec.Header().Get(HeaderSessionID))
	})

	t.Run("keeps client id", func(t *testing.T) {
		sid := uuid.NewString()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(HeaderSessionID, sid)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, sid, got)
		assert.Equal(t, sid, rec.Header().Get(HeaderSessionID))
	})

	t.Run("replaces malformed id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(HeaderSessionID, "not-a-uuid")
		h.ServeHTTP(httptest.NewRecorder(), req)

		assert.NotEqual(t, "not-a-uuid", got)
	})
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRateLimiter_KeysOnUserOrAddress(t *testing.T) {
	limiter := NewRateLimiter(1, 2, logger.Nop())
	h := limiter.Wrap(okHandler())

	do := func(uid, addr string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/flow/search", nil)
		req.RemoteAddr = addr
		if uid != "" {
			req = req.WithContext(WithUserID(req.Context(), uid))
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, do("u1", "10.0.0.1:1000"))
	assert.Equal(t, http.StatusOK, do("u1", "10.0.0.2:1000"))
	assert.Equal(t, http.StatusTooManyRequests, do("u1", "10.0.0.3:1000"), "a user is limited across addresses")
	assert.Equal(t, http.StatusOK, do("u2", "10.0.0.1:1000"))

	assert.Equal(t, http.StatusOK, do("", "10.0.0.9:1000"))
	assert.Equal(t, http.StatusOK, do("", "10.0.0.9:2000"))
	assert.Equal(t, http.StatusTooManyRequests, do("", "10.0.0.9:3000"), "anonymous clients are limited by host")
}

func TestRateLimiter_NewSessionPerRequestIsStillLimited(t *testing.T) {
	h := Session(NewRateLimiter(1, 1, logger.Nop()).Wrap(okHandler()))

	passed := 0
	for i := 0; i < 50; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/flow/search", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code == http.StatusOK {
			passed++
		}
	}

	assert.Equal(t, 1, passed)
}

func TestRateLimiter_EvictsIdleClients(t *testing.T) {
	now := time.Now()
	limiter := NewRateLimiter(1, 1, logger.Nop())
	limiter.now = func() time.Time { return now }
	h := limiter.Wrap(okHandler())

	for i := 0; i < 100; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil)
		req.RemoteAddr = fmt.Sprintf("10.0.%d.%d:1000", i/250, i%250)
		h.ServeHTTP(httptest.NewRecorder(), req)
	}
	require.Equal(t, 100, limiter.size())

	now = now.Add(limiterIdleTTL + time.Second)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil)
	req.RemoteAddr = "10.1.0.1:1000"
	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, 1, limiter.size())
}

type recordedRequest struct {
	method string
	route  string
	status int
}

type fakeMetrics struct {
	got []recordedRequest
}

func (f *fakeMetrics) ObserveHTTP(method, route string, status int, _ time.Duration) {
	f.got = append(f.got, recordedRequest{method: method, route: route, status: status})
}

func TestMetrics_UsesRouteTemplate(t *testing.T) {
	m := &fakeMetrics{}
	router := mux.NewRouter()
	router.Use(Metrics(m, logger.Nop()))
	router.HandleFunc("/bookings/{bookingId}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods(http.MethodDelete)

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodDelete, "/bookings/b-1", nil))

	require.Len(t, m.got, 1)
	assert.Equal(t, recordedRequest{method: http.MethodDelete, route: "/bookings/{bookingId}", status: http.StatusNotFound}, m.got[0])
}
