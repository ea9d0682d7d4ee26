package middleware

import (
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"

	"github.com/redzuankdv/Parking-App-FrontEnd/internal/api/handlers"
)

const (
	defaultBurst = 5

	// limiterIdleTTL через сколько бездействия лимитер клиента удаляется
	limiterIdleTTL = 10 * time.Minute

	msgRateLimited = "too many requests, slow down"
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64 // unix nano
}

// RateLimiter ограничивает частоту запросов на клиента: вошедший пользователь
// считается по uid, анонимный по адресу. Id клиентской сессии выдает сервер
// любому запросу без заголовка, поэтому ключом он не служит.
type RateLimiter struct {
	rps       float64
	burst     int
	limiters  sync.Map // map[string]*clientLimiter
	lastSweep atomic.Int64
	now       func() time.Time
	logger    Logger
}

func NewRateLimiter(rps float64, burst int, logger Logger) *RateLimiter {
	if burst <= 0 {
		burst = defaultBurst
	}
	return &RateLimiter{
		rps:    rps,
		burst:  burst,
		now:    time.Now,
		logger: logger,
	}
}

func (l *RateLimiter) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if l.rps <= 0 {
			next.ServeHTTP(w, r)
			return
		}

		key := clientKey(r)
		if !l.allow(key) {
			l.logger.Warn("%s %s - Rate limit exceeded: client=%s", r.Method, r.URL.Path, key)
			handlers.RespondTooManyRequests(w, msgRateLimited)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (l *RateLimiter) allow(key string) bool {
	now := l.now()
	l.sweep(now)

	c := l.getLimiter(key)
	c.lastSeen.Store(now.UnixNano())
	return c.limiter.AllowN(now, 1)
}

func (l *RateLimiter) getLimiter(key string) *clientLimiter {
	if v, ok := l.limiters.Load(key); ok {
		return v.(*clientLimiter)
	}

	c := &clientLimiter{limiter: rate.NewLimiter(rate.Limit(l.rps), l.burst)}
	actual, loaded := l.limiters.LoadOrStore(key, c)
	if loaded {
		return actual.(*clientLimiter)
	}
	return c
}

// sweep не чаще раза в limiterIdleTTL удаляет лимитеры клиентов, которых давно не было
func (l *RateLimiter) sweep(now time.Time) {
	last := l.lastSweep.Load()
	if now.UnixNano()-last < int64(limiterIdleTTL) {
		return
	}
	if !l.lastSweep.CompareAndSwap(last, now.UnixNano()) {
		return
	}

	cutoff := now.Add(-limiterIdleTTL).UnixNano()
	l.limiters.Range(func(key, v interface{}) bool {
		if v.(*clientLimiter).lastSeen.Load() < cutoff {
			l.limiters.Delete(key)
		}
		return true
	})
}

func (l *RateLimiter) size() int {
	n := 0
	l.limiters.Range(func(interface{}, interface{}) bool {
		n++
		return true
	})
	return n
}

func clientKey(r *http.Request) string {
	if uid := GetUserID(r.Context()); uid != "" {
		return "user:" + uid
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil || host == "" {
		host = r.RemoteAddr
	}
	if host == "" {
		return "addr:unknown"
	}
	return "addr:" + host
}
