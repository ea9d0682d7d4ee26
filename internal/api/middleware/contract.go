package middleware

import "time"

type Logger interface {
	Debug(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// HTTPMetrics учет обработанных запросов
type HTTPMetrics interface {
	ObserveHTTP(method, route string, status int, duration time.Duration)
}
