package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Logger printf-логгер поверх zerolog.
// Реализует интерфейс Logger, который объявляют потребители (Info/Warn/Error).
type Logger struct {
	zl     zerolog.Logger
	closer io.Closer
}

// New создает логгер. Если filePath пустой, пишет в stdout.
// Уровень: debug, info, warn, error (по умолчанию info).
func New(filePath string, level string) (*Logger, error) {
	output := io.Writer(os.Stdout)
	var closer io.Closer

	if strings.TrimSpace(filePath) != "" {
		file, err := os.OpenFile(filePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		output = io.MultiWriter(os.Stdout, file)
		closer = file
	}

	return NewWithWriter(output, level, closer), nil
}

// NewWithWriter создает логгер поверх произвольного io.Writer (используется в тестах)
func NewWithWriter(w io.Writer, level string, closer io.Closer) *Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano
	zl := zerolog.New(w).Level(lvl).With().Timestamp().Logger()

	return &Logger{zl: zl, closer: closer}
}

// Nop логгер, который ничего не пишет
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

// With возвращает логгер с дополнительным полем (например, service=parking)
func (l *Logger) With(key, value string) *Logger {
	return &Logger{zl: l.zl.With().Str(key, value).Logger(), closer: l.closer}
}

// Debug пишет сообщение уровня debug
func (l *Logger) Debug(format string, v ...interface{}) {
	l.zl.Debug().Msgf(format, v...)
}

// Info пишет сообщение уровня info
func (l *Logger) Info(format string, v ...interface{}) {
	l.zl.Info().Msgf(format, v...)
}

// Warn пишет сообщение уровня warn
func (l *Logger) Warn(format string, v ...interface{}) {
	l.zl.Warn().Msgf(format, v...)
}

// Error пишет сообщение уровня error
func (l *Logger) Error(format string, v ...interface{}) {
	l.zl.Error().Msgf(format, v...)
}

// Fatal пишет сообщение и завершает процесс
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.zl.Fatal().Msgf(format, v...)
}

// Close закрывает файл лога, если он был открыт
func (l *Logger) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}
