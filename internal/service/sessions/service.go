package sessions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redzuankdv/Parking-App-FrontEnd/internal/domain"
	sessionRepo "github.com/redzuankdv/Parking-App-FrontEnd/internal/infra/storage/session"
)

// Service загружает и сохраняет клиентские сессии.
// Изменения одной сессии внутри процесса выполняются последовательно.
type Service struct {
	repo         SessionRepository
	timeProvider TimeProvider
	logger       Logger

	locks *keyedMutex
}

// staleSubmitAfter через сколько незавершенная отправка считается прерванной
const staleSubmitAfter = time.Minute

// msgSubmitInterrupted текст ошибки flow после прерванной отправки
const msgSubmitInterrupted = "The previous submission did not finish. Please check your bookings and try again."

// NewService создает новый экземпляр сервиса сессий
func NewService(repo SessionRepository, logger Logger) *Service {
	return &Service{
		repo:         repo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		locks:        newKeyedMutex(),
	}
}

// Get возвращает сессию; несуществующая или истекшая сессия возвращается новой (не сохраненной)
func (s *Service) Get(ctx context.Context, id string) (*domain.ClientSession, error) {
	if id == "" {
		return nil, ErrInvalidInput
	}
	return s.load(ctx, id)
}

// Update загружает сессию, применяет fn и сохраняет результат.
// Сессия сохраняется и тогда, когда fn вернула ошибку: состояние flow после ошибки тоже значимо.
func (s *Service) Update(ctx context.Context, id string, fn func(sess *domain.ClientSession) error) error {
	if id == "" {
		return ErrInvalidInput
	}

	unlock := s.locks.Lock(id)
	defer unlock()

	sess, err := s.load(ctx, id)
	if err != nil {
		return err
	}

	wasSubmitting := sess.Flow.State == domain.FlowSubmitting
	fnErr := fn(sess)

	now := s.timeProvider.Now()
	if !wasSubmitting && sess.Flow.State == domain.FlowSubmitting {
		sess.Flow.SubmitStartedAt = now
	}
	sess.UpdatedAt = now
	if err := s.repo.Save(ctx, sess); err != nil {
		s.logger.Error("Update: failed to save session id=%s: %v", id, err)
		return fmt.Errorf("%w: failed to save session: %v", ErrInternal, err)
	}

	return fnErr
}

// ResetFlow начинает новый flow создания бронирования
func (s *Service) ResetFlow(ctx context.Context, id string) (*domain.BookingFlow, error) {
	var flow domain.BookingFlow
	err := s.Update(ctx, id, func(sess *domain.ClientSession) error {
		if sess.Flow.State == domain.FlowSubmitting {
			return ErrSubmissionInProgress
		}
		sess.Flow = domain.NewBookingFlow()
		flow = sess.Flow
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &flow, nil
}

func (s *Service) load(ctx context.Context, id string) (*domain.ClientSession, error) {
	sess, err := s.repo.Get(ctx, id)
	if err == nil {
		s.recoverStaleSubmit(sess)
		return sess, nil
	}
	if errors.Is(err, sessionRepo.ErrSessionNotFound) {
		s.logger.Info("Session id=%s not found, starting a new one", id)
		return domain.NewClientSession(id, s.timeProvider.Now()), nil
	}

	s.logger.Error("Failed to load session id=%s: %v", id, err)
	return nil, fmt.Errorf("%w: failed to load session: %v", ErrInternal, err)
}

// recoverStaleSubmit возвращает в selected flow, отправка которого не завершилась
// (процесс остановился между сохранением submitting и ответом хранилища)
func (s *Service) recoverStaleSubmit(sess *domain.ClientSession) {
	if sess.Flow.State != domain.FlowSubmitting {
		return
	}
	if s.timeProvider.Now().Sub(sess.Flow.SubmitStartedAt) < staleSubmitAfter {
		return
	}
	s.logger.Warn("Session id=%s: submission started at %s did not finish, returning flow to selected",
		sess.ID, sess.Flow.SubmitStartedAt.Format(time.RFC3339))
	sess.Flow.FailSubmit(msgSubmitInterrupted)
}
