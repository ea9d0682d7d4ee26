package collection

import (
	"context"
	"errors"
	"fmt"

	"github.com/redzuankdv/Parking-App-FrontEnd/internal/domain"
	storeClient "github.com/redzuankdv/Parking-App-FrontEnd/internal/integrations/bookingstore"
)

// Service кэш бронирований вошедшего пользователя внутри клиентской сессии.
// Коллекция перечитывается из хранилища при смене пользователя и очищается при выходе.
type Service struct {
	store    BookingStore
	sessions SessionService
	logger   Logger
}

// NewService создает новый экземпляр сервиса коллекции
func NewService(store BookingStore, sessions SessionService, logger Logger) *Service {
	return &Service{
		store:    store,
		sessions: sessions,
		logger:   logger,
	}
}

// Sync приводит коллекцию в соответствие с текущим пользователем
func (s *Service) Sync(ctx context.Context, sess *domain.ClientSession, userID string) error {
	if userID == "" {
		if sess.Collection.Loaded {
			s.logger.Info("Collection: user signed out, clearing session=%s", sess.ID)
		}
		sess.Collection.Clear()
		return nil
	}

	if !sess.Collection.NeedsReload(userID) {
		return nil
	}

	return s.reload(ctx, sess, userID)
}

// List возвращает бронирования текущего пользователя
func (s *Service) List(ctx context.Context, sessionID, userID string) ([]domain.Booking, error) {
	var bookings []domain.Booking
	err := s.sessions.Update(ctx, sessionID, func(sess *domain.ClientSession) error {
		var err error
		bookings, err = s.list(ctx, sess, userID)
		return err
	})
	return bookings, err
}

// Refresh принудительно перечитывает коллекцию из хранилища
func (s *Service) Refresh(ctx context.Context, sessionID, userID string) ([]domain.Booking, error) {
	var bookings []domain.Booking
	err := s.sessions.Update(ctx, sessionID, func(sess *domain.ClientSession) error {
		var err error
		bookings, err = s.refresh(ctx, sess, userID)
		return err
	})
	return bookings, err
}

// Delete удаляет бронирование пользователя в хранилище и из коллекции
func (s *Service) Delete(ctx context.Context, sessionID, userID, bookingID string) error {
	return s.sessions.Update(ctx, sessionID, func(sess *domain.ClientSession) error {
		return s.delete(ctx, sess, userID, bookingID)
	})
}

func (s *Service) list(ctx context.Context, sess *domain.ClientSession, userID string) ([]domain.Booking, error) {
	if userID == "" {
		sess.Collection.Clear()
		return nil, ErrUnauthenticated
	}
	if err := s.Sync(ctx, sess, userID); err != nil {
		return nil, err
	}
	return sess.Collection.List(), nil
}

func (s *Service) refresh(ctx context.Context, sess *domain.ClientSession, userID string) ([]domain.Booking, error) {
	if userID == "" {
		sess.Collection.Clear()
		return nil, ErrUnauthenticated
	}
	if err := s.reload(ctx, sess, userID); err != nil {
		return nil, err
	}
	return sess.Collection.List(), nil
}

func (s *Service) delete(ctx context.Context, sess *domain.ClientSession, userID, bookingID string) error {
	// 1. Только для вошедшего пользователя
	if userID == "" {
		sess.Collection.Clear()
		return ErrUnauthenticated
	}

	// 2. Коллекция должна принадлежать этому пользователю
	if err := s.Sync(ctx, sess, userID); err != nil {
		return err
	}

	// 3. Удалять можно только свое бронирование
	if _, ok := sess.Collection.Find(bookingID); !ok {
		s.logger.Warn("Collection: booking id=%s not found for user=%s", bookingID, userID)
		return ErrBookingNotFound
	}

	// 4. Удаляем в хранилище
	err := s.store.Delete(ctx, bookingID)
	if err != nil && !errors.Is(err, storeClient.ErrNotFound) {
		s.logger.Error("Collection: failed to delete booking id=%s: %v", bookingID, err)
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if err != nil {
		s.logger.Warn("Collection: booking id=%s already absent in store", bookingID)
	}

	// 5. Удаляем из коллекции
	sess.Collection.Remove(bookingID)
	s.logger.Info("Collection: booking id=%s deleted by user=%s", bookingID, userID)
	return nil
}

// ApplyCreated добавляет созданное бронирование, если коллекция принадлежит его владельцу
func (s *Service) ApplyCreated(sess *domain.ClientSession, userID string, b domain.Booking) {
	if sess.Collection.NeedsReload(userID) {
		return
	}
	sess.Collection.Append(b)
}

// ApplyUpdated сливает обновленные поля в бронирование коллекции
func (s *Service) ApplyUpdated(sess *domain.ClientSession, userID string, b domain.Booking) {
	if sess.Collection.NeedsReload(userID) {
		return
	}
	if !sess.Collection.Merge(b) {
		s.logger.Warn("Collection: updated booking id=%s is not cached for user=%s", b.ID, userID)
	}
}

func (s *Service) reload(ctx context.Context, sess *domain.ClientSession, userID string) error {
	bookings, err := s.store.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("Collection: failed to fetch bookings for user=%s: %v", userID, err)
		sess.Collection.Clear()
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	sess.Collection.Reset(userID, bookings)
	s.logger.Info("Collection: loaded %d bookings for user=%s", len(bookings), userID)
	return nil
}
