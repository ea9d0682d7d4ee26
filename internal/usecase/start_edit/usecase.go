package start_edit

import (
	"context"
	"errors"
	"fmt"

	"github.com/redzuankdv/Parking-App-FrontEnd/internal/domain"
	storeClient "github.com/redzuankdv/Parking-App-FrontEnd/internal/integrations/bookingstore"
)

// UseCase use case начала редактирования существующего бронирования
type UseCase struct {
	store    BookingStore
	sessions SessionService
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(store BookingStore, sessions SessionService, logger Logger) *UseCase {
	return &UseCase{
		store:    store,
		sessions: sessions,
		logger:   logger,
	}
}

// Execute загружает бронирование и заполняет им flow редактирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req.SessionID == "" || req.BookingID == "" {
		return nil, fmt.Errorf("%w: session id and booking id are required", ErrInvalidInput)
	}
	if req.UserID == "" {
		uc.logger.Warn("StartEdit: session=%s, booking=%s, user is not signed in", req.SessionID, req.BookingID)
		return nil, ErrUnauthenticated
	}

	// 2. Получаем бронирование из хранилища
	booking, err := uc.store.Get(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, storeClient.ErrNotFound) {
			uc.logger.Warn("StartEdit: booking id=%s not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("StartEdit: failed to get booking id=%s: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	// 3. Редактировать можно только свое бронирование
	if booking.UserID != req.UserID {
		uc.logger.Warn("StartEdit: user=%s is not the owner of booking id=%s", req.UserID, req.BookingID)
		return nil, ErrAccessDenied
	}

	// 4. Начинаем flow редактирования
	var flow domain.BookingFlow
	err = uc.sessions.Update(ctx, req.SessionID, func(sess *domain.ClientSession) error {
		if sess.Flow.State == domain.FlowSubmitting {
			return ErrSubmissionInProgress
		}
		sess.Flow = domain.NewEditFlow(*booking)
		flow = sess.Flow
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("StartEdit: session=%s, editing booking id=%s, slot=%s", req.SessionID, booking.ID, booking.Slot)
	return &Response{Flow: flow}, nil
}
