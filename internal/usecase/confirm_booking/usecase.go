package confirm_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/redzuankdv/Parking-App-FrontEnd/internal/domain"
	storeClient "github.com/redzuankdv/Parking-App-FrontEnd/internal/integrations/bookingstore"
	"github.com/redzuankdv/Parking-App-FrontEnd/pkg/metrics"
)

// Сообщения, которые flow показывает после неудачной отправки
const (
	msgNoSlotSelected   = "Please select a parking slot."
	msgUnauthenticated  = "You must be logged in to book a parking slot."
	msgAccessDenied     = "You can only change your own bookings."
	msgSlotTaken        = "This slot was just booked by someone else. Please search again."
	msgBookingNotFound  = "This booking no longer exists."
	msgStoreRejected    = "The booking was rejected. Please check the details and try again."
	msgStoreUnavailable = "Unable to save the booking. Please try again."
)

// UseCase use case подтверждения бронирования (создание или изменение)
type UseCase struct {
	store      BookingStore
	sessions   SessionService
	collection CollectionService
	metrics    Metrics
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	store BookingStore,
	sessions SessionService,
	collection CollectionService,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		store:      store,
		sessions:   sessions,
		collection: collection,
		metrics:    metrics,
		logger:     logger,
	}
}

// Execute отправляет выбранный слот в хранилище. Запись не повторяется автоматически.
//
// Состояние submitting сохраняется до обращения к хранилищу, поэтому повторное
// подтверждение, пока запись не завершилась, получает ErrSubmissionInProgress.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.SessionID == "" {
		return nil, fmt.Errorf("%w: session id is required", ErrInvalidInput)
	}

	// 1. Проверки и переход в submitting
	var (
		draft     domain.Booking
		operation string
	)
	err := uc.sessions.Update(ctx, req.SessionID, func(sess *domain.ClientSession) error {
		var err error
		draft, operation, err = uc.begin(sess, req.UserID)
		return err
	})
	if err != nil {
		uc.logger.Warn("ConfirmBooking: session=%s, not confirmed: %v", req.SessionID, err)
		return nil, err
	}

	uc.logger.Info("ConfirmBooking: session=%s, user=%s, %s booking id=%q, slot=%s, %s..%s",
		req.SessionID, req.UserID, operation, draft.ID, draft.Slot, draft.InTime, draft.OutTime)

	// 2. Отправляем в хранилище вне блокировки сессии
	receipt, submitErr := uc.submit(ctx, operation, draft)

	// 3. Фиксируем результат в сессии
	var resp Response
	err = uc.sessions.Update(ctx, req.SessionID, func(sess *domain.ClientSession) error {
		flow := &sess.Flow

		if submitErr != nil {
			failure := uc.mapStoreError(submitErr)
			flow.FailSubmit(failureMessage(failure))
			uc.metrics.IncSubmission(operation, outcomeOf(failure))
			if errors.Is(failure, ErrSlotTaken) {
				uc.metrics.IncConflict("store")
			}
			return fmt.Errorf("%w: %v", failure, submitErr)
		}

		if operation == OperationCreate {
			uc.collection.ApplyCreated(sess, req.UserID, receipt)
		} else {
			uc.collection.ApplyUpdated(sess, req.UserID, receipt)
		}
		flow.Confirm(receipt)
		uc.metrics.IncSubmission(operation, metrics.OutcomeSuccess)

		resp = Response{Flow: *flow, Booking: receipt, Operation: operation}
		return nil
	})
	if err != nil {
		uc.logger.Error("ConfirmBooking: session=%s, %s failed: %v", req.SessionID, operation, err)
		return nil, err
	}

	uc.logger.Info("ConfirmBooking: session=%s, booking id=%s confirmed on slot=%s",
		req.SessionID, resp.Booking.ID, resp.Booking.Slot)
	return &resp, nil
}

// begin проверяет, что flow можно отправить, и переводит его в submitting
func (uc *UseCase) begin(sess *domain.ClientSession, userID string) (domain.Booking, string, error) {
	flow := &sess.Flow

	// 1. Повторное нажатие во время отправки
	if flow.State == domain.FlowSubmitting {
		return domain.Booking{}, "", ErrSubmissionInProgress
	}

	// 2. Без показанной сетки подтверждать нечего
	if !flow.HasResults() {
		return domain.Booking{}, "", ErrSearchRequired
	}

	operation := OperationCreate
	if flow.IsEdit() {
		operation = OperationUpdate
	}

	// 3. Guard: слот выбран
	if flow.SelectedSlot == "" {
		flow.LastError = msgNoSlotSelected
		uc.metrics.IncSubmission(operation, metrics.OutcomeGuard)
		return domain.Booking{}, "", ErrNoSlotSelected
	}

	// 4. Guard: пользователь вошел
	if userID == "" {
		flow.LastError = msgUnauthenticated
		uc.metrics.IncSubmission(operation, metrics.OutcomeGuard)
		return domain.Booking{}, "", ErrUnauthenticated
	}

	// 5. Guard: изменять можно только свое бронирование
	if !flow.CanBeSubmittedBy(userID) {
		flow.LastError = msgAccessDenied
		uc.metrics.IncSubmission(operation, metrics.OutcomeGuard)
		uc.logger.Warn("ConfirmBooking: user=%s is not the owner of booking id=%s", userID, flow.EditingID)
		return domain.Booking{}, "", ErrAccessDenied
	}

	// 6. Выбранный слот свободен в текущей сетке
	if !flow.Grid.IsAvailable(flow.SelectedSlot) {
		uc.metrics.IncSubmission(operation, metrics.OutcomeGuard)
		return domain.Booking{}, "", ErrSlotNotAvailable
	}

	draft := flow.Draft(userID)
	flow.BeginSubmit()
	return draft, operation, nil
}

func (uc *UseCase) submit(ctx context.Context, operation string, draft domain.Booking) (domain.Booking, error) {
	if operation == OperationUpdate {
		if err := uc.store.Update(ctx, draft); err != nil {
			return domain.Booking{}, err
		}
		return draft, nil
	}

	created, err := uc.store.Create(ctx, draft)
	if err != nil {
		return domain.Booking{}, err
	}
	return *created, nil
}

// mapStoreError переводит ошибку клиента хранилища в ошибку use case
func (uc *UseCase) mapStoreError(err error) error {
	switch {
	case errors.Is(err, storeClient.ErrConflict):
		return ErrSlotTaken
	case errors.Is(err, storeClient.ErrNotFound):
		return ErrBookingNotFound
	case errors.Is(err, storeClient.ErrRejected):
		return ErrStoreRejected
	default:
		return ErrStoreUnavailable
	}
}

func failureMessage(err error) string {
	switch err {
	case ErrSlotTaken:
		return msgSlotTaken
	case ErrBookingNotFound:
		return msgBookingNotFound
	case ErrStoreRejected:
		return msgStoreRejected
	default:
		return msgStoreUnavailable
	}
}

func outcomeOf(err error) string {
	switch err {
	case ErrSlotTaken:
		return metrics.OutcomeConflict
	case ErrStoreUnavailable:
		return metrics.OutcomeUnavailable
	default:
		return metrics.OutcomeError
	}
}
