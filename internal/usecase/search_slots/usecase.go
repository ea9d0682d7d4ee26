package search_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/redzuankdv/Parking-App-FrontEnd/internal/domain"
	"github.com/redzuankdv/Parking-App-FrontEnd/pkg/metrics"
)

// msgStoreUnavailable текст ошибки для пользователя при недоступности хранилища
const msgStoreUnavailable = "Unable to load bookings. Please try again."

// UseCase use case поиска свободных слотов для выбранного интервала
type UseCase struct {
	store    BookingStore
	sessions SessionService
	catalog  *domain.SlotCatalog
	metrics  Metrics
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	store BookingStore,
	sessions SessionService,
	catalog *domain.SlotCatalog,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		store:    store,
		sessions: sessions,
		catalog:  catalog,
		metrics:  metrics,
		logger:   logger,
	}
}

// Execute выполняет поиск: валидирует форму, получает все бронирования и размечает слоты
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.SessionID == "" {
		return nil, fmt.Errorf("%w: session id is required", ErrInvalidInput)
	}

	form := normalizeForm(req.Form)
	uc.logger.Info("SearchSlots: session=%s, user=%s, location=%s, area=%s, from=%s, to=%s",
		req.SessionID, req.UserID, form.Location, form.ParkingArea, form.From, form.To)

	var flow domain.BookingFlow
	err := uc.sessions.Update(ctx, req.SessionID, func(sess *domain.ClientSession) error {
		defer func() { flow = sess.Flow }()

		// 1. Пока идет отправка, форму не трогаем
		if sess.Flow.State == domain.FlowSubmitting {
			return ErrSubmissionInProgress
		}

		// 2. Валидация формы; хранилище при ошибке не вызывается
		query, fieldErrs := validateForm(form)
		if fieldErrs.HasErrors() {
			sess.Flow.RejectForm(form, fieldErrs)
			return &ValidationError{Fields: fieldErrs}
		}

		if err := sess.Flow.BeginSearch(form); err != nil {
			return ErrSubmissionInProgress
		}

		// 3. Получаем полную коллекцию бронирований
		bookings, err := uc.store.ListAll(ctx)
		if err != nil {
			sess.Flow.FailSearch(msgStoreUnavailable)
			return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}

		// 4. Размечаем слоты; редактируемое бронирование не блокирует свой слот
		query.ExcludeBookingID = sess.Flow.EditingID
		grid := domain.ResolveAvailability(uc.catalog, bookings, query)
		sess.Flow.ShowSlots(grid)

		uc.logger.Info("SearchSlots: session=%s, %d of %d slots booked, selected=%q",
			req.SessionID, len(grid.BookedIDs()), len(grid.Slots), sess.Flow.SelectedSlot)
		return nil
	})

	switch {
	case err == nil:
		uc.metrics.IncSearch(metrics.OutcomeSuccess)
	case errors.Is(err, ErrValidation):
		uc.logger.Warn("SearchSlots: session=%s, validation failed: %v", req.SessionID, err)
		uc.metrics.IncSearch(metrics.OutcomeValidation)
		return nil, err
	case errors.Is(err, ErrStoreUnavailable):
		uc.logger.Error("SearchSlots: session=%s, failed to fetch bookings: %v", req.SessionID, err)
		uc.metrics.IncSearch(metrics.OutcomeUnavailable)
		return nil, err
	default:
		uc.logger.Warn("SearchSlots: session=%s, search rejected: %v", req.SessionID, err)
		uc.metrics.IncSearch(metrics.OutcomeError)
		return nil, err
	}

	return &Response{Flow: flow}, nil
}
