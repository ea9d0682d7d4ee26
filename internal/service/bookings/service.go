package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redzuankdv/Parking-App-FrontEnd/internal/domain"
	bookingRepo "github.com/redzuankdv/Parking-App-FrontEnd/internal/infra/storage/booking"
	"github.com/redzuankdv/Parking-App-FrontEnd/internal/service/bookings/models"
)

const conflictSource = "bookingstore"

// Service сервис хранилища бронирований
type Service struct {
	bookingRepo BookingRepository
	txManager   TransactionManager
	catalog     *domain.SlotCatalog
	metrics     Metrics
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	catalog *domain.SlotCatalog,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		txManager:   txManager,
		catalog:     catalog,
		metrics:     metrics,
		logger:      logger,
	}
}

// List возвращает бронирования в порядке хранилища. Пустой userID - все бронирования.
func (s *Service) List(ctx context.Context, userID string) ([]*models.BookingResponse, error) {
	bookings, err := s.bookingRepo.List(ctx, userID)
	if err != nil {
		s.logger.Error("List: repository error for user=%q: %v", userID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: %d bookings for user=%q", len(bookings), userID)
	return models.FromDomainBookings(bookings), nil
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.BookingResponse, error) {
	b, err := s.bookingRepo.GetByID(ctx, id, false)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(b), nil
}

// Create проверяет доступность слота и сохраняет бронирование в одной сериализуемой транзакции
func (s *Service) Create(ctx context.Context, req *models.BookingRequest) (*models.BookingResponse, error) {
	// 1. Разбираем и валидируем запись
	b, errs := req.ToDomain()
	if errs = models.Validate(b, s.catalog, errs); errs.HasErrors() {
		s.logger.Warn("Create: invalid booking: %v", errs)
		return nil, &ValidationError{Fields: errs}
	}

	// 2. Проверка пересечения и вставка атомарно
	var created *domain.Booking
	err := s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		if err := s.ensureSlotFree(ctx, b, ""); err != nil {
			return err
		}

		var err error
		created, err = s.bookingRepo.Create(ctx, b)
		return err
	})
	if err != nil {
		return nil, s.mapWriteError("Create", err)
	}

	s.logger.Info("Create: booking id=%s created (user=%s, %s/%s slot=%s, %s..%s)",
		created.ID, created.UserID, created.Location, created.ParkingArea, created.Slot, created.InTime, created.OutTime)
	return models.FromDomainBooking(created), nil
}

// Update применяет заданные поля к бронированию. Бронирование не конфликтует само с собой.
func (s *Service) Update(ctx context.Context, id string, req *models.BookingRequest) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("%w: booking id is required", ErrInvalidInput)
	}

	// 1. Разбираем заданные поля
	update, parseErrs := req.ToDomain()
	if parseErrs.HasErrors() {
		s.logger.Warn("Update: invalid booking id=%s: %v", id, parseErrs)
		return &ValidationError{Fields: parseErrs}
	}

	err := s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		// 2. Блокируем текущую запись
		existing, err := s.bookingRepo.GetByID(ctx, id, true)
		if err != nil {
			return err
		}

		// 3. Сливаем поля и проверяем итоговую запись
		merged := domain.MergeBooking(*existing, update)
		if errs := models.Validate(merged, s.catalog, nil); errs.HasErrors() {
			return &ValidationError{Fields: errs}
		}

		// 4. Проверка пересечения без учета самой записи
		if err := s.ensureSlotFree(ctx, merged, id); err != nil {
			return err
		}

		return s.bookingRepo.Update(ctx, merged)
	})
	if err != nil {
		return s.mapWriteError("Update", err)
	}

	s.logger.Info("Update: booking id=%s updated", id)
	return nil
}

// Delete удаляет бронирование
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%s not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: booking id=%s deleted", id)
	return nil
}

// ensureSlotFree размечает слоты площадки на интервал записи и отклоняет занятый слот
func (s *Service) ensureSlotFree(ctx context.Context, b domain.Booking, excludeID string) error {
	query := domain.AvailabilityQuery{
		Location:         b.Location,
		ParkingArea:      b.ParkingArea,
		From:             b.InTime,
		To:               b.OutTime,
		ExcludeBookingID: excludeID,
	}

	overlapping, err := s.bookingRepo.ListOverlapping(ctx, query)
	if err != nil {
		return err
	}

	grid := domain.ResolveAvailability(s.catalog, overlapping, query)
	if !grid.IsAvailable(b.Slot) {
		return ErrSlotNotAvailable
	}
	return nil
}

func (s *Service) mapWriteError(op string, err error) error {
	var validationErr *ValidationError
	switch {
	case errors.As(err, &validationErr):
		s.logger.Warn("%s: invalid booking: %v", op, err)
		return err
	case errors.Is(err, ErrSlotNotAvailable), errors.Is(err, bookingRepo.ErrSlotConflict):
		s.logger.Warn("%s: slot conflict: %v", op, err)
		s.metrics.IncConflict(conflictSource)
		return ErrSlotNotAvailable
	case errors.Is(err, bookingRepo.ErrBookingNotFound):
		s.logger.Warn("%s: booking not found", op)
		return ErrBookingNotFound
	default:
		s.logger.Error("%s: repository error: %v", op, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
}
