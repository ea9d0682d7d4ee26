package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/redzuankdv/Parking-App-FrontEnd/internal/domain"
	"github.com/redzuankdv/Parking-App-FrontEnd/pkg/psqlbuilder"
	"github.com/redzuankdv/Parking-App-FrontEnd/pkg/txmanager"
)

const (
	tableBookings = "bookings"

	// pqExclusionViolation нарушение EXCLUDE-ограничения bookings_no_overlap
	pqExclusionViolation = "23P01"
)

var bookingColumns = []string{
	"id",
	"plate",
	"location",
	"parkingarea",
	"slot",
	"intime",
	"outtime",
	"user_id",
}

// Repository репозиторий бронирований в PostgreSQL
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет бронирование и присваивает ему новый id.
// Если в контексте есть транзакция, запрос выполняется в ней.
func (r *Repository) Create(ctx context.Context, b domain.Booking) (*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	b.ID = uuid.NewString()

	query, args, err := psqlbuilder.Insert(tableBookings).
		Columns(bookingColumns...).
		Values(b.ID, b.Plate, b.Location, b.ParkingArea, b.Slot, b.InTime, b.OutTime, b.UserID).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		if isExclusionViolation(err) {
			return nil, ErrSlotConflict
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return &b, nil
}

// GetByID получает бронирование по ID. forUpdate блокирует строку до конца транзакции.
func (r *Repository) GetByID(ctx context.Context, id string, forUpdate bool) (*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(bookingColumns...).
		From(tableBookings).
		Where(squirrel.Eq{"id": id})
	if forUpdate {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	b, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return b, nil
}

// List возвращает бронирования в порядке создания. Пустой userID - все бронирования.
func (r *Repository) List(ctx context.Context, userID string) ([]domain.Booking, error) {
	builder := psqlbuilder.Select(bookingColumns...).
		From(tableBookings).
		OrderBy("created_at ASC", "id ASC")
	if userID != "" {
		builder = builder.Where(squirrel.Eq{"user_id": userID})
	}

	return r.query(ctx, "List", builder)
}

// ListOverlapping возвращает бронирования площадки, пересекающиеся с [from, to),
// и блокирует их до конца транзакции
func (r *Repository) ListOverlapping(ctx context.Context, q domain.AvailabilityQuery) ([]domain.Booking, error) {
	return r.query(ctx, "ListOverlapping", overlappingSelect(q))
}

// overlappingSelect полуинтервалы [intime, outtime) и [from, to) пересекаются,
// когда intime < to и from < outtime
func overlappingSelect(q domain.AvailabilityQuery) squirrel.SelectBuilder {
	return psqlbuilder.Select(bookingColumns...).
		From(tableBookings).
		Where(squirrel.Eq{"location": q.Location}).
		Where(squirrel.Eq{"parkingarea": q.ParkingArea}).
		Where(squirrel.Lt{"intime": q.To}).
		Where(squirrel.Gt{"outtime": q.From}).
		OrderBy("slot ASC").
		Suffix("FOR UPDATE")
}

// Update перезаписывает все поля бронирования, кроме id
func (r *Repository) Update(ctx context.Context, b domain.Booking) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableBookings).
		Set("plate", b.Plate).
		Set("location", b.Location).
		Set("parkingarea", b.ParkingArea).
		Set("slot", b.Slot).
		Set("intime", b.InTime).
		Set("outtime", b.OutTime).
		Set("user_id", b.UserID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": b.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if isExclusionViolation(err) {
			return ErrSlotConflict
		}
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return checkAffected(result, "Update")
}

// Delete удаляет бронирование
func (r *Repository) Delete(ctx context.Context, id string) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(tableBookings).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	return checkAffected(result, "Delete")
}

func (r *Repository) query(ctx context.Context, op string, builder squirrel.SelectBuilder) ([]domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute select: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan booking: %v", ErrScanRow, op, err)
		}
		bookings = append(bookings, *b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows iteration: %v", ErrScanRow, op, err)
	}

	return bookings, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	err := row.Scan(
		&b.ID,
		&b.Plate,
		&b.Location,
		&b.ParkingArea,
		&b.Slot,
		&b.InTime,
		&b.OutTime,
		&b.UserID,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func checkAffected(result sql.Result, op string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - rows affected: %v", ErrExecQuery, op, err)
	}
	if affected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

func isExclusionViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pqExclusionViolation
	}
	return false
}
