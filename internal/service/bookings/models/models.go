package models

import (
	"strings"

	"github.com/redzuankdv/Parking-App-FrontEnd/internal/domain"
	"github.com/redzuankdv/Parking-App-FrontEnd/pkg/types"
)

// Сообщения об ошибках полей записи
const (
	msgPlateRequired   = "plate is required"
	msgLocationInvalid = "location must be one of SigmaSchool, SigmaOffice"
	msgAreaInvalid     = "parkingarea must be one of Parking A, Parking B"
	msgSlotInvalid     = "slot is not part of the slot catalog"
	msgInTimeInvalid   = "intime must be in YYYY-MM-DDTHH:MM format"
	msgOutTimeInvalid  = "outtime must be in YYYY-MM-DDTHH:MM format"
	msgIntervalInvalid = "outtime must be after intime"
	msgUserIDRequired  = "userId is required"
	fieldInTime        = "intime"
	fieldOutTime       = "outtime"
)

// Request модели

// BookingRequest тело POST и PUT /bookings. Поля строковые, чтобы вернуть ошибку по каждому полю.
type BookingRequest struct {
	Plate       string `json:"plate"`
	Location    string `json:"location"`
	ParkingArea string `json:"parkingarea"`
	Slot        string `json:"slot"`
	InTime      string `json:"intime"`
	OutTime     string `json:"outtime"`
	UserID      string `json:"userId"`
}

// ToDomain разбирает заданные поля. Пустые поля остаются нулевыми.
func (r *BookingRequest) ToDomain() (domain.Booking, domain.FieldErrors) {
	errs := domain.FieldErrors{}
	b := domain.Booking{
		Plate:       strings.TrimSpace(r.Plate),
		Location:    domain.Location(strings.TrimSpace(r.Location)),
		ParkingArea: domain.ParkingArea(strings.TrimSpace(r.ParkingArea)),
		Slot:        domain.SlotID(strings.TrimSpace(r.Slot)),
		UserID:      strings.TrimSpace(r.UserID),
	}

	if s := strings.TrimSpace(r.InTime); s != "" {
		t, err := types.ParseDateTime(s)
		if err != nil {
			errs.Add(fieldInTime, msgInTimeInvalid)
		}
		b.InTime = t
	}
	if s := strings.TrimSpace(r.OutTime); s != "" {
		t, err := types.ParseDateTime(s)
		if err != nil {
			errs.Add(fieldOutTime, msgOutTimeInvalid)
		}
		b.OutTime = t
	}

	return b, errs
}

// Validate проверяет полную запись перед сохранением
func Validate(b domain.Booking, catalog *domain.SlotCatalog, errs domain.FieldErrors) domain.FieldErrors {
	if errs == nil {
		errs = domain.FieldErrors{}
	}

	if b.Plate == "" {
		errs.Add(domain.FieldPlate, msgPlateRequired)
	}
	if !b.Location.IsValid() {
		errs.Add(domain.FieldLocation, msgLocationInvalid)
	}
	if !b.ParkingArea.IsValid() {
		errs.Add(domain.FieldParkingArea, msgAreaInvalid)
	}
	if !catalog.Contains(b.Slot) {
		errs.Add(domain.FieldSlot, msgSlotInvalid)
	}
	if b.InTime.IsZero() {
		errs.Add(fieldInTime, msgInTimeInvalid)
	}
	if b.OutTime.IsZero() {
		errs.Add(fieldOutTime, msgOutTimeInvalid)
	}
	if !b.InTime.IsZero() && !b.OutTime.IsZero() && !b.HasValidInterval() {
		errs.Add(fieldOutTime, msgIntervalInvalid)
	}
	if b.UserID == "" {
		errs.Add(domain.FieldUserID, msgUserIDRequired)
	}

	return errs
}

// Response модели

// BookingResponse запись бронирования в формате хранилища
type BookingResponse struct {
	ID          string `json:"id"`
	Plate       string `json:"plate"`
	Location    string `json:"location"`
	ParkingArea string `json:"parkingarea"`
	Slot        string `json:"slot"`
	InTime      string `json:"intime"`
	OutTime     string `json:"outtime"`
	UserID      string `json:"userId"`
}

// FromDomainBooking конвертирует domain модель в response
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:          b.ID,
		Plate:       b.Plate,
		Location:    string(b.Location),
		ParkingArea: string(b.ParkingArea),
		Slot:        string(b.Slot),
		InTime:      b.InTime.String(),
		OutTime:     b.OutTime.String(),
		UserID:      b.UserID,
	}
}

// FromDomainBookings конвертирует список, сохраняя порядок
func FromDomainBookings(list []domain.Booking) []*BookingResponse {
	out := make([]*BookingResponse, 0, len(list))
	for i := range list {
		out = append(out, FromDomainBooking(&list[i]))
	}
	return out
}
