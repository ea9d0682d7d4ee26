package search_slots

import (
	"strings"

	"github.com/redzuankdv/Parking-App-FrontEnd/internal/domain"
	"github.com/redzuankdv/Parking-App-FrontEnd/pkg/types"
)

// Сообщения об ошибках полей формы
const (
	msgPlateRequired    = "Plate number is required"
	msgLocationRequired = "Location is required"
	msgAreaRequired     = "Area is required"
	msgFromRequired     = "From date is required"
	msgToRequired       = "To date is required"
	msgLocationUnknown  = "Location must be SigmaSchool or SigmaOffice"
	msgAreaUnknown      = "Area must be Parking A or Parking B"
	msgFromInvalid      = "From date must be a valid date and time"
	msgToInvalid        = "To date must be a valid date and time"
	msgToNotAfterFrom   = "To date must be after From date"
)

// normalizeForm убирает пробелы по краям полей
func normalizeForm(form domain.BookingForm) domain.BookingForm {
	return domain.BookingForm{
		Plate:       strings.TrimSpace(form.Plate),
		Location:    strings.TrimSpace(form.Location),
		ParkingArea: strings.TrimSpace(form.ParkingArea),
		From:        strings.TrimSpace(form.From),
		To:          strings.TrimSpace(form.To),
	}
}

// validateForm проверяет форму и возвращает запрос к резолверу.
// Сначала проверяется наличие полей, затем их формат.
func validateForm(form domain.BookingForm) (domain.AvailabilityQuery, domain.FieldErrors) {
	errs := domain.FieldErrors{}

	// 1. Обязательные поля
	if form.Plate == "" {
		errs.Add(domain.FieldPlate, msgPlateRequired)
	}
	if form.Location == "" {
		errs.Add(domain.FieldLocation, msgLocationRequired)
	}
	if form.ParkingArea == "" {
		errs.Add(domain.FieldParkingArea, msgAreaRequired)
	}
	if form.From == "" {
		errs.Add(domain.FieldFrom, msgFromRequired)
	}
	if form.To == "" {
		errs.Add(domain.FieldTo, msgToRequired)
	}

	// 2. Допустимые значения
	location := domain.Location(form.Location)
	if form.Location != "" && !location.IsValid() {
		errs.Add(domain.FieldLocation, msgLocationUnknown)
	}
	area := domain.ParkingArea(form.ParkingArea)
	if form.ParkingArea != "" && !area.IsValid() {
		errs.Add(domain.FieldParkingArea, msgAreaUnknown)
	}

	var from, to types.DateTime
	var err error
	if form.From != "" {
		if from, err = types.ParseDateTime(form.From); err != nil {
			errs.Add(domain.FieldFrom, msgFromInvalid)
		}
	}
	if form.To != "" {
		if to, err = types.ParseDateTime(form.To); err != nil {
			errs.Add(domain.FieldTo, msgToInvalid)
		}
	}

	// 3. Интервал [from, to) не пустой
	if !from.IsZero() && !to.IsZero() && !from.Before(to) {
		errs.Add(domain.FieldTo, msgToNotAfterFrom)
	}

	return domain.AvailabilityQuery{
		Location:    location,
		ParkingArea: area,
		From:        from,
		To:          to,
	}, errs
}
