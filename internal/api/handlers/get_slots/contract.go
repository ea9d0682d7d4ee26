package get_slots

import "github.com/redzuankdv/Parking-App-FrontEnd/internal/domain"

type SlotCatalog interface {
	ListSlotIDs() []domain.SlotID
}

type Logger interface {
	Info(format string, v ...interface{})
}
