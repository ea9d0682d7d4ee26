package search_slots

import (
	"context"

	searchSlots "github.com/redzuankdv/Parking-App-FrontEnd/internal/usecase/search_slots"
)

type SearchSlotsUseCase interface {
	Execute(ctx context.Context, req *searchSlots.Request) (*searchSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
