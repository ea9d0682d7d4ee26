package start_edit

import (
	"context"

	startEdit "github.com/redzuankdv/Parking-App-FrontEnd/internal/usecase/start_edit"
)

type StartEditUseCase interface {
	Execute(ctx context.Context, req *startEdit.Request) (*startEdit.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
