package select_slot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redzuankdv/Parking-App-FrontEnd/internal/domain"
)

// UseCase use case выбора слота из показанной сетки
type UseCase struct {
	sessions SessionService
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(sessions SessionService, logger Logger) *UseCase {
	return &UseCase{
		sessions: sessions,
		logger:   logger,
	}
}

// Execute выбирает слот. Выбор занятого слота ничего не меняет.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	slotID := domain.SlotID(strings.TrimSpace(string(req.SlotID)))
	if req.SessionID == "" || slotID == "" {
		return nil, fmt.Errorf("%w: session id and slot are required", ErrInvalidInput)
	}

	var resp Response
	err := uc.sessions.Update(ctx, req.SessionID, func(sess *domain.ClientSession) error {
		if sess.Flow.State == domain.FlowSubmitting {
			return ErrSubmissionInProgress
		}

		changed, err := sess.Flow.Select(slotID)
		if err != nil {
			return err
		}

		resp = Response{Flow: sess.Flow, Changed: changed}
		return nil
	})

	switch {
	case err == nil:
	case errors.Is(err, domain.ErrSearchRequired):
		uc.logger.Warn("SelectSlot: session=%s, slot=%s before search", req.SessionID, slotID)
		return nil, ErrSearchRequired
	case errors.Is(err, domain.ErrUnknownSlot):
		uc.logger.Warn("SelectSlot: session=%s, unknown slot=%s", req.SessionID, slotID)
		return nil, ErrUnknownSlot
	default:
		return nil, err
	}

	if !resp.Changed && resp.Flow.SelectedSlot != slotID {
		uc.logger.Info("SelectSlot: session=%s, slot=%s is booked, selection unchanged", req.SessionID, slotID)
	} else {
		uc.logger.Info("SelectSlot: session=%s, selected slot=%s", req.SessionID, slotID)
	}

	return &resp, nil
}
