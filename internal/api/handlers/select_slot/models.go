package select_slot

import (
	"github.com/redzuankdv/Parking-App-FrontEnd/internal/api/handlers"
	"github.com/redzuankdv/Parking-App-FrontEnd/internal/domain"
	selectSlot "github.com/redzuankdv/Parking-App-FrontEnd/internal/usecase/select_slot"
)

// SelectSlotRequest HTTP request model
type SelectSlotRequest struct {
	Slot string `json:"slot"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SelectSlotRequest) ToUseCaseRequest(sessionID string) *selectSlot.Request {
	return &selectSlot.Request{
		SessionID: sessionID,
		SlotID:    domain.SlotID(r.Slot),
	}
}

// SelectSlotResponse HTTP response model
type SelectSlotResponse struct {
	handlers.FlowResponse
	Changed bool `json:"changed"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *selectSlot.Response) *SelectSlotResponse {
	return &SelectSlotResponse{
		FlowResponse: handlers.FromFlow(resp.Flow),
		Changed:      resp.Changed,
	}
}
