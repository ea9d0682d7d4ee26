package get_slots

import (
	"net/http"

	"github.com/redzuankdv/Parking-App-FrontEnd/internal/api/handlers"
	"github.com/redzuankdv/Parking-App-FrontEnd/internal/domain"
)

// SlotsResponse каталог слотов и допустимые значения формы
type SlotsResponse struct {
	Slots        []string `json:"slots"`
	Locations    []string `json:"locations"`
	ParkingAreas []string `json:"parkingAreas"`
}

type Handler struct {
	catalog SlotCatalog
	logger  Logger
}

func NewHandler(catalog SlotCatalog, logger Logger) *Handler {
	return &Handler{
		catalog: catalog,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ids := h.catalog.ListSlotIDs()

	resp := SlotsResponse{
		Slots:        make([]string, 0, len(ids)),
		Locations:    make([]string, 0, len(domain.Locations)),
		ParkingAreas: make([]string, 0, len(domain.ParkingAreas)),
	}
	for _, id := range ids {
		resp.Slots = append(resp.Slots, string(id))
	}
	for _, l := range domain.Locations {
		resp.Locations = append(resp.Locations, string(l))
	}
	for _, a := range domain.ParkingAreas {
		resp.ParkingAreas = append(resp.ParkingAreas, string(a))
	}

	h.logger.Info("GET /slots - Catalog returned: count=%d", len(resp.Slots))
	handlers.RespondJSON(w, http.StatusOK, resp)
}
