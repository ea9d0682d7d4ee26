package confirm_booking

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redzuankdv/Parking-App-FrontEnd/internal/api/handlers"
	"github.com/redzuankdv/Parking-App-FrontEnd/internal/api/middleware"
	"github.com/redzuankdv/Parking-App-FrontEnd/internal/domain"
	confirmBooking "github.com/redzuankdv/Parking-App-FrontEnd/internal/usecase/confirm_booking"
	"github.com/redzuankdv/Parking-App-FrontEnd/pkg/logger"
	"github.com/redzuankdv/Parking-App-FrontEnd/pkg/types"
)

type fakeUseCase struct {
	got  *confirmBooking.Request
	resp *confirmBooking.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *confirmBooking.Request) (*confirmBooking.Response, error) {
	f.got = req
	return f.resp, f.err
}

func doRequest(h *Handler, uid string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/flow/confirm", nil)
	ctx := middleware.WithSessionID(req.Context(), "s1")
	if uid != "" {
		ctx = middleware.WithUserID(ctx, uid)
	}
	rec := httptest.NewRecorder()
	h.Handle(rec, req.WithContext(ctx))
	return rec
}

func receipt() domain.Booking {
	return domain.Booking{
		ID:          "b-42",
		Plate:       "ABC123",
		Location:    domain.LocationSigmaOffice,
		ParkingArea: domain.ParkingAreaB,
		Slot:        "P7",
		InTime:      types.MustParseDateTime("2024-05-01T10:00"),
		OutTime:     types.MustParseDateTime("2024-05-01T12:00"),
		UserID:      "u1",
	}
}

func TestHandle_Created(t *testing.T) {
	b := receipt()
	flow := domain.NewBookingFlow()
	flow.Confirm(b)
	uc := &fakeUseCase{resp: &confirmBooking.Response{Flow: flow, Booking: b, Operation: confirmBooking.OperationCreate}}

	rec := doRequest(NewHandler(uc, logger.Nop()), "u1")

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "u1", uc.got.UserID)
	assert.Equal(t, "s1", uc.got.SessionID)

	var resp ConfirmBookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "create", resp.Operation)
	assert.Equal(t, "b-42", resp.Booking.ID)
	assert.Equal(t, "2024-05-01T10:00", resp.Booking.InTime)
	assert.Equal(t, "confirmed", resp.Flow.State)
	require.NotNil(t, resp.Flow.Receipt)
	assert.Equal(t, "P7", resp.Flow.Receipt.Slot)
}

func TestHandle_UpdatedReturnsOK(t *testing.T) {
	b := receipt()
	uc := &fakeUseCase{resp: &confirmBooking.Response{Booking: b, Operation: confirmBooking.OperationUpdate}}

	rec := doRequest(NewHandler(uc, logger.Nop()), "u1")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{name: "no slot", err: confirmBooking.ErrNoSlotSelected, wantStatus: http.StatusBadRequest, wantMessage: msgNoSlotSelected},
		{name: "not signed in", err: confirmBooking.ErrUnauthenticated, wantStatus: http.StatusUnauthorized, wantMessage: msgUnauthenticated},
		{name: "not the owner", err: confirmBooking.ErrAccessDenied, wantStatus: http.StatusForbidden, wantMessage: msgAccessDenied},
		{name: "before search", err: confirmBooking.ErrSearchRequired, wantStatus: http.StatusBadRequest, wantMessage: msgSearchRequired},
		{name: "slot booked in grid", err: confirmBooking.ErrSlotNotAvailable, wantStatus: http.StatusConflict, wantMessage: msgSlotNotAvailable},
		{name: "store conflict", err: errors.Join(confirmBooking.ErrSlotTaken, errors.New("409")), wantStatus: http.StatusConflict, wantMessage: msgSlotTaken},
		{name: "edited booking deleted", err: confirmBooking.ErrBookingNotFound, wantStatus: http.StatusNotFound, wantMessage: msgBookingNotFound},
		{name: "store rejected", err: confirmBooking.ErrStoreRejected, wantStatus: http.StatusBadRequest, wantMessage: msgStoreRejected},
		{name: "store unavailable", err: confirmBooking.ErrStoreUnavailable, wantStatus: http.StatusBadGateway, wantMessage: msgStoreUnavailable},
		{name: "double submit", err: confirmBooking.ErrSubmissionInProgress, wantStatus: http.StatusConflict, wantMessage: msgSubmissionInProgress},
		{name: "unexpected", err: errors.New("boom"), wantStatus: http.StatusInternalServerError, wantMessage: "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(NewHandler(&fakeUseCase{err: tt.err}, logger.Nop()), "u1")

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantMessage, body.Message)
		})
	}
}

func TestHandle_AnonymousPassesEmptyUser(t *testing.T) {
	uc := &fakeUseCase{err: confirmBooking.ErrUnauthenticated}

	rec := doRequest(NewHandler(uc, logger.Nop()), "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, uc.got.UserID)
}
