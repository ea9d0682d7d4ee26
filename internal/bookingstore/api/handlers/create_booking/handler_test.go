package create_booking

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redzuankdv/Parking-App-FrontEnd/internal/bookingstore/api/handlers"
	"github.com/redzuankdv/Parking-App-FrontEnd/internal/service/bookings"
	"github.com/redzuankdv/Parking-App-FrontEnd/internal/service/bookings/models"
	"github.com/redzuankdv/Parking-App-FrontEnd/pkg/logger"
)

type fakeService struct {
	got    *models.BookingRequest
	result *models.BookingResponse
	err    error
}

func (f *fakeService) Create(_ context.Context, req *models.BookingRequest) (*models.BookingResponse, error) {
	f.got = req
	return f.result, f.err
}

const body = `{"plate":"ABC123","location":"SigmaSchool","parkingarea":"Parking A","slot":"P1",` +
	`"intime":"2024-05-01T10:00","outtime":"2024-05-01T12:00","userId":"u1"}`

func serve(t *testing.T, svc *fakeService, payload string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.Nop()).Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	svc := &fakeService{result: &models.BookingResponse{ID: "bk-1", Slot: "P1", UserID: "u1"}}

	rec := serve(t, svc, body)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, svc.got)
	assert.Equal(t, "P1", svc.got.Slot)
	assert.Equal(t, "2024-05-01T10:00", svc.got.InTime)

	var got models.BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "bk-1", got.ID)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		payload    string
		err        error
		wantStatus int
	}{
		{name: "malformed body", payload: "{", wantStatus: http.StatusBadRequest},
		{name: "empty body", payload: "", wantStatus: http.StatusBadRequest},
		{name: "invalid booking", payload: body, err: fmt.Errorf("%w: slot", bookings.ErrInvalidInput), wantStatus: http.StatusBadRequest},
		{name: "slot taken", payload: body, err: bookings.ErrSlotNotAvailable, wantStatus: http.StatusConflict},
		{name: "storage failure", payload: body, err: bookings.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, &fakeService{err: tt.err}, tt.payload)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var got handlers.StatusResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, handlers.StatusError, got.Status)
			assert.NotEmpty(t, got.Message)
		})
	}
}
