package select_slot

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redzuankdv/Parking-App-FrontEnd/internal/api/middleware"
	"github.com/redzuankdv/Parking-App-FrontEnd/internal/domain"
	selectSlot "github.com/redzuankdv/Parking-App-FrontEnd/internal/usecase/select_slot"
	"github.com/redzuankdv/Parking-App-FrontEnd/pkg/logger"
)

type fakeUseCase struct {
	got  *selectSlot.Request
	resp *selectSlot.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *selectSlot.Request) (*selectSlot.Response, error) {
	f.got = req
	return f.resp, f.err
}

func doRequest(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/flow/select", strings.NewReader(body))
	req = req.WithContext(middleware.WithSessionID(req.Context(), "s1"))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	flow := domain.NewBookingFlow()
	flow.State = domain.FlowSelected
	flow.SelectedSlot = "P3"
	uc := &fakeUseCase{resp: &selectSlot.Response{Flow: flow, Changed: true}}

	rec := doRequest(NewHandler(uc, logger.Nop()), `{"slot":"P3"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.SlotID("P3"), uc.got.SlotID)
	assert.Equal(t, "s1", uc.got.SessionID)

	var resp SelectSlotResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Changed)
	assert.Equal(t, "P3", resp.SelectedSlot)
	assert.True(t, resp.CanSubmit)
}

func TestHandle_BookedSlotKeepsSelection(t *testing.T) {
	flow := domain.NewBookingFlow()
	flow.State = domain.FlowSlotsShown
	uc := &fakeUseCase{resp: &selectSlot.Response{Flow: flow, Changed: false}}

	rec := doRequest(NewHandler(uc, logger.Nop()), `{"slot":"P2"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp SelectSlotResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Changed)
	assert.Empty(t, resp.SelectedSlot)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{name: "malformed body", body: "[", wantStatus: http.StatusBadRequest},
		{name: "before search", body: `{"slot":"P1"}`, err: selectSlot.ErrSearchRequired, wantStatus: http.StatusBadRequest},
		{name: "unknown slot", body: `{"slot":"P11"}`, err: selectSlot.ErrUnknownSlot, wantStatus: http.StatusBadRequest},
		{name: "empty slot", body: `{"slot":""}`, err: selectSlot.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "submitting", body: `{"slot":"P1"}`, err: selectSlot.ErrSubmissionInProgress, wantStatus: http.StatusConflict},
		{name: "unexpected", body: `{"slot":"P1"}`, err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(NewHandler(&fakeUseCase{err: tt.err}, logger.Nop()), tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
