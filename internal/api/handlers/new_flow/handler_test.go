package new_flow

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redzuankdv/Parking-App-FrontEnd/internal/api/handlers"
	"github.com/redzuankdv/Parking-App-FrontEnd/internal/api/middleware"
	"github.com/redzuankdv/Parking-App-FrontEnd/internal/domain"
	"github.com/redzuankdv/Parking-App-FrontEnd/internal/service/sessions"
	"github.com/redzuankdv/Parking-App-FrontEnd/pkg/logger"
)

type fakeSessions struct {
	err    error
	called string
}

func (f *fakeSessions) ResetFlow(_ context.Context, id string) (*domain.BookingFlow, error) {
	f.called = id
	if f.err != nil {
		return nil, f.err
	}
	flow := domain.NewBookingFlow()
	return &flow, nil
}

func doRequest(h *Handler) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/flow", nil)
	req = req.WithContext(middleware.WithSessionID(req.Context(), "s1"))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	t.Run("starts empty create flow", func(t *testing.T) {
		fake := &fakeSessions{}
		rec := doRequest(NewHandler(fake, logger.Nop()))

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "s1", fake.called)
		var resp handlers.FlowResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "editing", resp.State)
		assert.Empty(t, resp.EditingID)
	})

	t.Run("submission in progress", func(t *testing.T) {
		rec := doRequest(NewHandler(&fakeSessions{err: sessions.ErrSubmissionInProgress}, logger.Nop()))
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}
