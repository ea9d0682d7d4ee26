package confirm_booking

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redzuankdv/Parking-App-FrontEnd/internal/domain"
	storeClient "github.com/redzuankdv/Parking-App-FrontEnd/internal/integrations/bookingstore"
	"github.com/redzuankdv/Parking-App-FrontEnd/internal/service/collection"
	"github.com/redzuankdv/Parking-App-FrontEnd/pkg/logger"
	"github.com/redzuankdv/Parking-App-FrontEnd/pkg/metrics"
	"github.com/redzuankdv/Parking-App-FrontEnd/pkg/types"
)

type fakeStore struct {
	createErr error
	updateErr error
	created   []domain.Booking
	updated   []domain.Booking
	byUser    map[string][]domain.Booking
}

func (f *fakeStore) Create(_ context.Context, b domain.Booking) (*domain.Booking, error) {
	f.created = append(f.created, b)
	if f.createErr != nil {
		return nil, f.createErr
	}
	b.ID = "new-1"
	return &b, nil
}

func (f *fakeStore) Update(_ context.Context, b domain.Booking) error {
	f.updated = append(f.updated, b)
	return f.updateErr
}

func (f *fakeStore) ListByUser(_ context.Context, userID string) ([]domain.Booking, error) {
	return f.byUser[userID], nil
}

func (f *fakeStore) Delete(context.Context, string) error {
	return nil
}

type fakeSessions struct {
	mu   sync.Mutex
	sess *domain.ClientSession
}

func (f *fakeSessions) Update(_ context.Context, _ string, fn func(sess *domain.ClientSession) error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return fn(f.sess)
}

func (f *fakeSessions) state() domain.FlowState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sess.Flow.State
}

// blockingStore задерживает запись, пока тест не отпустит release
type blockingStore struct {
	*fakeStore
	entered chan struct{}
	release chan struct{}
}

func (b *blockingStore) Create(ctx context.Context, booking domain.Booking) (*domain.Booking, error) {
	close(b.entered)
	<-b.release
	return b.fakeStore.Create(ctx, booking)
}

type fakeMetrics struct {
	submissions []string
	conflicts   int
}

func (f *fakeMetrics) IncSubmission(operation, outcome string) {
	f.submissions = append(f.submissions, operation+":"+outcome)
}

func (f *fakeMetrics) IncConflict(string) {
	f.conflicts++
}

var existing = domain.Booking{
	ID:          "b1",
	Plate:       "WXY1234",
	Location:    domain.LocationSigmaSchool,
	ParkingArea: domain.ParkingAreaA,
	Slot:        "P3",
	InTime:      types.MustParseDateTime("2024-01-01T10:00"),
	OutTime:     types.MustParseDateTime("2024-01-01T12:00"),
	UserID:      "u1",
}

type fixture struct {
	uc       *UseCase
	store    *fakeStore
	sessions *fakeSessions
	metrics  *fakeMetrics
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := &fakeStore{byUser: map[string][]domain.Booking{"u1": {existing}}}
	f := &fixture{
		store:    store,
		sessions: &fakeSessions{sess: domain.NewClientSession("s1", time.Now())},
		metrics:  &fakeMetrics{},
	}
	coll := collection.NewService(store, f.sessions, logger.Nop())
	require.NoError(t, coll.Sync(context.Background(), f.sessions.sess, "u1"))
	f.uc = NewUseCase(store, f.sessions, coll, f.metrics, logger.Nop())
	return f
}

// search runs a search on the session flow for [11:00, 13:00) with existing booked on P3
func (f *fixture) search(t *testing.T) {
	t.Helper()
	flow := &f.sessions.sess.Flow
	form := domain.BookingForm{
		Plate:       "ABC123",
		Location:    "SigmaSchool",
		ParkingArea: "Parking A",
		From:        "2024-01-01T11:00",
		To:          "2024-01-01T13:00",
	}
	require.NoError(t, flow.BeginSearch(form))
	flow.ShowSlots(domain.ResolveAvailability(domain.DefaultSlotCatalog, []domain.Booking{existing}, domain.AvailabilityQuery{
		Location:         domain.LocationSigmaSchool,
		ParkingArea:      domain.ParkingAreaA,
		From:             types.MustParseDateTime(form.From),
		To:               types.MustParseDateTime(form.To),
		ExcludeBookingID: flow.EditingID,
	}))
}

func (f *fixture) selectSlot(t *testing.T, id domain.SlotID) {
	t.Helper()
	changed, err := f.sessions.sess.Flow.Select(id)
	require.NoError(t, err)
	require.True(t, changed)
}

func TestConfirmCreatesBooking(t *testing.T) {
	f := newFixture(t)
	f.search(t)
	f.selectSlot(t, "P5")

	resp, err := f.uc.Execute(context.Background(), &Request{SessionID: "s1", UserID: "u1"})

	require.NoError(t, err)
	require.Len(t, f.store.created, 1)
	sent := f.store.created[0]
	assert.Equal(t, "ABC123", sent.Plate)
	assert.Equal(t, domain.SlotID("P5"), sent.Slot)
	assert.Equal(t, "2024-01-01T11:00", sent.InTime.String())
	assert.Equal(t, "2024-01-01T13:00", sent.OutTime.String())
	assert.Equal(t, "u1", sent.UserID)
	assert.Empty(t, f.store.updated)

	assert.Equal(t, OperationCreate, resp.Operation)
	assert.Equal(t, "new-1", resp.Booking.ID)
	assert.Equal(t, domain.FlowConfirmed, resp.Flow.State)
	assert.Empty(t, resp.Flow.SelectedSlot)
	require.NotNil(t, resp.Flow.Receipt)
	assert.Equal(t, domain.SlotID("P5"), resp.Flow.Receipt.Slot)

	_, ok := f.sessions.sess.Collection.Find("new-1")
	assert.True(t, ok, "created booking must be appended to the collection")
	assert.Equal(t, []string{"create:" + metrics.OutcomeSuccess}, f.metrics.submissions)
}

func TestConfirmUpdatesEditedBooking(t *testing.T) {
	f := newFixture(t)
	f.sessions.sess.Flow = domain.NewEditFlow(existing)
	f.search(t)
	require.Equal(t, domain.SlotID("P3"), f.sessions.sess.Flow.SelectedSlot, "own slot stays selectable")

	resp, err := f.uc.Execute(context.Background(), &Request{SessionID: "s1", UserID: "u1"})

	require.NoError(t, err)
	require.Len(t, f.store.updated, 1)
	assert.Empty(t, f.store.created)
	assert.Equal(t, "b1", f.store.updated[0].ID)
	assert.Equal(t, OperationUpdate, resp.Operation)

	merged, ok := f.sessions.sess.Collection.Find("b1")
	require.True(t, ok)
	assert.Equal(t, "ABC123", merged.Plate)
	assert.Equal(t, "2024-01-01T11:00", merged.InTime.String())
	assert.Len(t, f.sessions.sess.Collection.Bookings, 1)
}

func TestConfirmGuardsDoNotCallStore(t *testing.T) {
	t.Run("no slot selected", func(t *testing.T) {
		f := newFixture(t)
		f.search(t)

		_, err := f.uc.Execute(context.Background(), &Request{SessionID: "s1", UserID: "u1"})

		assert.ErrorIs(t, err, ErrNoSlotSelected)
		assert.Equal(t, "Please select a parking slot.", f.sessions.sess.Flow.LastError)
		assert.Empty(t, f.store.created)
		assert.Empty(t, f.store.updated)
		assert.Equal(t, domain.FlowSlotsShown, f.sessions.sess.Flow.State)
	})

	t.Run("not signed in", func(t *testing.T) {
		f := newFixture(t)
		f.search(t)
		f.selectSlot(t, "P5")

		_, err := f.uc.Execute(context.Background(), &Request{SessionID: "s1"})

		assert.ErrorIs(t, err, ErrUnauthenticated)
		assert.Equal(t, "You must be logged in to book a parking slot.", f.sessions.sess.Flow.LastError)
		assert.Empty(t, f.store.created)
		assert.Equal(t, domain.FlowSelected, f.sessions.sess.Flow.State)
		assert.Equal(t, []string{"create:" + metrics.OutcomeGuard}, f.metrics.submissions)
	})

	t.Run("no search yet", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.uc.Execute(context.Background(), &Request{SessionID: "s1", UserID: "u1"})

		assert.ErrorIs(t, err, ErrSearchRequired)
		assert.Empty(t, f.store.created)
	})

	t.Run("selected slot became booked", func(t *testing.T) {
		f := newFixture(t)
		f.search(t)
		f.sessions.sess.Flow.SelectedSlot = "P3"
		f.sessions.sess.Flow.State = domain.FlowSelected

		_, err := f.uc.Execute(context.Background(), &Request{SessionID: "s1", UserID: "u1"})

		assert.ErrorIs(t, err, ErrSlotNotAvailable)
		assert.Empty(t, f.store.created)
	})
}

func TestConfirmStoreFailures(t *testing.T) {
	tests := []struct {
		name     string
		storeErr error
		want     error
		outcome  string
	}{
		{"conflict", fmt.Errorf("%w: taken", storeClient.ErrConflict), ErrSlotTaken, "create:" + metrics.OutcomeConflict},
		{"rejected", fmt.Errorf("%w: bad", storeClient.ErrRejected), ErrStoreRejected, "create:" + metrics.OutcomeError},
		{"network", fmt.Errorf("%w: refused", storeClient.ErrUnavailable), ErrStoreUnavailable, "create:" + metrics.OutcomeUnavailable},
		{"garbage", fmt.Errorf("%w: eof", storeClient.ErrInvalidResponse), ErrStoreUnavailable, "create:" + metrics.OutcomeUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.store.createErr = tt.storeErr
			f.search(t)
			f.selectSlot(t, "P5")

			_, err := f.uc.Execute(context.Background(), &Request{SessionID: "s1", UserID: "u1"})

			assert.ErrorIs(t, err, tt.want)
			assert.Len(t, f.store.created, 1, "writes are not retried")
			flow := f.sessions.sess.Flow
			assert.Equal(t, domain.FlowSelected, flow.State)
			assert.Equal(t, domain.SlotID("P5"), flow.SelectedSlot)
			assert.NotEmpty(t, flow.LastError)
			assert.Nil(t, flow.Receipt)
			assert.Len(t, f.sessions.sess.Collection.Bookings, 1)
			assert.Equal(t, []string{tt.outcome}, f.metrics.submissions)
		})
	}
}

func TestConfirmTwiceDoesNotResubmit(t *testing.T) {
	f := newFixture(t)
	f.search(t)
	f.selectSlot(t, "P5")

	_, err := f.uc.Execute(context.Background(), &Request{SessionID: "s1", UserID: "u1"})
	require.NoError(t, err)
	_, err = f.uc.Execute(context.Background(), &Request{SessionID: "s1", UserID: "u1"})

	assert.ErrorIs(t, err, ErrSearchRequired)
	assert.Len(t, f.store.created, 1)
}

func TestConfirmConflictCountsMetric(t *testing.T) {
	f := newFixture(t)
	f.store.createErr = storeClient.ErrConflict
	f.search(t)
	f.selectSlot(t, "P5")

	_, _ = f.uc.Execute(context.Background(), &Request{SessionID: "s1", UserID: "u1"})

	assert.Equal(t, 1, f.metrics.conflicts)
	assert.NotContains(t, f.metrics.submissions, "create:"+metrics.OutcomeSuccess)
}

func TestConfirmEditByAnotherUserIsDenied(t *testing.T) {
	f := newFixture(t)
	f.sessions.sess.Flow = domain.NewEditFlow(existing)
	f.search(t)

	_, err := f.uc.Execute(context.Background(), &Request{SessionID: "s1", UserID: "u2"})

	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Empty(t, f.store.updated)
	assert.Empty(t, f.store.created)
	flow := f.sessions.sess.Flow
	assert.Equal(t, domain.FlowSelected, flow.State)
	assert.Equal(t, "You can only change your own bookings.", flow.LastError)
	assert.Equal(t, []string{"update:" + metrics.OutcomeGuard}, f.metrics.submissions)
}

func TestConfirmWhileSubmittingIsRejected(t *testing.T) {
	f := newFixture(t)
	f.search(t)
	f.selectSlot(t, "P5")

	store := &blockingStore{fakeStore: f.store, entered: make(chan struct{}), release: make(chan struct{})}
	coll := collection.NewService(f.store, f.sessions, logger.Nop())
	uc := NewUseCase(store, f.sessions, coll, f.metrics, logger.Nop())

	done := make(chan error, 1)
	go func() {
		_, err := uc.Execute(context.Background(), &Request{SessionID: "s1", UserID: "u1"})
		done <- err
	}()

	<-store.entered
	assert.Equal(t, domain.FlowSubmitting, f.sessions.state())

	_, err := uc.Execute(context.Background(), &Request{SessionID: "s1", UserID: "u1"})
	assert.ErrorIs(t, err, ErrSubmissionInProgress)

	close(store.release)
	require.NoError(t, <-done)
	assert.Equal(t, domain.FlowConfirmed, f.sessions.state())
	assert.Len(t, f.store.created, 1)
}
