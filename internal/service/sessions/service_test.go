package sessions

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/redzuankdv/Parking-App-FrontEnd/internal/domain"
	sessionRepo "github.com/redzuankdv/Parking-App-FrontEnd/internal/infra/storage/session"
	"github.com/redzuankdv/Parking-App-FrontEnd/pkg/logger"
)

type brokenRepository struct{}

func (brokenRepository) Get(context.Context, string) (*domain.ClientSession, error) {
	return nil, errors.New("redis down")
}

func (brokenRepository) Save(context.Context, *domain.ClientSession) error {
	return errors.New("redis down")
}

func TestGetReturnsNewSession(t *testing.T) {
	svc := NewService(sessionRepo.NewMemoryRepository(time.Hour), logger.Nop())

	sess, err := svc.Get(context.Background(), "s1")

	require.NoError(t, err)
	assert.Equal(t, "s1", sess.ID)
	assert.Equal(t, domain.FlowEditing, sess.Flow.State)
	assert.False(t, sess.Collection.Loaded)

	_, err = svc.Get(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdatePersistsEvenWhenFnFails(t *testing.T) {
	svc := NewService(sessionRepo.NewMemoryRepository(time.Hour), logger.Nop())
	ctx := context.Background()
	fnErr := errors.New("store down")

	err := svc.Update(ctx, "s1", func(sess *domain.ClientSession) error {
		sess.Flow.FailSearch("Unable to load bookings")
		return fnErr
	})
	assert.ErrorIs(t, err, fnErr)

	sess, err := svc.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "Unable to load bookings", sess.Flow.LastError)
}

func TestUpdateSerializesSameSession(t *testing.T) {
	svc := NewService(sessionRepo.NewMemoryRepository(time.Hour), logger.Nop())
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = svc.Update(ctx, "s1", func(sess *domain.ClientSession) error {
				sess.Collection.Append(domain.Booking{ID: "b"})
				return nil
			})
		}()
	}
	wg.Wait()

	sess, err := svc.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, sess.Collection.Bookings, 20)
}

func TestUpdateStorageFailure(t *testing.T) {
	svc := NewService(brokenRepository{}, logger.Nop())

	err := svc.Update(context.Background(), "s1", func(*domain.ClientSession) error { return nil })

	assert.ErrorIs(t, err, ErrInternal)
}

func TestResetFlow(t *testing.T) {
	svc := NewService(sessionRepo.NewMemoryRepository(time.Hour), logger.Nop())
	ctx := context.Background()
	require.NoError(t, svc.Update(ctx, "s1", func(sess *domain.ClientSession) error {
		sess.Flow = domain.NewEditFlow(domain.Booking{ID: "b1", Slot: "P3"})
		return nil
	}))

	flow, err := svc.ResetFlow(ctx, "s1")

	require.NoError(t, err)
	assert.False(t, flow.IsEdit())
	assert.Empty(t, flow.SelectedSlot)

	sess, err := svc.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, domain.FlowEditing, sess.Flow.State)
	assert.Empty(t, sess.Flow.EditingID)
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func TestUpdateReleasesSessionLocks(t *testing.T) {
	svc := NewService(sessionRepo.NewMemoryRepository(time.Millisecond), logger.Nop())
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				_ = svc.Update(ctx, fmt.Sprintf("s-%d-%d", i, j%3), func(*domain.ClientSession) error { return nil })
			}
		}(i)
	}
	wg.Wait()

	assert.Zero(t, svc.locks.Len())
}

func TestSubmittingFlowIsKeptUntilStale(t *testing.T) {
	clock := &fakeClock{now: time.Now()}
	svc := NewService(sessionRepo.NewMemoryRepository(time.Hour), logger.Nop())
	svc.timeProvider = clock
	ctx := context.Background()

	require.NoError(t, svc.Update(ctx, "s1", func(sess *domain.ClientSession) error {
		sess.Flow.SelectedSlot = "P5"
		sess.Flow.BeginSubmit()
		return nil
	}))

	clock.now = clock.now.Add(10 * time.Second)
	_, err := svc.ResetFlow(ctx, "s1")
	assert.ErrorIs(t, err, ErrSubmissionInProgress)

	clock.now = clock.now.Add(2 * staleSubmitAfter)
	sess, err := svc.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, domain.FlowSelected, sess.Flow.State)
	assert.Equal(t, domain.SlotID("P5"), sess.Flow.SelectedSlot)
	assert.Equal(t, msgSubmitInterrupted, sess.Flow.LastError)

	_, err = svc.ResetFlow(ctx, "s1")
	assert.NoError(t, err)
}
