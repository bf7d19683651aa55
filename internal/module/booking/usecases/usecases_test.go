package usecases_test

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"office-booking-service/internal/module/booking/mocks"
	"office-booking-service/internal/module/booking/models/entity"
	"office-booking-service/internal/module/booking/models/request"
	"office-booking-service/internal/module/booking/repositories"
	"office-booking-service/internal/module/booking/usecases"
	cabinentity "office-booking-service/internal/module/cabin/models/entity"
	"office-booking-service/internal/pkg/errors"
	"office-booking-service/internal/pkg/locker"
	"office-booking-service/internal/pkg/log"
	log_internal "office-booking-service/internal/pkg/log"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var (
	uc         usecases.Usecase
	repoMock   *mocks.Repositories
	cabinsMock *mocks.CabinCatalog
	logMock    log.Logger
	p          message.Publisher
)

type mockPublisher struct{}

// Close implements message.Publisher.
func (m *mockPublisher) Close() error {
	return nil
}

// Publish implements message.Publisher.
func (m *mockPublisher) Publish(topic string, messages ...*message.Message) error {
	return nil
}

func NewMockPublisher() message.Publisher {
	return &mockPublisher{}
}

type noopLocker struct{}

// Acquire implements locker.Locker.
func (noopLocker) Acquire(ctx context.Context, name string) (locker.UnlockFunc, error) {
	return func(ctx context.Context) error { return nil }, nil
}

func setup() {
	repoMock = new(mocks.Repositories)
	cabinsMock = new(mocks.CabinCatalog)
	p = NewMockPublisher()
	logZap := log_internal.SetupLogger()
	log_internal.Init(logZap)
	logMock = log_internal.GetLogger()
	uc = usecases.New(repoMock, cabinsMock, noopLocker{}, logMock, p)
}

func teardown() {
	repoMock = nil
	cabinsMock = nil
	uc = nil
}

func TestCreateBooking(t *testing.T) {
	setup()
	defer teardown()
	ctx := context.Background()

	cabinID := uuid.New()
	start := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	end := time.Date(2026, 9, 1, 17, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		// mock data
		payloadMock := request.CreateBooking{
			CabinID:   cabinID.String(),
			StartDate: start.Format(time.RFC3339),
			EndDate:   end.Format(time.RFC3339),
			Notes:     "quarterly planning",
		}
		cabinMock := cabinentity.Cabin{
			ID:          cabinID,
			Name:        "Cabin A",
			Capacity:    4,
			IsAvailable: true,
		}
		createdMock := entity.Booking{
			ID:        uuid.New(),
			UserID:    1,
			CabinID:   cabinID,
			StartDate: start,
			EndDate:   end,
			Status:    entity.StatusPending,
			Notes:     sql.NullString{String: "quarterly planning", Valid: true},
			CreatedAt: time.Now().UTC(),
		}

		// mock repo
		cabinsMock.On("FindCabinByID", ctx, cabinID.String()).Return(cabinMock, nil)
		repoMock.On("InsertBookingIfVacant", ctx, mock.MatchedBy(func(b entity.Booking) bool {
			return b.CabinID == cabinID && b.UserID == int64(1) && b.Status == entity.StatusPending
		})).Return(createdMock, nil)

		// test
		resp, err := uc.Create(ctx, 1, &payloadMock)

		// assert
		assert.NoError(t, err)
		assert.Equal(t, entity.StatusPending, resp.Status)
		assert.Equal(t, cabinID.String(), resp.CabinID)
	})

	t.Run("cabin already booked", func(t *testing.T) {
		// mock data
		payloadMock := request.CreateBooking{
			CabinID:   cabinID.String(),
			StartDate: start.Format(time.RFC3339),
			EndDate:   end.Format(time.RFC3339),
		}
		cabinMock := cabinentity.Cabin{ID: cabinID, IsAvailable: true}
		repoConflict := new(mocks.Repositories)
		ucConflict := usecases.New(repoConflict, cabinsMock, noopLocker{}, logMock, p)

		// mock repo
		cabinsMock.On("FindCabinByID", ctx, cabinID.String()).Return(cabinMock, nil)
		repoConflict.On("InsertBookingIfVacant", ctx, mock.Anything).Return(entity.Booking{}, errors.Conflict("cabin is already booked for this time period"))

		// test
		_, err := ucConflict.Create(ctx, 1, &payloadMock)

		// assert
		assert.Error(t, err)
		assert.Equal(t, "CONFLICT", errors.ErrorCode(err))
	})

	t.Run("cabin not available", func(t *testing.T) {
		// mock data
		unavailableID := uuid.New()
		payloadMock := request.CreateBooking{
			CabinID:   unavailableID.String(),
			StartDate: start.Format(time.RFC3339),
			EndDate:   end.Format(time.RFC3339),
		}

		// mock repo
		cabinsMock.On("FindCabinByID", ctx, unavailableID.String()).Return(cabinentity.Cabin{ID: unavailableID, IsAvailable: false}, nil)

		// test
		_, err := uc.Create(ctx, 1, &payloadMock)

		// assert
		assert.Error(t, err)
		assert.Equal(t, "INVALID_STATE", errors.ErrorCode(err))
	})

	t.Run("end date not after start date", func(t *testing.T) {
		// mock data
		payloadMock := request.CreateBooking{
			CabinID:   cabinID.String(),
			StartDate: end.Format(time.RFC3339),
			EndDate:   start.Format(time.RFC3339),
		}

		// test
		_, err := uc.Create(ctx, 1, &payloadMock)

		// assert
		assert.Error(t, err)
		assert.Equal(t, "INVALID_ARGUMENT", errors.ErrorCode(err))
	})

	t.Run("invalid cabin id", func(t *testing.T) {
		// mock data
		payloadMock := request.CreateBooking{
			CabinID:   "not-a-uuid",
			StartDate: start.Format(time.RFC3339),
			EndDate:   end.Format(time.RFC3339),
		}

		// test
		_, err := uc.Create(ctx, 1, &payloadMock)

		// assert
		assert.Error(t, err)
		assert.Equal(t, "INVALID_ARGUMENT", errors.ErrorCode(err))
	})
}

func TestGetBooking(t *testing.T) {
	setup()
	defer teardown()
	ctx := context.Background()

	bookingMock := entity.Booking{
		ID:        uuid.New(),
		UserID:    1,
		CabinID:   uuid.New(),
		StartDate: time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 9, 1, 17, 0, 0, 0, time.UTC),
		Status:    entity.StatusPending,
	}
	repoMock.On("FindBookingByID", ctx, bookingMock.ID.String()).Return(bookingMock, nil)

	t.Run("owner can view", func(t *testing.T) {
		resp, err := uc.GetBooking(ctx, bookingMock.ID.String(), 1, "user")
		assert.NoError(t, err)
		assert.Equal(t, bookingMock.ID.String(), resp.ID)
	})

	t.Run("other user forbidden", func(t *testing.T) {
		_, err := uc.GetBooking(ctx, bookingMock.ID.String(), 2, "user")
		assert.Error(t, err)
		assert.Equal(t, "FORBIDDEN", errors.ErrorCode(err))
	})

	t.Run("admin can view any", func(t *testing.T) {
		resp, err := uc.GetBooking(ctx, bookingMock.ID.String(), 2, "admin")
		assert.NoError(t, err)
		assert.Equal(t, bookingMock.ID.String(), resp.ID)
	})
}

func TestUpdateBooking(t *testing.T) {
	setup()
	defer teardown()
	ctx := context.Background()

	bookingMock := entity.Booking{
		ID:        uuid.New(),
		UserID:    1,
		CabinID:   uuid.New(),
		StartDate: time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 9, 1, 17, 0, 0, 0, time.UTC),
		Status:    entity.StatusPending,
	}
	repoMock.On("FindBookingByID", ctx, bookingMock.ID.String()).Return(bookingMock, nil)

	t.Run("moved window re-checks conflicts", func(t *testing.T) {
		// mock data
		newStart := "2026-09-02T09:00:00Z"
		newEnd := "2026-09-02T17:00:00Z"
		payloadMock := request.UpdateBooking{
			StartDate: &newStart,
			EndDate:   &newEnd,
		}
		movedMock := bookingMock
		movedMock.StartDate = time.Date(2026, 9, 2, 9, 0, 0, 0, time.UTC)
		movedMock.EndDate = time.Date(2026, 9, 2, 17, 0, 0, 0, time.UTC)

		// mock repo
		repoMock.On("UpdateBookingWindowIfVacant", ctx, mock.MatchedBy(func(b entity.Booking) bool {
			return b.ID == bookingMock.ID && b.StartDate.Equal(movedMock.StartDate)
		})).Return(movedMock, nil)

		// test
		resp, err := uc.Update(ctx, bookingMock.ID.String(), 1, "user", &payloadMock)

		// assert
		assert.NoError(t, err)
		assert.Equal(t, newStart, resp.StartDate)
		repoMock.AssertCalled(t, "UpdateBookingWindowIfVacant", ctx, mock.Anything)
	})

	t.Run("notes only skips conflict check", func(t *testing.T) {
		// mock data
		notes := "moved agenda"
		payloadMock := request.UpdateBooking{Notes: &notes}
		updatedMock := bookingMock
		updatedMock.Notes = sql.NullString{String: notes, Valid: true}

		// mock repo
		repoMock.On("UpdateBooking", ctx, mock.MatchedBy(func(b entity.Booking) bool {
			return b.ID == bookingMock.ID && b.Notes.String == notes
		})).Return(updatedMock, nil)

		// test
		resp, err := uc.Update(ctx, bookingMock.ID.String(), 1, "user", &payloadMock)

		// assert
		assert.NoError(t, err)
		assert.Equal(t, notes, resp.Notes)
	})

	t.Run("illegal status transition", func(t *testing.T) {
		// mock data
		completed := entity.StatusCompleted
		payloadMock := request.UpdateBooking{Status: &completed}

		// test
		_, err := uc.Update(ctx, bookingMock.ID.String(), 1, "user", &payloadMock)

		// assert
		assert.Error(t, err)
		assert.Equal(t, "INVALID_STATE", errors.ErrorCode(err))
	})

	t.Run("other user forbidden", func(t *testing.T) {
		// mock data
		notes := "not yours"
		payloadMock := request.UpdateBooking{Notes: &notes}

		// test
		_, err := uc.Update(ctx, bookingMock.ID.String(), 2, "user", &payloadMock)

		// assert
		assert.Error(t, err)
		assert.Equal(t, "FORBIDDEN", errors.ErrorCode(err))
	})
}

func TestCancelBooking(t *testing.T) {
	setup()
	defer teardown()
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		// mock data
		bookingMock := entity.Booking{
			ID:      uuid.New(),
			UserID:  1,
			CabinID: uuid.New(),
			Status:  entity.StatusPending,
		}
		cancelledMock := bookingMock
		cancelledMock.Status = entity.StatusCancelled

		// mock repo
		repoMock.On("FindBookingByID", ctx, bookingMock.ID.String()).Return(bookingMock, nil)
		repoMock.On("UpdateBooking", ctx, mock.MatchedBy(func(b entity.Booking) bool {
			return b.ID == bookingMock.ID && b.Status == entity.StatusCancelled
		})).Return(cancelledMock, nil)

		// test
		resp, err := uc.Cancel(ctx, bookingMock.ID.String(), 1, "user")

		// assert
		assert.NoError(t, err)
		assert.Equal(t, entity.StatusCancelled, resp.Status)
	})

	t.Run("already cancelled is idempotent", func(t *testing.T) {
		// mock data
		bookingMock := entity.Booking{
			ID:     uuid.New(),
			UserID: 1,
			Status: entity.StatusCancelled,
		}

		// mock repo
		repoMock.On("FindBookingByID", ctx, bookingMock.ID.String()).Return(bookingMock, nil)

		// test
		resp, err := uc.Cancel(ctx, bookingMock.ID.String(), 1, "user")

		// assert
		assert.NoError(t, err)
		assert.Equal(t, entity.StatusCancelled, resp.Status)
	})

	t.Run("completed cannot be cancelled", func(t *testing.T) {
		// mock data
		bookingMock := entity.Booking{
			ID:     uuid.New(),
			UserID: 1,
			Status: entity.StatusCompleted,
		}

		// mock repo
		repoMock.On("FindBookingByID", ctx, bookingMock.ID.String()).Return(bookingMock, nil)

		// test
		_, err := uc.Cancel(ctx, bookingMock.ID.String(), 1, "user")

		// assert
		assert.Error(t, err)
		assert.Equal(t, "INVALID_STATE", errors.ErrorCode(err))
	})
}

func TestConfirmBooking(t *testing.T) {
	setup()
	defer teardown()
	ctx := context.Background()

	t.Run("success schedules completion", func(t *testing.T) {
		// mock data
		bookingMock := entity.Booking{
			ID:      uuid.New(),
			UserID:  1,
			CabinID: uuid.New(),
			EndDate: time.Date(2026, 9, 1, 17, 0, 0, 0, time.UTC),
			Status:  entity.StatusPending,
		}
		confirmedMock := bookingMock
		confirmedMock.Status = entity.StatusConfirmed

		// mock repo
		repoMock.On("FindBookingByID", ctx, bookingMock.ID.String()).Return(bookingMock, nil)
		repoMock.On("UpdateBooking", ctx, mock.MatchedBy(func(b entity.Booking) bool {
			return b.ID == bookingMock.ID && b.Status == entity.StatusConfirmed
		})).Return(confirmedMock, nil)
		repoMock.On("SetTaskScheduler", ctx, confirmedMock.EndDate, mock.Anything).Return("1", nil)

		// test
		err := uc.Confirm(ctx, bookingMock.ID.String())

		// assert
		assert.NoError(t, err)
		repoMock.AssertCalled(t, "SetTaskScheduler", ctx, confirmedMock.EndDate, mock.Anything)
	})

	t.Run("already confirmed is idempotent", func(t *testing.T) {
		// mock data
		bookingMock := entity.Booking{
			ID:     uuid.New(),
			UserID: 1,
			Status: entity.StatusConfirmed,
		}

		// mock repo
		repoMock.On("FindBookingByID", ctx, bookingMock.ID.String()).Return(bookingMock, nil)

		// test
		err := uc.Confirm(ctx, bookingMock.ID.String())

		// assert
		assert.NoError(t, err)
	})

	t.Run("cancelled booking cannot be confirmed", func(t *testing.T) {
		// mock data
		bookingMock := entity.Booking{
			ID:     uuid.New(),
			UserID: 1,
			Status: entity.StatusCancelled,
		}

		// mock repo
		repoMock.On("FindBookingByID", ctx, bookingMock.ID.String()).Return(bookingMock, nil)

		// test
		err := uc.Confirm(ctx, bookingMock.ID.String())

		// assert
		assert.Error(t, err)
		assert.Equal(t, "INVALID_STATE", errors.ErrorCode(err))
	})

	t.Run("not found", func(t *testing.T) {
		// mock data
		missingID := uuid.New()

		// mock repo
		repoMock.On("FindBookingByID", ctx, missingID.String()).Return(entity.Booking{}, errors.NotFound("booking not found"))

		// test
		err := uc.Confirm(ctx, missingID.String())

		// assert
		assert.Error(t, err)
		assert.Equal(t, "NOT_FOUND", errors.ErrorCode(err))
	})
}

func TestCompleteBooking(t *testing.T) {
	setup()
	defer teardown()
	ctx := context.Background()

	t.Run("confirmed becomes completed", func(t *testing.T) {
		// mock data
		bookingMock := entity.Booking{
			ID:     uuid.New(),
			UserID: 1,
			Status: entity.StatusConfirmed,
		}
		completedMock := bookingMock
		completedMock.Status = entity.StatusCompleted

		// mock repo
		repoMock.On("FindBookingByID", ctx, bookingMock.ID.String()).Return(bookingMock, nil)
		repoMock.On("UpdateBooking", ctx, mock.MatchedBy(func(b entity.Booking) bool {
			return b.ID == bookingMock.ID && b.Status == entity.StatusCompleted
		})).Return(completedMock, nil)

		// test
		err := uc.Complete(ctx, bookingMock.ID.String())

		// assert
		assert.NoError(t, err)
	})

	t.Run("cancelled booking is left alone", func(t *testing.T) {
		// mock data
		bookingMock := entity.Booking{
			ID:     uuid.New(),
			UserID: 1,
			Status: entity.StatusCancelled,
		}

		// mock repo
		repoMock.On("FindBookingByID", ctx, bookingMock.ID.String()).Return(bookingMock, nil)

		// test
		err := uc.Complete(ctx, bookingMock.ID.String())

		// assert
		assert.NoError(t, err)
	})
}

// keyedLocker is an in-process stand-in for the redsync locker: one
// mutex per key, so concurrent creations on the same cabin serialize
// exactly like they would against Redis.
type keyedLocker struct {
	mu      sync.Mutex
	mutexes map[string]*sync.Mutex
}

func newKeyedLocker() *keyedLocker {
	return &keyedLocker{mutexes: make(map[string]*sync.Mutex)}
}

// Acquire implements locker.Locker.
func (l *keyedLocker) Acquire(ctx context.Context, name string) (locker.UnlockFunc, error) {
	l.mu.Lock()
	m, ok := l.mutexes[name]
	if !ok {
		m = &sync.Mutex{}
		l.mutexes[name] = m
	}
	l.mu.Unlock()

	m.Lock()
	return func(ctx context.Context) error {
		m.Unlock()
		return nil
	}, nil
}

// naiveBookingRepo does a plain check-then-insert with no locking of
// its own. It is only safe when the usecase serializes callers per
// cabin, which is exactly what the concurrency test asserts.
type naiveBookingRepo struct {
	bookings []entity.Booking
}

func (r *naiveBookingRepo) InsertBookingIfVacant(ctx context.Context, booking entity.Booking) (entity.Booking, error) {
	for _, b := range r.bookings {
		if b.CabinID == booking.CabinID && b.Status != entity.StatusCancelled &&
			b.StartDate.Before(booking.EndDate) && b.EndDate.After(booking.StartDate) {
			return entity.Booking{}, errors.Conflict("cabin is already booked for this time period")
		}
	}
	// Widen the race window between check and insert.
	time.Sleep(time.Millisecond)
	booking.CreatedAt = time.Now().UTC()
	r.bookings = append(r.bookings, booking)
	return booking, nil
}

func (r *naiveBookingRepo) UpdateBookingWindowIfVacant(ctx context.Context, booking entity.Booking) (entity.Booking, error) {
	return booking, nil
}

func (r *naiveBookingRepo) UpdateBooking(ctx context.Context, booking entity.Booking) (entity.Booking, error) {
	return booking, nil
}

func (r *naiveBookingRepo) FindBookingByID(ctx context.Context, bookingID string) (entity.Booking, error) {
	return entity.Booking{}, errors.NotFound("booking not found")
}

func (r *naiveBookingRepo) FindBookingsByUserID(ctx context.Context, userID int64) ([]entity.Booking, error) {
	return r.bookings, nil
}

func (r *naiveBookingRepo) FindAllBookings(ctx context.Context) ([]entity.Booking, error) {
	return r.bookings, nil
}

func (r *naiveBookingRepo) SetTaskScheduler(ctx context.Context, processAt time.Time, payload []byte) (string, error) {
	return "1", nil
}

var _ repositories.Repositories = (*naiveBookingRepo)(nil)

func TestConcurrentCreateSameSlot(t *testing.T) {
	setup()
	defer teardown()
	ctx := context.Background()

	// mock data
	cabinID := uuid.New()
	cabinMock := cabinentity.Cabin{ID: cabinID, Name: "Cabin A", IsAvailable: true}
	cabinsMock.On("FindCabinByID", ctx, cabinID.String()).Return(cabinMock, nil)

	repo := &naiveBookingRepo{}
	ucRace := usecases.New(repo, cabinsMock, newKeyedLocker(), logMock, p)

	payloadMock := request.CreateBooking{
		CabinID:   cabinID.String(),
		StartDate: "2026-09-01T09:00:00Z",
		EndDate:   "2026-09-01T17:00:00Z",
	}

	// test
	const workers = 16
	results := make(chan error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(userID int64) {
			defer wg.Done()
			_, err := ucRace.Create(ctx, userID, &payloadMock)
			results <- err
		}(int64(i + 1))
	}
	wg.Wait()
	close(results)

	// assert
	var created, conflicts int
	for err := range results {
		if err == nil {
			created++
			continue
		}
		assert.Equal(t, "CONFLICT", errors.ErrorCode(err))
		conflicts++
	}
	assert.Equal(t, 1, created)
	assert.Equal(t, workers-1, conflicts)
	assert.Len(t, repo.bookings, 1)
}

func TestCancelledBookingFreesSlot(t *testing.T) {
	setup()
	defer teardown()
	ctx := context.Background()

	// mock data
	cabinID := uuid.New()
	cabinMock := cabinentity.Cabin{ID: cabinID, Name: "Cabin A", IsAvailable: true}
	cabinsMock.On("FindCabinByID", ctx, cabinID.String()).Return(cabinMock, nil)

	repo := &naiveBookingRepo{bookings: []entity.Booking{{
		ID:        uuid.New(),
		UserID:    1,
		CabinID:   cabinID,
		StartDate: time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 9, 1, 17, 0, 0, 0, time.UTC),
		Status:    entity.StatusCancelled,
	}}}
	ucFree := usecases.New(repo, cabinsMock, newKeyedLocker(), logMock, p)

	payloadMock := request.CreateBooking{
		CabinID:   cabinID.String(),
		StartDate: "2026-09-01T09:00:00Z",
		EndDate:   "2026-09-01T17:00:00Z",
	}

	// test
	resp, err := ucFree.Create(ctx, 2, &payloadMock)

	// assert
	assert.NoError(t, err)
	assert.Equal(t, entity.StatusPending, resp.Status)
	assert.Len(t, repo.bookings, 2)
}
