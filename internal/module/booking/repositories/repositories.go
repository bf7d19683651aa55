package repositories

import (
	"context"
	"database/sql"
	"time"

	"office-booking-service/internal/module/booking/models/entity"
	"office-booking-service/internal/pkg/errors"
	"office-booking-service/internal/pkg/log"
	"office-booking-service/internal/pkg/scheduler"

	"github.com/hibiken/asynq"
	"github.com/jmoiron/sqlx"
)

type repositories struct {
	db          *sqlx.DB
	log         log.Logger
	asynqClient *asynq.Client
}

type Repositories interface {
	// db
	InsertBookingIfVacant(ctx context.Context, booking entity.Booking) (entity.Booking, error)
	UpdateBookingWindowIfVacant(ctx context.Context, booking entity.Booking) (entity.Booking, error)
	UpdateBooking(ctx context.Context, booking entity.Booking) (entity.Booking, error)
	FindBookingByID(ctx context.Context, bookingID string) (entity.Booking, error)
	FindBookingsByUserID(ctx context.Context, userID int64) ([]entity.Booking, error)
	FindAllBookings(ctx context.Context) ([]entity.Booking, error)
	// scheduler
	SetTaskScheduler(ctx context.Context, processAt time.Time, payload []byte) (string, error)
}

func New(db *sqlx.DB, log log.Logger, asynqClient *asynq.Client) Repositories {
	return &repositories{
		db:          db,
		log:         log,
		asynqClient: asynqClient,
	}
}

// InsertBookingIfVacant inserts a pending booking unless a
// non-cancelled booking on the same cabin overlaps [start, end).
// Candidate rows are locked inside the transaction; row locks alone
// cannot stop two concurrent inserts, so callers additionally hold the
// per-cabin lock around this call.
func (r *repositories) InsertBookingIfVacant(ctx context.Context, booking entity.Booking) (entity.Booking, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.log.Error(ctx, "error starting transaction", err)
		return entity.Booking{}, errors.InternalServerError("error starting transaction")
	}

	query := `
		SELECT id FROM bookings
		WHERE cabin_id = $1 AND status <> 'cancelled'
		AND start_date < $2 AND end_date > $3
		FOR UPDATE
	`
	var conflictingID string
	err = tx.GetContext(ctx, &conflictingID, query, booking.CabinID, booking.EndDate, booking.StartDate)
	if err == nil {
		tx.Rollback()
		return entity.Booking{}, errors.Conflict("cabin is already booked for this time period")
	}
	if err != sql.ErrNoRows {
		tx.Rollback()
		r.log.Error(ctx, "error checking booking conflicts", err)
		return entity.Booking{}, errors.InternalServerError("error checking booking conflicts")
	}

	booking.CreatedAt = time.Now().UTC()

	_, err = tx.NamedExecContext(ctx, `
		INSERT INTO bookings (id, user_id, cabin_id, start_date, end_date, status, notes, created_at)
		VALUES (:id, :user_id, :cabin_id, :start_date, :end_date, :status, :notes, :created_at)
	`, booking)
	if err != nil {
		tx.Rollback()
		r.log.Error(ctx, "error insert booking", err)
		return entity.Booking{}, errors.InternalServerError("error insert booking")
	}

	if err := tx.Commit(); err != nil {
		r.log.Error(ctx, "error committing transaction", err)
		return entity.Booking{}, errors.InternalServerError("error committing transaction")
	}

	return booking, nil
}

// UpdateBookingWindowIfVacant re-runs the overlap check for a changed
// time window, excluding the booking itself, then persists the update.
// Same locking contract as InsertBookingIfVacant.
func (r *repositories) UpdateBookingWindowIfVacant(ctx context.Context, booking entity.Booking) (entity.Booking, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.log.Error(ctx, "error starting transaction", err)
		return entity.Booking{}, errors.InternalServerError("error starting transaction")
	}

	query := `
		SELECT id FROM bookings
		WHERE cabin_id = $1 AND status <> 'cancelled' AND id <> $2
		AND start_date < $3 AND end_date > $4
		FOR UPDATE
	`
	var conflictingID string
	err = tx.GetContext(ctx, &conflictingID, query, booking.CabinID, booking.ID, booking.EndDate, booking.StartDate)
	if err == nil {
		tx.Rollback()
		return entity.Booking{}, errors.Conflict("cabin is already booked for this time period")
	}
	if err != sql.ErrNoRows {
		tx.Rollback()
		r.log.Error(ctx, "error checking booking conflicts", err)
		return entity.Booking{}, errors.InternalServerError("error checking booking conflicts")
	}

	booking.UpdatedAt = sql.NullTime{Time: time.Now().UTC(), Valid: true}

	_, err = tx.NamedExecContext(ctx, `
		UPDATE bookings
		SET start_date = :start_date, end_date = :end_date, status = :status,
			notes = :notes, updated_at = :updated_at
		WHERE id = :id
	`, booking)
	if err != nil {
		tx.Rollback()
		r.log.Error(ctx, "error update booking", err)
		return entity.Booking{}, errors.InternalServerError("error update booking")
	}

	if err := tx.Commit(); err != nil {
		r.log.Error(ctx, "error committing transaction", err)
		return entity.Booking{}, errors.InternalServerError("error committing transaction")
	}

	return booking, nil
}

// UpdateBooking implements Repositories.
func (r *repositories) UpdateBooking(ctx context.Context, booking entity.Booking) (entity.Booking, error) {
	booking.UpdatedAt = sql.NullTime{Time: time.Now().UTC(), Valid: true}

	_, err := r.db.NamedExecContext(ctx, `
		UPDATE bookings
		SET start_date = :start_date, end_date = :end_date, status = :status,
			notes = :notes, updated_at = :updated_at
		WHERE id = :id
	`, booking)
	if err != nil {
		r.log.Error(ctx, "error update booking", err)
		return entity.Booking{}, errors.InternalServerError("error update booking")
	}
	return booking, nil
}

// FindBookingByID implements Repositories.
func (r *repositories) FindBookingByID(ctx context.Context, bookingID string) (entity.Booking, error) {
	query := `SELECT * FROM bookings WHERE id = $1`
	var booking entity.Booking
	err := r.db.GetContext(ctx, &booking, query, bookingID)
	if err == sql.ErrNoRows {
		return entity.Booking{}, errors.NotFound("booking not found")
	}
	if err != nil {
		r.log.Error(ctx, "error find booking by id", err)
		return entity.Booking{}, errors.InternalServerError("error find booking by id")
	}
	return booking, nil
}

// FindBookingsByUserID implements Repositories.
func (r *repositories) FindBookingsByUserID(ctx context.Context, userID int64) ([]entity.Booking, error) {
	query := `SELECT * FROM bookings WHERE user_id = $1 ORDER BY start_date DESC`
	bookings := []entity.Booking{}
	if err := r.db.SelectContext(ctx, &bookings, query, userID); err != nil {
		r.log.Error(ctx, "error find bookings by user id", err)
		return nil, errors.InternalServerError("error find bookings by user id")
	}
	return bookings, nil
}

// FindAllBookings implements Repositories.
func (r *repositories) FindAllBookings(ctx context.Context) ([]entity.Booking, error) {
	query := `SELECT * FROM bookings ORDER BY start_date DESC`
	bookings := []entity.Booking{}
	if err := r.db.SelectContext(ctx, &bookings, query); err != nil {
		r.log.Error(ctx, "error find all bookings", err)
		return nil, errors.InternalServerError("error find all bookings")
	}
	return bookings, nil
}

// SetTaskScheduler implements Repositories.
func (r *repositories) SetTaskScheduler(ctx context.Context, processAt time.Time, payload []byte) (string, error) {
	task := asynq.NewTask(scheduler.TypeSetBookingCompleted, payload)

	info, err := r.asynqClient.EnqueueContext(ctx, task, asynq.ProcessAt(processAt), asynq.MaxRetry(5))
	if err != nil {
		r.log.Error(ctx, "error enqueue scheduler task", err)
		return "", errors.InternalServerError("error enqueue scheduler task")
	}
	return info.ID, nil
}
