package repositories

import (
	"context"
	"database/sql"
	"time"

	"office-booking-service/internal/module/payment/models/entity"
	"office-booking-service/internal/pkg/errors"
	"office-booking-service/internal/pkg/log"

	"github.com/jmoiron/sqlx"
)

type repositories struct {
	db  *sqlx.DB
	log log.Logger
}

type Repositories interface {
	InsertPaymentIfAbsent(ctx context.Context, payment entity.Payment) (entity.Payment, error)
	UpdatePayment(ctx context.Context, payment entity.Payment) (entity.Payment, error)
	FindPaymentByID(ctx context.Context, paymentID string) (entity.Payment, error)
	FindPaymentsByUserID(ctx context.Context, userID int64) ([]entity.Payment, error)
	FindAllPayments(ctx context.Context) ([]entity.Payment, error)
}

func New(db *sqlx.DB, log log.Logger) Repositories {
	return &repositories{
		db:  db,
		log: log,
	}
}

// InsertPaymentIfAbsent inserts a pending payment unless the booking
// already carries an active (pending or paid) one. Callers hold the
// per-booking lock around this call; the row lock inside the
// transaction backs it up.
func (r *repositories) InsertPaymentIfAbsent(ctx context.Context, payment entity.Payment) (entity.Payment, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.log.Error(ctx, "error starting transaction", err)
		return entity.Payment{}, errors.InternalServerError("error starting transaction")
	}

	query := `
		SELECT id FROM payments
		WHERE booking_id = $1 AND status IN ('PENDING', 'PAID')
		FOR UPDATE
	`
	var existingID string
	err = tx.GetContext(ctx, &existingID, query, payment.BookingID)
	if err == nil {
		tx.Rollback()
		return entity.Payment{}, errors.Conflict("payment already exists for this booking")
	}
	if err != sql.ErrNoRows {
		tx.Rollback()
		r.log.Error(ctx, "error checking existing payments", err)
		return entity.Payment{}, errors.InternalServerError("error checking existing payments")
	}

	payment.CreatedAt = time.Now().UTC()

	_, err = tx.NamedExecContext(ctx, `
		INSERT INTO payments (id, user_id, booking_id, amount, currency, status, transaction_id, created_at)
		VALUES (:id, :user_id, :booking_id, :amount, :currency, :status, :transaction_id, :created_at)
	`, payment)
	if err != nil {
		tx.Rollback()
		r.log.Error(ctx, "error insert payment", err)
		return entity.Payment{}, errors.InternalServerError("error insert payment")
	}

	if err := tx.Commit(); err != nil {
		r.log.Error(ctx, "error committing transaction", err)
		return entity.Payment{}, errors.InternalServerError("error committing transaction")
	}

	return payment, nil
}

// UpdatePayment implements Repositories.
func (r *repositories) UpdatePayment(ctx context.Context, payment entity.Payment) (entity.Payment, error) {
	payment.UpdatedAt = sql.NullTime{Time: time.Now().UTC(), Valid: true}

	_, err := r.db.NamedExecContext(ctx, `
		UPDATE payments
		SET status = :status, transaction_id = :transaction_id, updated_at = :updated_at
		WHERE id = :id
	`, payment)
	if err != nil {
		r.log.Error(ctx, "error update payment", err)
		return entity.Payment{}, errors.InternalServerError("error update payment")
	}
	return payment, nil
}

// FindPaymentByID implements Repositories.
func (r *repositories) FindPaymentByID(ctx context.Context, paymentID string) (entity.Payment, error) {
	query := `SELECT * FROM payments WHERE id = $1`
	var payment entity.Payment
	err := r.db.GetContext(ctx, &payment, query, paymentID)
	if err == sql.ErrNoRows {
		return entity.Payment{}, errors.NotFound("payment not found")
	}
	if err != nil {
		r.log.Error(ctx, "error find payment by id", err)
		return entity.Payment{}, errors.InternalServerError("error find payment by id")
	}
	return payment, nil
}

// FindPaymentsByUserID implements Repositories.
func (r *repositories) FindPaymentsByUserID(ctx context.Context, userID int64) ([]entity.Payment, error) {
	query := `SELECT * FROM payments WHERE user_id = $1 ORDER BY created_at DESC`
	payments := []entity.Payment{}
	if err := r.db.SelectContext(ctx, &payments, query, userID); err != nil {
		r.log.Error(ctx, "error find payments by user id", err)
		return nil, errors.InternalServerError("error find payments by user id")
	}
	return payments, nil
}

// FindAllPayments implements Repositories.
func (r *repositories) FindAllPayments(ctx context.Context) ([]entity.Payment, error) {
	query := `SELECT * FROM payments ORDER BY created_at DESC`
	payments := []entity.Payment{}
	if err := r.db.SelectContext(ctx, &payments, query); err != nil {
		r.log.Error(ctx, "error find all payments", err)
		return nil, errors.InternalServerError("error find all payments")
	}
	return payments, nil
}
