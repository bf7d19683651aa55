package repositories_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"office-booking-service/internal/module/payment/models/entity"
	"office-booking-service/internal/module/payment/repositories"
	"office-booking-service/internal/pkg/errors"
	"office-booking-service/internal/pkg/log"
	log_internal "office-booking-service/internal/pkg/log"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	sqlxmock "github.com/zhashkevych/go-sqlxmock"
)

var (
	mock    sqlxmock.Sqlmock
	dbx     *sqlx.DB
	logMock log.Logger
)

func setup() {
	dbx, mock, _ = sqlxmock.Newx()
	logZap := log_internal.SetupLogger()
	log_internal.Init(logZap)
	logMock = log_internal.GetLogger()
}

func TestInsertPaymentIfAbsent(t *testing.T) {
	setup()
	repo := repositories.New(dbx, logMock)

	payment := entity.Payment{
		ID:        uuid.New(),
		UserID:    1,
		BookingID: uuid.New(),
		Amount:    250,
		Currency:  entity.DefaultCurrency,
		Status:    entity.StatusPending,
	}

	t.Run("no active payment", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT id FROM payments").WillReturnError(sql.ErrNoRows)
		mock.ExpectExec("INSERT INTO payments").WillReturnResult(sqlxmock.NewResult(1, 1))
		mock.ExpectCommit()

		created, err := repo.InsertPaymentIfAbsent(context.Background(), payment)

		assert.NoError(t, err)
		assert.Equal(t, payment.ID, created.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("active payment exists", func(t *testing.T) {
		rows := sqlxmock.NewRows([]string{"id"}).AddRow(uuid.New().String())
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT id FROM payments").WillReturnRows(rows)
		mock.ExpectRollback()

		_, err := repo.InsertPaymentIfAbsent(context.Background(), payment)

		assert.Equal(t, errors.Conflict("payment already exists for this booking"), err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFindPaymentByID(t *testing.T) {
	setup()
	repo := repositories.New(dbx, logMock)

	UUID := uuid.New()
	bookingUUID := uuid.New()
	createdAt := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)

	columns := []string{"id", "user_id", "booking_id", "amount", "currency", "status", "transaction_id", "created_at", "updated_at"}

	testCases := []struct {
		name            string
		paymentID       string
		rows            *sqlxmock.Rows
		queryError      error
		expectedError   error
		expectedPayment entity.Payment
	}{
		{
			name:      "payment found",
			paymentID: UUID.String(),
			rows: sqlxmock.NewRows(columns).
				AddRow(UUID.String(), int64(1), bookingUUID.String(), float64(250), entity.DefaultCurrency, entity.StatusPending, nil, createdAt, nil),
			expectedError: nil,
			expectedPayment: entity.Payment{
				ID:            UUID,
				UserID:        1,
				BookingID:     bookingUUID,
				Amount:        250,
				Currency:      entity.DefaultCurrency,
				Status:        entity.StatusPending,
				TransactionID: sql.NullString{},
				CreatedAt:     createdAt,
				UpdatedAt:     sql.NullTime{},
			},
		},
		{
			name:            "payment not found",
			paymentID:       UUID.String(),
			queryError:      sql.ErrNoRows,
			expectedError:   errors.NotFound("payment not found"),
			expectedPayment: entity.Payment{},
		},
		{
			name:            "database error",
			paymentID:       UUID.String(),
			queryError:      sql.ErrConnDone,
			expectedError:   errors.InternalServerError("error find payment by id"),
			expectedPayment: entity.Payment{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			eq := mock.ExpectQuery("SELECT (.+) FROM payments WHERE id =").WithArgs(tc.paymentID)
			if tc.queryError != nil {
				eq.WillReturnError(tc.queryError)
			} else {
				eq.WillReturnRows(tc.rows)
			}

			payment, err := repo.FindPaymentByID(context.Background(), tc.paymentID)

			assert.Equal(t, tc.expectedError, err)
			assert.Equal(t, tc.expectedPayment, payment)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUpdatePayment(t *testing.T) {
	setup()
	repo := repositories.New(dbx, logMock)

	payment := entity.Payment{
		ID:        uuid.New(),
		UserID:    1,
		BookingID: uuid.New(),
		Amount:    250,
		Currency:  entity.DefaultCurrency,
		Status:    entity.StatusPaid,
	}

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("UPDATE payments").WillReturnResult(sqlxmock.NewResult(0, 1))

		updated, err := repo.UpdatePayment(context.Background(), payment)

		assert.NoError(t, err)
		assert.True(t, updated.UpdatedAt.Valid)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
