package repositories_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"office-booking-service/internal/module/cabin/models/entity"
	"office-booking-service/internal/module/cabin/repositories"
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

func TestFindCabinByID(t *testing.T) {
	setup()
	repo := repositories.New(dbx, logMock)

	UUID := uuid.New()
	createdAt := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)

	columns := []string{"id", "name", "capacity", "description", "is_available", "created_at", "updated_at"}

	testCases := []struct {
		name          string
		cabinID       string
		rows          *sqlxmock.Rows
		queryError    error
		expectedError error
		expectedCabin entity.Cabin
	}{
		{
			name:    "cabin found",
			cabinID: UUID.String(),
			rows: sqlxmock.NewRows(columns).
				AddRow(UUID.String(), "Cabin A", 4, nil, true, createdAt, nil),
			expectedError: nil,
			expectedCabin: entity.Cabin{
				ID:          UUID,
				Name:        "Cabin A",
				Capacity:    4,
				Description: sql.NullString{},
				IsAvailable: true,
				CreatedAt:   createdAt,
				UpdatedAt:   sql.NullTime{},
			},
		},
		{
			name:          "cabin not found",
			cabinID:       UUID.String(),
			queryError:    sql.ErrNoRows,
			expectedError: errors.NotFound("cabin not found"),
			expectedCabin: entity.Cabin{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			eq := mock.ExpectQuery("SELECT (.+) FROM cabins WHERE id =").WithArgs(tc.cabinID)
			if tc.queryError != nil {
				eq.WillReturnError(tc.queryError)
			} else {
				eq.WillReturnRows(tc.rows)
			}

			cabin, err := repo.FindCabinByID(context.Background(), tc.cabinID)

			assert.Equal(t, tc.expectedError, err)
			assert.Equal(t, tc.expectedCabin, cabin)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestFindAvailableCabins(t *testing.T) {
	setup()
	repo := repositories.New(dbx, logMock)

	t.Run("success", func(t *testing.T) {
		rows := sqlxmock.NewRows([]string{"id", "name", "capacity", "description", "is_available", "created_at", "updated_at"}).
			AddRow(uuid.New().String(), "Cabin A", 4, nil, true, time.Now().UTC(), nil).
			AddRow(uuid.New().String(), "Cabin B", 8, nil, true, time.Now().UTC(), nil)
		mock.ExpectQuery("SELECT (.+) FROM cabins WHERE is_available").WillReturnRows(rows)

		cabins, err := repo.FindAvailableCabins(context.Background())

		assert.NoError(t, err)
		assert.Len(t, cabins, 2)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestInsertCabin(t *testing.T) {
	setup()
	repo := repositories.New(dbx, logMock)

	t.Run("success", func(t *testing.T) {
		cabin := entity.Cabin{
			ID:          uuid.New(),
			Name:        "Cabin C",
			Capacity:    6,
			IsAvailable: true,
		}
		mock.ExpectExec("INSERT INTO cabins").WillReturnResult(sqlxmock.NewResult(1, 1))

		created, err := repo.InsertCabin(context.Background(), cabin)

		assert.NoError(t, err)
		assert.Equal(t, cabin.ID, created.ID)
		assert.False(t, created.CreatedAt.IsZero())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
