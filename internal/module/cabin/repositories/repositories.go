package repositories

import (
	"context"
	"database/sql"
	"time"

	"office-booking-service/internal/module/cabin/models/entity"
	"office-booking-service/internal/pkg/errors"
	"office-booking-service/internal/pkg/log"

	"github.com/jmoiron/sqlx"
)

type repositories struct {
	db  *sqlx.DB
	log log.Logger
}

type Repositories interface {
	FindAvailableCabins(ctx context.Context) ([]entity.Cabin, error)
	FindCabinByID(ctx context.Context, cabinID string) (entity.Cabin, error)
	InsertCabin(ctx context.Context, cabin entity.Cabin) (entity.Cabin, error)
}

func New(db *sqlx.DB, log log.Logger) Repositories {
	return &repositories{
		db:  db,
		log: log,
	}
}

// FindAvailableCabins implements Repositories.
func (r *repositories) FindAvailableCabins(ctx context.Context) ([]entity.Cabin, error) {
	query := `SELECT * FROM cabins WHERE is_available = TRUE ORDER BY name ASC`
	cabins := []entity.Cabin{}
	if err := r.db.SelectContext(ctx, &cabins, query); err != nil {
		r.log.Error(ctx, "error find available cabins", err)
		return nil, errors.InternalServerError("error find available cabins")
	}
	return cabins, nil
}

// FindCabinByID implements Repositories.
func (r *repositories) FindCabinByID(ctx context.Context, cabinID string) (entity.Cabin, error) {
	query := `SELECT * FROM cabins WHERE id = $1`
	var cabin entity.Cabin
	err := r.db.GetContext(ctx, &cabin, query, cabinID)
	if err == sql.ErrNoRows {
		return entity.Cabin{}, errors.NotFound("cabin not found")
	}
	if err != nil {
		r.log.Error(ctx, "error find cabin by id", err)
		return entity.Cabin{}, errors.InternalServerError("error find cabin by id")
	}
	return cabin, nil
}

// InsertCabin implements Repositories.
func (r *repositories) InsertCabin(ctx context.Context, cabin entity.Cabin) (entity.Cabin, error) {
	cabin.CreatedAt = time.Now().UTC()

	query := `
		INSERT INTO cabins (id, name, capacity, description, is_available, created_at)
		VALUES (:id, :name, :capacity, :description, :is_available, :created_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, cabin); err != nil {
		r.log.Error(ctx, "error insert cabin", err)
		return entity.Cabin{}, errors.InternalServerError("error insert cabin")
	}
	return cabin, nil
}
