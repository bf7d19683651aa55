package usecases

import (
	"context"
	"database/sql"
	"time"

	"office-booking-service/internal/module/cabin/models/entity"
	"office-booking-service/internal/module/cabin/models/request"
	"office-booking-service/internal/module/cabin/models/response"
	"office-booking-service/internal/module/cabin/repositories"
	"office-booking-service/internal/pkg/errors"
	"office-booking-service/internal/pkg/log"

	"github.com/google/uuid"
)

type usecase struct {
	repo repositories.Repositories
	log  log.Logger
}

type Usecase interface {
	ListAvailable(ctx context.Context) ([]response.Cabin, error)
	GetCabin(ctx context.Context, cabinID string) (response.Cabin, error)
	CreateCabin(ctx context.Context, payload *request.CreateCabin) (response.Cabin, error)
}

func New(repo repositories.Repositories, log log.Logger) Usecase {
	return &usecase{
		repo: repo,
		log:  log,
	}
}

func (u *usecase) ListAvailable(ctx context.Context) ([]response.Cabin, error) {
	cabins, err := u.repo.FindAvailableCabins(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]response.Cabin, 0, len(cabins))
	for _, cabin := range cabins {
		resp = append(resp, mapCabinToResponse(cabin))
	}
	return resp, nil
}

func (u *usecase) GetCabin(ctx context.Context, cabinID string) (response.Cabin, error) {
	if _, err := uuid.Parse(cabinID); err != nil {
		return response.Cabin{}, errors.BadRequest("invalid cabin id format")
	}

	cabin, err := u.repo.FindCabinByID(ctx, cabinID)
	if err != nil {
		return response.Cabin{}, err
	}
	return mapCabinToResponse(cabin), nil
}

func (u *usecase) CreateCabin(ctx context.Context, payload *request.CreateCabin) (response.Cabin, error) {
	if payload.Capacity < 1 {
		return response.Cabin{}, errors.BadRequest("capacity must be at least 1")
	}

	// Availability defaults to true unless the request says otherwise.
	isAvailable := true
	if payload.IsAvailable != nil {
		isAvailable = *payload.IsAvailable
	}

	cabin := entity.Cabin{
		ID:          uuid.New(),
		Name:        payload.Name,
		Capacity:    payload.Capacity,
		IsAvailable: isAvailable,
	}
	if payload.Description != "" {
		cabin.Description = sql.NullString{String: payload.Description, Valid: true}
	}

	created, err := u.repo.InsertCabin(ctx, cabin)
	if err != nil {
		return response.Cabin{}, err
	}
	return mapCabinToResponse(created), nil
}

func mapCabinToResponse(cabin entity.Cabin) response.Cabin {
	return response.Cabin{
		ID:          cabin.ID.String(),
		Name:        cabin.Name,
		Capacity:    cabin.Capacity,
		Description: cabin.Description.String,
		IsAvailable: cabin.IsAvailable,
		CreatedAt:   cabin.CreatedAt.Format(time.RFC3339),
	}
}
