package usecases

import (
	"context"
	"database/sql"
	"time"

	"office-booking-service/internal/module/booking/models/entity"
	"office-booking-service/internal/module/booking/models/request"
	"office-booking-service/internal/module/booking/models/response"
	"office-booking-service/internal/module/booking/repositories"
	cabinentity "office-booking-service/internal/module/cabin/models/entity"
	"office-booking-service/internal/pkg/errors"
	"office-booking-service/internal/pkg/locker"
	"office-booking-service/internal/pkg/log"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

const (
	TopicBookingCreated   = "booking_created"
	TopicBookingCancelled = "booking_cancelled"
	TopicBookingConfirmed = "booking_confirmed"
)

// CabinCatalog is the read-only view of the cabin module the booking
// engine consults; it never writes back.
type CabinCatalog interface {
	FindCabinByID(ctx context.Context, cabinID string) (cabinentity.Cabin, error)
}

type usecase struct {
	repo    repositories.Repositories
	cabins  CabinCatalog
	locker  locker.Locker
	log     log.Logger
	publish message.Publisher
}

type Usecase interface {
	Create(ctx context.Context, userID int64, payload *request.CreateBooking) (response.Booking, error)
	GetBooking(ctx context.Context, bookingID string, userID int64, role string) (response.Booking, error)
	GetUserBookings(ctx context.Context, userID int64) ([]response.Booking, error)
	ListAll(ctx context.Context) ([]response.Booking, error)
	Update(ctx context.Context, bookingID string, userID int64, role string, payload *request.UpdateBooking) (response.Booking, error)
	Cancel(ctx context.Context, bookingID string, userID int64, role string) (response.Booking, error)
	// Confirm and FindBookingByID are the payment ledger's one-way
	// dependency on the booking engine.
	Confirm(ctx context.Context, bookingID string) error
	FindBookingByID(ctx context.Context, bookingID string) (entity.Booking, error)
	Complete(ctx context.Context, bookingID string) error
}

func New(repo repositories.Repositories, cabins CabinCatalog, locker locker.Locker, log log.Logger, publish message.Publisher) Usecase {
	return &usecase{
		repo:    repo,
		cabins:  cabins,
		locker:  locker,
		log:     log,
		publish: publish,
	}
}

func (u *usecase) Create(ctx context.Context, userID int64, payload *request.CreateBooking) (response.Booking, error) {
	cabinID, err := uuid.Parse(payload.CabinID)
	if err != nil {
		return response.Booking{}, errors.BadRequest("invalid cabin id format")
	}

	start, err := time.Parse(time.RFC3339, payload.StartDate)
	if err != nil {
		return response.Booking{}, errors.BadRequest("invalid start_date format, expected RFC3339")
	}
	end, err := time.Parse(time.RFC3339, payload.EndDate)
	if err != nil {
		return response.Booking{}, errors.BadRequest("invalid end_date format, expected RFC3339")
	}
	if !end.After(start) {
		return response.Booking{}, errors.BadRequest("end_date must be after start_date")
	}

	cabin, err := u.cabins.FindCabinByID(ctx, cabinID.String())
	if err != nil || !cabin.IsAvailable {
		return response.Booking{}, errors.UnprocessableEntity("cabin is not available")
	}

	// Serialize the check-then-insert against other creations on the
	// same cabin.
	unlock, err := u.locker.Acquire(ctx, lockKeyCabin(cabinID.String()))
	if err != nil {
		u.log.Error(ctx, "error acquire cabin lock", err)
		return response.Booking{}, errors.InternalServerError("error acquire cabin lock")
	}
	defer unlock(ctx)

	booking := entity.Booking{
		ID:        uuid.New(),
		UserID:    userID,
		CabinID:   cabinID,
		StartDate: start.UTC(),
		EndDate:   end.UTC(),
		Status:    entity.StatusPending,
	}
	if payload.Notes != "" {
		booking.Notes = sql.NullString{String: payload.Notes, Valid: true}
	}

	created, err := u.repo.InsertBookingIfVacant(ctx, booking)
	if err != nil {
		return response.Booking{}, err
	}

	u.publishEvent(ctx, TopicBookingCreated, created)

	return mapBookingToResponse(created), nil
}

func (u *usecase) GetBooking(ctx context.Context, bookingID string, userID int64, role string) (response.Booking, error) {
	booking, err := u.findBooking(ctx, bookingID)
	if err != nil {
		return response.Booking{}, err
	}

	if !privilegedRole(role) && booking.UserID != userID {
		return response.Booking{}, errors.ForbiddenError("you can view only your own bookings")
	}
	return mapBookingToResponse(booking), nil
}

func (u *usecase) GetUserBookings(ctx context.Context, userID int64) ([]response.Booking, error) {
	bookings, err := u.repo.FindBookingsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return mapBookingsToResponse(bookings), nil
}

func (u *usecase) ListAll(ctx context.Context) ([]response.Booking, error) {
	bookings, err := u.repo.FindAllBookings(ctx)
	if err != nil {
		return nil, err
	}
	return mapBookingsToResponse(bookings), nil
}

func (u *usecase) Update(ctx context.Context, bookingID string, userID int64, role string, payload *request.UpdateBooking) (response.Booking, error) {
	booking, err := u.findBooking(ctx, bookingID)
	if err != nil {
		return response.Booking{}, err
	}

	if !privilegedRole(role) && booking.UserID != userID {
		return response.Booking{}, errors.ForbiddenError("you can update only your own bookings")
	}

	newStart, newEnd := booking.StartDate, booking.EndDate
	if payload.StartDate != nil {
		newStart, err = time.Parse(time.RFC3339, *payload.StartDate)
		if err != nil {
			return response.Booking{}, errors.BadRequest("invalid start_date format, expected RFC3339")
		}
		newStart = newStart.UTC()
	}
	if payload.EndDate != nil {
		newEnd, err = time.Parse(time.RFC3339, *payload.EndDate)
		if err != nil {
			return response.Booking{}, errors.BadRequest("invalid end_date format, expected RFC3339")
		}
		newEnd = newEnd.UTC()
	}
	if !newEnd.After(newStart) {
		return response.Booking{}, errors.BadRequest("end_date must be after start_date")
	}

	if payload.Status != nil && *payload.Status != booking.Status {
		if !entity.CanTransition(booking.Status, *payload.Status) {
			return response.Booking{}, errors.UnprocessableEntity("illegal booking status transition")
		}
		booking.Status = *payload.Status
	}
	if payload.Notes != nil {
		booking.Notes = sql.NullString{String: *payload.Notes, Valid: *payload.Notes != ""}
	}

	windowChanged := !newStart.Equal(booking.StartDate) || !newEnd.Equal(booking.EndDate)
	booking.StartDate = newStart
	booking.EndDate = newEnd

	// A moved window competes for the slot again, so it goes through
	// the same serialized conflict check as a fresh creation.
	if windowChanged {
		unlock, err := u.locker.Acquire(ctx, lockKeyCabin(booking.CabinID.String()))
		if err != nil {
			u.log.Error(ctx, "error acquire cabin lock", err)
			return response.Booking{}, errors.InternalServerError("error acquire cabin lock")
		}
		defer unlock(ctx)

		updated, err := u.repo.UpdateBookingWindowIfVacant(ctx, booking)
		if err != nil {
			return response.Booking{}, err
		}
		return mapBookingToResponse(updated), nil
	}

	updated, err := u.repo.UpdateBooking(ctx, booking)
	if err != nil {
		return response.Booking{}, err
	}
	return mapBookingToResponse(updated), nil
}

func (u *usecase) Cancel(ctx context.Context, bookingID string, userID int64, role string) (response.Booking, error) {
	booking, err := u.findBooking(ctx, bookingID)
	if err != nil {
		return response.Booking{}, err
	}

	if !privilegedRole(role) && booking.UserID != userID {
		return response.Booking{}, errors.ForbiddenError("you can cancel only your own bookings")
	}

	if booking.Status == entity.StatusCancelled {
		return mapBookingToResponse(booking), nil
	}
	if !entity.CanTransition(booking.Status, entity.StatusCancelled) {
		return response.Booking{}, errors.UnprocessableEntity("booking can no longer be cancelled")
	}

	booking.Status = entity.StatusCancelled
	cancelled, err := u.repo.UpdateBooking(ctx, booking)
	if err != nil {
		return response.Booking{}, err
	}

	u.publishEvent(ctx, TopicBookingCancelled, cancelled)

	return mapBookingToResponse(cancelled), nil
}

// Confirm moves a booking to confirmed after its payment was marked
// paid. It is idempotent so the payment_paid consumer can redeliver.
func (u *usecase) Confirm(ctx context.Context, bookingID string) error {
	booking, err := u.findBooking(ctx, bookingID)
	if err != nil {
		return err
	}

	if booking.Status == entity.StatusConfirmed {
		return nil
	}
	if booking.Status != entity.StatusPending {
		return errors.UnprocessableEntity("booking is not pending")
	}

	booking.Status = entity.StatusConfirmed
	confirmed, err := u.repo.UpdateBooking(ctx, booking)
	if err != nil {
		return err
	}

	u.scheduleCompletion(ctx, confirmed)
	u.publishEvent(ctx, TopicBookingConfirmed, confirmed)

	return nil
}

func (u *usecase) FindBookingByID(ctx context.Context, bookingID string) (entity.Booking, error) {
	return u.findBooking(ctx, bookingID)
}

// Complete marks a confirmed booking as completed once its window has
// passed; invoked by the scheduler task enqueued at confirm time.
func (u *usecase) Complete(ctx context.Context, bookingID string) error {
	booking, err := u.findBooking(ctx, bookingID)
	if err != nil {
		return err
	}

	if booking.Status != entity.StatusConfirmed {
		return nil
	}

	booking.Status = entity.StatusCompleted
	if _, err := u.repo.UpdateBooking(ctx, booking); err != nil {
		return err
	}
	return nil
}

func (u *usecase) findBooking(ctx context.Context, bookingID string) (entity.Booking, error) {
	if _, err := uuid.Parse(bookingID); err != nil {
		return entity.Booking{}, errors.BadRequest("invalid booking id format")
	}
	return u.repo.FindBookingByID(ctx, bookingID)
}

func (u *usecase) scheduleCompletion(ctx context.Context, booking entity.Booking) {
	payload, _ := json.Marshal(request.BookingCompleted{BookingID: booking.ID.String()})
	if _, err := u.repo.SetTaskScheduler(ctx, booking.EndDate, payload); err != nil {
		u.log.Error(ctx, "error schedule booking completion", err)
	}
}

func (u *usecase) publishEvent(ctx context.Context, topic string, booking entity.Booking) {
	payload, _ := json.Marshal(mapBookingToResponse(booking))
	if err := u.publish.Publish(topic, message.NewMessage(watermill.NewUUID(), payload)); err != nil {
		u.log.Error(ctx, "error publish booking event", err)
	}
}

func privilegedRole(role string) bool {
	return role == "admin" || role == "manager"
}

func lockKeyCabin(cabinID string) string {
	return "lock:booking:cabin:" + cabinID
}

func mapBookingToResponse(booking entity.Booking) response.Booking {
	resp := response.Booking{
		ID:        booking.ID.String(),
		UserID:    booking.UserID,
		CabinID:   booking.CabinID.String(),
		StartDate: booking.StartDate.Format(time.RFC3339),
		EndDate:   booking.EndDate.Format(time.RFC3339),
		Status:    booking.Status,
		Notes:     booking.Notes.String,
		CreatedAt: booking.CreatedAt.Format(time.RFC3339),
	}
	if booking.UpdatedAt.Valid {
		resp.UpdatedAt = booking.UpdatedAt.Time.Format(time.RFC3339)
	}
	return resp
}

func mapBookingsToResponse(bookings []entity.Booking) []response.Booking {
	resp := make([]response.Booking, 0, len(bookings))
	for _, booking := range bookings {
		resp = append(resp, mapBookingToResponse(booking))
	}
	return resp
}
