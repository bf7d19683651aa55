package usecases

import (
	"context"
	"database/sql"
	"time"

	bookingentity "office-booking-service/internal/module/booking/models/entity"
	"office-booking-service/internal/module/payment/models/entity"
	"office-booking-service/internal/module/payment/models/request"
	"office-booking-service/internal/module/payment/models/response"
	"office-booking-service/internal/module/payment/repositories"
	"office-booking-service/internal/pkg/errors"
	"office-booking-service/internal/pkg/locker"
	"office-booking-service/internal/pkg/log"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

const TopicPaymentPaid = "payment_paid"

// BookingProvider is the payment ledger's one-way dependency on the
// booking engine: read a booking, confirm a booking. Nothing else.
type BookingProvider interface {
	FindBookingByID(ctx context.Context, bookingID string) (bookingentity.Booking, error)
	Confirm(ctx context.Context, bookingID string) error
}

type paymentPaidEvent struct {
	PaymentID string `json:"payment_id"`
	BookingID string `json:"booking_id"`
}

type usecase struct {
	repo     repositories.Repositories
	bookings BookingProvider
	locker   locker.Locker
	log      log.Logger
	publish  message.Publisher
}

type Usecase interface {
	Create(ctx context.Context, userID int64, payload *request.CreatePayment) (response.Payment, error)
	Update(ctx context.Context, paymentID string, payload *request.UpdatePayment) (response.Payment, error)
	GetPayment(ctx context.Context, paymentID string, userID int64, role string) (response.Payment, error)
	GetUserPayments(ctx context.Context, userID int64) ([]response.Payment, error)
	ListAll(ctx context.Context) ([]response.Payment, error)
}

func New(repo repositories.Repositories, bookings BookingProvider, locker locker.Locker, log log.Logger, publish message.Publisher) Usecase {
	return &usecase{
		repo:     repo,
		bookings: bookings,
		locker:   locker,
		log:      log,
		publish:  publish,
	}
}

func (u *usecase) Create(ctx context.Context, userID int64, payload *request.CreatePayment) (response.Payment, error) {
	bookingID, err := uuid.Parse(payload.BookingID)
	if err != nil {
		return response.Payment{}, errors.BadRequest("invalid booking id format")
	}
	if payload.Amount <= 0 {
		return response.Payment{}, errors.BadRequest("amount should be greater than 0")
	}

	booking, err := u.bookings.FindBookingByID(ctx, bookingID.String())
	if err != nil {
		return response.Payment{}, err
	}
	if booking.UserID != userID {
		return response.Payment{}, errors.UnprocessableEntity("booking does not belong to user")
	}

	// Serialize the duplicate-payment check against other payment
	// creations on the same booking.
	unlock, err := u.locker.Acquire(ctx, lockKeyBooking(bookingID.String()))
	if err != nil {
		u.log.Error(ctx, "error acquire payment lock", err)
		return response.Payment{}, errors.InternalServerError("error acquire payment lock")
	}
	defer unlock(ctx)

	currency := payload.Currency
	if currency == "" {
		currency = entity.DefaultCurrency
	}

	payment := entity.Payment{
		ID:        uuid.New(),
		UserID:    userID,
		BookingID: bookingID,
		Amount:    payload.Amount,
		Currency:  currency,
		Status:    entity.StatusPending,
	}

	created, err := u.repo.InsertPaymentIfAbsent(ctx, payment)
	if err != nil {
		return response.Payment{}, err
	}

	return mapPaymentToResponse(created), nil
}

func (u *usecase) Update(ctx context.Context, paymentID string, payload *request.UpdatePayment) (response.Payment, error) {
	payment, err := u.findPayment(ctx, paymentID)
	if err != nil {
		return response.Payment{}, err
	}

	if payment.Status == entity.StatusPaid && payload.Status == entity.StatusPending {
		return response.Payment{}, errors.UnprocessableEntity("cannot change status from PAID to PENDING")
	}

	becamePaid := payload.Status == entity.StatusPaid && payment.Status != entity.StatusPaid

	payment.Status = payload.Status
	if payload.TransactionID != "" {
		payment.TransactionID = sql.NullString{String: payload.TransactionID, Valid: true}
	}

	updated, err := u.repo.UpdatePayment(ctx, payment)
	if err != nil {
		return response.Payment{}, err
	}

	if becamePaid {
		// The event goes out before the synchronous confirm so the
		// consumer can reconcile the booking if confirm fails here.
		u.publishPaid(ctx, updated)

		if err := u.bookings.Confirm(ctx, updated.BookingID.String()); err != nil {
			u.log.Error(ctx, "error confirm booking after payment", err)
			return response.Payment{}, errors.PartialSuccess("payment marked paid but booking confirmation failed")
		}
	}

	return mapPaymentToResponse(updated), nil
}

func (u *usecase) GetPayment(ctx context.Context, paymentID string, userID int64, role string) (response.Payment, error) {
	payment, err := u.findPayment(ctx, paymentID)
	if err != nil {
		return response.Payment{}, err
	}

	if !privilegedRole(role) && payment.UserID != userID {
		return response.Payment{}, errors.ForbiddenError("you can view only your own payments")
	}
	return mapPaymentToResponse(payment), nil
}

func (u *usecase) GetUserPayments(ctx context.Context, userID int64) ([]response.Payment, error) {
	payments, err := u.repo.FindPaymentsByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return mapPaymentsToResponse(payments), nil
}

func (u *usecase) ListAll(ctx context.Context) ([]response.Payment, error) {
	payments, err := u.repo.FindAllPayments(ctx)
	if err != nil {
		return nil, err
	}
	return mapPaymentsToResponse(payments), nil
}

func (u *usecase) findPayment(ctx context.Context, paymentID string) (entity.Payment, error) {
	if _, err := uuid.Parse(paymentID); err != nil {
		return entity.Payment{}, errors.BadRequest("invalid payment id format")
	}
	return u.repo.FindPaymentByID(ctx, paymentID)
}

func (u *usecase) publishPaid(ctx context.Context, payment entity.Payment) {
	payload, _ := json.Marshal(paymentPaidEvent{
		PaymentID: payment.ID.String(),
		BookingID: payment.BookingID.String(),
	})
	if err := u.publish.Publish(TopicPaymentPaid, message.NewMessage(watermill.NewUUID(), payload)); err != nil {
		u.log.Error(ctx, "error publish payment paid event", err)
	}
}

func privilegedRole(role string) bool {
	return role == "admin" || role == "manager"
}

func lockKeyBooking(bookingID string) string {
	return "lock:payment:booking:" + bookingID
}

func mapPaymentToResponse(payment entity.Payment) response.Payment {
	resp := response.Payment{
		ID:            payment.ID.String(),
		UserID:        payment.UserID,
		BookingID:     payment.BookingID.String(),
		Amount:        payment.Amount,
		Currency:      payment.Currency,
		Status:        payment.Status,
		TransactionID: payment.TransactionID.String,
		CreatedAt:     payment.CreatedAt.Format(time.RFC3339),
	}
	if payment.UpdatedAt.Valid {
		resp.UpdatedAt = payment.UpdatedAt.Time.Format(time.RFC3339)
	}
	return resp
}

func mapPaymentsToResponse(payments []entity.Payment) []response.Payment {
	resp := make([]response.Payment, 0, len(payments))
	for _, payment := range payments {
		resp = append(resp, mapPaymentToResponse(payment))
	}
	return resp
}
