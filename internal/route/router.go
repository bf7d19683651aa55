package router

import (
	bookinghandler "office-booking-service/internal/module/booking/handler"
	cabinhandler "office-booking-service/internal/module/cabin/handler"
	paymenthandler "office-booking-service/internal/module/payment/handler"
	"office-booking-service/internal/pkg/middleware"

	"github.com/gofiber/fiber/v2"
)

func Initialize(
	app *fiber.App,
	handlerCabin *cabinhandler.CabinHandler,
	handlerBooking *bookinghandler.BookingHandler,
	handlerPayment *paymenthandler.PaymentHandler,
	m *middleware.Middleware,
) *fiber.App {

	// health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).SendString("OK")
	})

	Api := app.Group("/api")
	v1 := Api.Group("/v1")

	// cabins
	v1.Get("/cabins", m.ValidateToken, handlerCabin.ListCabins)
	v1.Get("/cabins/:id", m.ValidateToken, handlerCabin.GetCabin)
	v1.Post("/cabins", m.ValidateToken, m.RequireRoles(middleware.RoleAdmin, middleware.RoleManager), handlerCabin.CreateCabin)

	// bookings
	v1.Post("/bookings", m.ValidateToken, handlerBooking.CreateBooking)
	v1.Get("/bookings", m.ValidateToken, m.RequireRoles(middleware.RoleAdmin, middleware.RoleManager), handlerBooking.ListBookings)
	v1.Get("/bookings/mine", m.ValidateToken, handlerBooking.GetMyBookings)
	v1.Get("/bookings/:id", m.ValidateToken, handlerBooking.GetBooking)
	v1.Put("/bookings/:id", m.ValidateToken, handlerBooking.UpdateBooking)
	v1.Delete("/bookings/:id", m.ValidateToken, handlerBooking.CancelBooking)

	// payments
	v1.Post("/payments", m.ValidateToken, handlerPayment.CreatePayment)
	v1.Get("/payments", m.ValidateToken, m.RequireRoles(middleware.RoleAdmin), handlerPayment.ListPayments)
	v1.Get("/payments/mine", m.ValidateToken, handlerPayment.GetMyPayments)
	v1.Get("/payments/:id", m.ValidateToken, handlerPayment.GetPayment)
	v1.Put("/payments/:id", m.ValidateToken, m.RequireRoles(middleware.RoleAdmin), handlerPayment.UpdatePayment)

	return app
}
