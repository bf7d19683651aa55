package main

import (
	"context"
	"log"

	"office-booking-service/config"
	bookinghandler "office-booking-service/internal/module/booking/handler"
	bookingrepositories "office-booking-service/internal/module/booking/repositories"
	bookingusecases "office-booking-service/internal/module/booking/usecases"
	cabinhandler "office-booking-service/internal/module/cabin/handler"
	cabinrepositories "office-booking-service/internal/module/cabin/repositories"
	cabinusecases "office-booking-service/internal/module/cabin/usecases"
	paymenthandler "office-booking-service/internal/module/payment/handler"
	paymentrepositories "office-booking-service/internal/module/payment/repositories"
	paymentusecases "office-booking-service/internal/module/payment/usecases"
	"office-booking-service/internal/pkg/database"
	"office-booking-service/internal/pkg/http"
	"office-booking-service/internal/pkg/httpclient"
	"office-booking-service/internal/pkg/locker"
	log_internal "office-booking-service/internal/pkg/log"
	"office-booking-service/internal/pkg/messagestream"
	"office-booking-service/internal/pkg/middleware"
	"office-booking-service/internal/pkg/redis"
	"office-booking-service/internal/pkg/scheduler"
	router "office-booking-service/internal/route"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
)

func main() {
	cfg := config.InitConfig()

	app, messageRouters := initService(cfg)

	for _, r := range messageRouters {
		ctx := context.Background()
		go func(r *message.Router) {
			if err := r.Run(ctx); err != nil {
				log.Fatal(err)
			}
		}(r)
	}

	// start http server
	http.StartHttpServer(app, cfg.HttpServer.Port)
}

func initService(cfg *config.Config) (*fiber.App, []*message.Router) {
	// init database
	db := database.GetConnection(&cfg.Database)
	database.RunMigrations(db)

	// init redis
	redisClient := redis.SetupClient(&cfg.Redis)

	// init logger
	logZap := log_internal.SetupLogger()
	log_internal.Init(logZap)
	logger := log_internal.GetLogger()

	// init http client
	cb := httpclient.InitCircuitBreaker(&cfg.HttpClient, cfg.HttpClient.Type)
	httpClient := httpclient.InitHttpClient(&cfg.HttpClient, cb)

	ctx := context.Background()

	// init message stream
	amqp := messagestream.NewAmpq(&cfg.MessageStream)

	subscriber, err := amqp.NewSubscriber()
	if err != nil {
		logger.Error(ctx, "Failed to create subscriber", err)
	}

	publisher, err := amqp.NewPublisher()
	if err != nil {
		logger.Error(ctx, "Failed to create publisher", err)
	}

	// init scheduler
	sched := &scheduler.Scheduler{Log: logger}
	asynqClient := sched.InitClient(&cfg.Redis)

	// init locker
	lock := locker.New(redisClient)

	// wire modules
	cabinRepo := cabinrepositories.New(db, logger)
	cabinUsecase := cabinusecases.New(cabinRepo, logger)

	bookingRepo := bookingrepositories.New(db, logger, asynqClient)
	bookingUsecase := bookingusecases.New(bookingRepo, cabinRepo, lock, logger, publisher)

	paymentRepo := paymentrepositories.New(db, logger)
	paymentUsecase := paymentusecases.New(paymentRepo, bookingUsecase, lock, logger, publisher)

	m := &middleware.Middleware{
		Log:            logZap,
		HttpClient:     httpClient,
		CfgUserService: &cfg.UserService,
	}

	v := validator.New()

	cabinHandler := &cabinhandler.CabinHandler{
		Log:       logZap,
		Validator: v,
		Usecase:   cabinUsecase,
	}
	bookingHandler := &bookinghandler.BookingHandler{
		Log:       logZap,
		Validator: v,
		Usecase:   bookingUsecase,
		Publish:   publisher,
	}
	paymentHandler := &paymenthandler.PaymentHandler{
		Log:       logZap,
		Validator: v,
		Usecase:   paymentUsecase,
	}

	var messageRouters []*message.Router

	paymentPaidRouter, err := messagestream.NewRouter(publisher, "payment_paid_poisoned", "payment_paid_handler", "payment_paid", subscriber, bookingHandler.ConsumePaymentPaidQueue)
	if err != nil {
		logger.Error(ctx, "Failed to create payment_paid router", err)
	}

	messageRouters = append(messageRouters, paymentPaidRouter)

	// scheduler workers and monitoring
	go sched.StartHandler(&cfg.Redis,
		[]string{scheduler.TypeSetBookingCompleted},
		[]func(ctx context.Context, t *asynq.Task) error{bookingHandler.SetBookingCompleted},
	)
	go sched.StartMonitoring(&cfg.Redis)

	serverHttp := http.SetupHttpEngine()

	r := router.Initialize(serverHttp, cabinHandler, bookingHandler, paymentHandler, m)

	return r, messageRouters
}
