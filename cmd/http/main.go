package main

import (
	"context"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/delivery/http/controllers"
	"medibook-service/internal/app/delivery/http/middlewares"
	"medibook-service/internal/app/delivery/http/routers"
	"medibook-service/internal/app/drivers/database"
	"medibook-service/internal/app/drivers/logger"
	"medibook-service/internal/app/drivers/messaging"
	"medibook-service/internal/app/models"
	"medibook-service/internal/app/services/core/availability"
	"medibook-service/internal/app/services/core/booking"
	"medibook-service/internal/app/services/core/conflicts"
	"medibook-service/internal/app/services/core/reschedule"
	"medibook-service/internal/app/services/core/session"
	"medibook-service/internal/app/services/core/subscriptions"
	"medibook-service/internal/app/services/core/transactions"
	"medibook-service/internal/app/services/shared/events"
	"medibook-service/internal/app/services/shared/locker"
	"medibook-service/internal/app/services/shared/payment_gateway"
	"medibook-service/internal/app/services/shared/redis"
	"medibook-service/internal/app/services/upstream/appointments"
	"medibook-service/internal/app/services/upstream/directory"
	upstreamsubscriptions "medibook-service/internal/app/services/upstream/subscriptions"
	"medibook-service/internal/pkg/dto/upstream_dto"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	logger.InitLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		logrus.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitConn := messaging.NewRabbitMQ(driverConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitConn,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapingTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		logrus.Fatalf("Error closing application resources: %v", err)
	}

	logrus.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	// Shared
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockService := locker.NewLockService(redisRepository, bootstrap.Logger)
	sessionService := session.NewSessionService(redisRepository)

	gatewayService, err := payment_gateway.NewGatewayService(bootstrap.InternalConfig)
	if err != nil {
		logrus.Fatalf("Error initializing payment gateway service: %v", err)
	}

	eventPublisher, err := events.NewService(bootstrap.RabbitMQ, bootstrap.Logger, bootstrap.InternalConfig.RabbitMQ.BookingEventsQueue)
	if err != nil {
		logrus.Fatalf("Error initializing booking events publisher: %v", err)
	}

	// Upstream clients
	directoryClient := directory.NewDirectoryClient(bootstrap.InternalConfig.Upstream.DirectoryBaseUrl)
	appointmentClient := appointments.NewAppointmentClient(bootstrap.InternalConfig.Upstream.AppointmentBaseUrl)
	subscriptionClient := upstreamsubscriptions.NewSubscriptionClient(bootstrap.InternalConfig.Upstream.SubscriptionBaseUrl)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(redisRepository, sessionService, bootstrap.InternalConfig, bootstrap.Logger)

	// Transactions
	transactionRepository := transactions.NewTransactionMongoRepository(
		bootstrap.MongoDB.Database(bootstrap.InternalConfig.MongoDB.DbName),
		bootstrap.InternalConfig.MongoDB.TransactionCollection,
	)

	// Core services
	availabilityUsecase := availability.NewAvailabilityUsecase(appointmentClient, bootstrap.Logger)
	conflictGuard := conflicts.NewGuard(appointmentClient, bootstrap.Logger)
	subscriptionUsecase := subscriptions.NewSubscriptionUsecase(subscriptionClient, eventPublisher, bootstrap.Logger)

	bookingUsecase := booking.NewBookingUsecase(
		redisRepository,
		directoryClient,
		availabilityUsecase,
		conflictGuard,
		appointmentClient,
		subscriptionUsecase,
		gatewayService,
		lockService,
		transactionRepository,
		eventPublisher,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)

	rescheduleConfirm := func(ctx context.Context, appointmentID, date string, slot models.TimeSlot, clinic models.Clinic) (*upstream_dto.AppointmentRecord, error) {
		return appointmentClient.RescheduleAppointment(ctx, contracts.RescheduleAppointmentInput{
			AppointmentID: appointmentID,
			ClinicID:      clinic.ID,
			Date:          date,
			SlotID:        slot.ID,
			StartTime:     slot.StartTime,
			EndTime:       slot.EndTime,
		})
	}
	rescheduleUsecase := reschedule.NewRescheduleUsecase(
		redisRepository,
		directoryClient,
		appointmentClient,
		availabilityUsecase,
		conflictGuard,
		rescheduleConfirm,
		eventPublisher,
		bootstrap.InternalConfig,
		bootstrap.Logger,
	)

	// Controllers
	bookingController := controllers.NewBookingController(bootstrap.Logger, bookingUsecase, bootstrap.InternalConfig)
	availabilityController := controllers.NewAvailabilityController(bootstrap.Logger, availabilityUsecase, bootstrap.InternalConfig)
	rescheduleController := controllers.NewRescheduleController(bootstrap.Logger, rescheduleUsecase, bootstrap.InternalConfig)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		bookingController,
		availabilityController,
		rescheduleController,
	)
}
