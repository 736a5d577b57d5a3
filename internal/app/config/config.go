package config

import (
	"medibook-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "medibook"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                          utils.GetEnvString("APP_ENV", "development"),
			Port:                         utils.GetEnvString("APP_PORT", ":8080"),
			Version:                      utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:                     utils.GetEnvString("APP_TIMEZONE", "Asia/Jakarta"),
			EndpointPrefix:               utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:                  utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeout:              utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			BookingSessionTTLInMinutes:   utils.GetEnvInt("APP_BOOKING_SESSION_TTL_IN_MINUTES", 30),
			UpstreamTimeoutInSeconds:     utils.GetEnvInt("APP_UPSTREAM_TIMEOUT_IN_SECONDS", 10),
			PaymentTimeoutInSeconds:      utils.GetEnvInt("APP_PAYMENT_TIMEOUT_IN_SECONDS", 30),
			RateLimiterBlockTimeInMinute: utils.GetEnvInt("APP_RATE_LIMITER_BLOCK_TIME_IN_MINUTE", 5),
		},
		JWT: JWT{
			Secret: utils.GetEnvString("JWT_SECRET", "anyjwt"),
		},
		Upstream: Upstream{
			DirectoryBaseUrl:    utils.GetEnvString("UPSTREAM_DIRECTORY_BASE_URL", "http://localhost:5001"),
			AppointmentBaseUrl:  utils.GetEnvString("UPSTREAM_APPOINTMENT_BASE_URL", "http://localhost:5002"),
			SubscriptionBaseUrl: utils.GetEnvString("UPSTREAM_SUBSCRIPTION_BASE_URL", "http://localhost:5003"),
		},
		PaymentGateway: PaymentGateway{
			BaseUrl:  utils.GetEnvString("PAYMENT_GATEWAY_BASE_URL", "http://localhost:5004"),
			Username: utils.GetEnvString("PAYMENT_GATEWAY_USERNAME", ""),
			ApiKey:   utils.GetEnvString("PAYMENT_GATEWAY_API_KEY", ""),
			Currency: utils.GetEnvString("PAYMENT_GATEWAY_CURRENCY", "IDR"),
		},
		RabbitMQ: AppRabbitMQ{
			BookingEventsQueue: utils.GetEnvString("APP_RABBITMQ_BOOKING_EVENTS_QUEUE", "booking_events_queue"),
		},
		MongoDB: AppMongoDB{
			DbName:                utils.GetEnvString("APP_MONGODB_DB_NAME", "medibook"),
			TransactionCollection: utils.GetEnvString("APP_MONGODB_TRANSACTION_COLLECTION", "transactions"),
		},
	}
}
