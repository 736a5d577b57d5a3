package config

type InternalConfig struct {
	App            App
	JWT            JWT
	Upstream       Upstream
	PaymentGateway PaymentGateway
	RabbitMQ       AppRabbitMQ
	MongoDB        AppMongoDB
}

type App struct {
	Env                          string
	Port                         string
	Version                      string
	Timezone                     string
	EndpointPrefix               string
	MaxRequests                  int
	ShutdownTimeout              int
	BookingSessionTTLInMinutes   int
	UpstreamTimeoutInSeconds     int
	PaymentTimeoutInSeconds      int
	RateLimiterBlockTimeInMinute int
}

type JWT struct {
	Secret string
}

// Upstream holds base URLs of the external collaborators this service
// orchestrates against. None of them are owned by this service.
type Upstream struct {
	DirectoryBaseUrl    string
	AppointmentBaseUrl  string
	SubscriptionBaseUrl string
}

type PaymentGateway struct {
	BaseUrl  string
	Username string
	ApiKey   string
	Currency string
}

type AppRabbitMQ struct {
	BookingEventsQueue string
}

type AppMongoDB struct {
	DbName                string
	TransactionCollection string
}
