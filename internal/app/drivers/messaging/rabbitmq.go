package messaging

import (
	"fmt"
	"medibook-service/internal/app/config"

	"github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

func NewRabbitMQ(driverConfig *config.DriverConfig) *amqp091.Connection {
	connectionString := fmt.Sprintf(
		"amqp://%s:%s@%s:%s/",
		driverConfig.RabbitMQ.Username,
		driverConfig.RabbitMQ.Password,
		driverConfig.RabbitMQ.Host,
		driverConfig.RabbitMQ.Port,
	)
	conn, err := amqp091.Dial(connectionString)
	if err != nil {
		logrus.Fatalf("Failed to connect to rabbitMQ: %s", err.Error())
	}
	logrus.Println("Successfully connected to rabbitMQ")
	return conn
}
