package main

import (
	"fmt"
	"log"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	apihttp "github.com/securepay/payment-gateway/internal/adapter/primary/http"
	"github.com/securepay/payment-gateway/internal/adapter/secondary/database"
	"github.com/securepay/payment-gateway/internal/adapter/secondary/gateway"
	"github.com/securepay/payment-gateway/internal/adapter/secondary/messaging"
	"github.com/securepay/payment-gateway/internal/constant/model/db"
	"github.com/securepay/payment-gateway/internal/core/service"
	"github.com/securepay/payment-gateway/internal/port/output"
)

func main() {
	// Required configuration: missing values are fatal at startup, never
	// surfaced per-request
	dbConnStr := mustEnv("DATABASE_URL")
	apiKey := mustEnv("PAYMENT_GATEWAY_API_KEY")

	port := getEnv("PORT", "8080")
	amqpURL := os.Getenv("RABBITMQ_URL")
	gatewayURL := os.Getenv("GATEWAY_URL")

	// Initialize secondary adapter: Database
	dbConn, err := db.NewDB(dbConnStr)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbConn.Close()

	// Initialize secondary adapters: Repository, Gateway, Messaging
	transactionRepo := database.NewGormTransactionRepository(dbConn.DB)

	var paymentGateway output.PaymentGateway
	if gatewayURL != "" {
		paymentGateway = gateway.NewHTTPGateway(gatewayURL, apiKey, nil)
		log.Printf("Using external payment gateway at %s", gatewayURL)
	} else {
		paymentGateway = gateway.NewSimulatedGateway(apiKey)
		log.Println("Using simulated payment gateway")
	}

	var events output.TransactionEvents
	if amqpURL != "" {
		msgClient, err := messaging.NewRabbitMQClient(amqpURL)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer msgClient.Close()
		events = msgClient
	} else {
		log.Println("RABBITMQ_URL not set; transaction events disabled")
		events = messaging.NewNoopPublisher()
	}

	// Initialize core service (implements input port)
	paymentService := service.NewPaymentService(transactionRepo, paymentGateway, events)

	// Initialize primary adapter: HTTP handler (uses input port)
	paymentHandler := apihttp.NewPaymentHandler(paymentService)

	// Initialize Echo
	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	// Routes
	api := e.Group("/api")
	api.POST("/payment", paymentHandler.ProcessPayment)

	// Health check
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	// Start server
	addr := fmt.Sprintf(":%s", port)
	log.Printf("Starting payment API on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func mustEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("%s must be set", key)
	}
	return value
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
