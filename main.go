package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"bakery-api/config"
	"bakery-api/consumers"
	"bakery-api/controllers"
	"bakery-api/middlewares"
	"bakery-api/models"
	"bakery-api/notifier"
	"bakery-api/rabbitmq"
	"bakery-api/ratelimit"
)

func main() {
	cfg := config.LoadConfig()

	if err := models.RegisterValidators(); err != nil {
		log.Fatalf("Failed to register validators: %v", err)
	}

	if !cfg.EmailReady() {
		log.Printf("Warning: email configuration incomplete, order dispatch will fail")
	}

	// RabbitMQ is optional; without a broker orders are still emailed, just
	// not fanned out as events.
	var rmq *rabbitmq.RabbitMQ
	if cfg.RabbitMQURL != "" {
		var err error
		rmq, err = rabbitmq.NewRabbitMQ(cfg)
		if err != nil {
			log.Fatalf("RabbitMQ initialization failed: %v", err)
		}
		defer rmq.Close()

		if err := rmq.SetupQueues(); err != nil {
			log.Fatalf("Failed to setup RabbitMQ queues: %v", err)
		}

		go consumers.StartOrderConsumer(rmq.Channel, cfg)
	}

	store := ratelimit.NewStore(
		ratelimit.WithWindow(cfg.RateLimitWindow),
		ratelimit.WithMaxRequests(cfg.RateLimitMax),
		ratelimit.WithSweepThreshold(cfg.RateLimitSweepAt),
	)
	mailer := notifier.NewMailer(cfg)
	orderController := controllers.NewOrderController(cfg, mailer, rmq)

	r := gin.Default()

	r.Use(middlewares.PrometheusMiddleware())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.GET("/products", controllers.ListProducts)

		orders := api.Group("/orders")
		orders.Use(middlewares.OriginCheck(cfg.AllowedOrigins))
		orders.Use(middlewares.RateLimit(store))
		orders.POST("", orderController.Create)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Bakery API starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
