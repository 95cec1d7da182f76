package main

import (
	"log"

	"github.com/Roshan-Baghwar/travel-itinerary-system/config"
	"github.com/Roshan-Baghwar/travel-itinerary-system/internal/handler"
	"github.com/Roshan-Baghwar/travel-itinerary-system/internal/middleware"
	"github.com/Roshan-Baghwar/travel-itinerary-system/internal/repository"
	"github.com/Roshan-Baghwar/travel-itinerary-system/internal/seed"
	"github.com/Roshan-Baghwar/travel-itinerary-system/internal/service"
	"github.com/Roshan-Baghwar/travel-itinerary-system/pkg/database"
	"github.com/Roshan-Baghwar/travel-itinerary-system/pkg/rabbitmq"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())

	if err := seed.Run(db); err != nil {
		log.Fatalf("failed to seed database: %v", err)
	}

	publisher, err := rabbitmq.NewPublisher(cfg.RabbitURL)
	if err != nil {
		log.Fatalf("failed to connect to RabbitMQ: %v", err)
	}
	defer publisher.Close()

	// Repositories
	catalogRepo := repository.NewCatalogRepository(db)
	tripRepo := repository.NewTripRepository(db)
	itineraryRepo := repository.NewItineraryRepository(db)

	// Services
	tripSvc := service.NewTripService(tripRepo, catalogRepo, publisher)
	recommendSvc := service.NewRecommendService(itineraryRepo)

	// Echo
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "itinerary-service"})
	})

	handler.NewTripHandler(tripSvc, recommendSvc).RegisterRoutes(e)

	log.Printf("Itinerary Service starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
