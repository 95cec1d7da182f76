//go:build integration

package integration

import (
	"fmt"
	"log"
	"os"
	"testing"

	"github.com/Roshan-Baghwar/travel-itinerary-system/internal/models"
	"github.com/Roshan-Baghwar/travel-itinerary-system/internal/seed"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDB *gorm.DB

func TestMain(m *testing.M) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		getEnv("TEST_DB_HOST", "localhost"),
		getEnv("TEST_DB_PORT", "5434"),
		getEnv("TEST_DB_USER", "postgres"),
		getEnv("TEST_DB_PASSWORD", "postgres"),
		getEnv("TEST_DB_NAME", "itinerary_test_db"),
	)

	var err error
	testDB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect to test database: %v", err)
	}

	dropAll()

	if err := testDB.AutoMigrate(
		&models.Hotel{},
		&models.Activity{},
		&models.TransferTemplate{},
		&models.Trip{},
		&models.Day{},
		&models.Transfer{},
		&models.RecommendedItinerary{},
	); err != nil {
		log.Fatalf("failed to auto-migrate test database: %v", err)
	}

	if err := seed.Run(testDB); err != nil {
		log.Fatalf("failed to seed test database: %v", err)
	}

	code := m.Run()

	dropAll()

	os.Exit(code)
}

func dropAll() {
	// Join and owned tables first.
	for _, table := range []string{
		"day_activities",
		"recommended_itinerary_days",
		"transfers",
		"days",
		"trips",
		"recommended_itineraries",
		"transfer_templates",
		"activities",
		"hotels",
	} {
		testDB.Exec("DROP TABLE IF EXISTS " + table + " CASCADE")
	}
}

// cleanTrips removes user-created trips and their owned rows while
// leaving the seeded catalog and recommended itineraries untouched.
func cleanTrips() {
	testDB.Exec("DELETE FROM day_activities WHERE day_id IN (SELECT id FROM days WHERE trip_id IS NOT NULL)")
	testDB.Exec("DELETE FROM transfers WHERE day_id IN (SELECT id FROM days WHERE trip_id IS NOT NULL)")
	testDB.Exec("DELETE FROM days WHERE trip_id IS NOT NULL")
	testDB.Exec("DELETE FROM trips")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
