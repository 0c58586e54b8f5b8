package config

import (
	"fmt"
	"log"
	"os"

	"github.com/humspot/api-go/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func InitDB() *gorm.DB {
	dbHost := os.Getenv("DB_HOST")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")
	dbPort := os.Getenv("DB_PORT")

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		dbHost, dbUser, dbPassword, dbName, dbPort)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := AutoMigrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	return db
}

// AutoMigrate creates or updates the schema for every model. Shared with
// the test setup, which runs it against an in-memory database.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Activity{},
		&models.Event{},
		&models.Attraction{},
		&models.Tag{},
		&models.ActivityTag{},
		&models.ActivityPhoto{},
		&models.Favorite{},
		&models.Visited{},
		&models.RSVP{},
		&models.Rating{},
		&models.Comment{},
		&models.Submission{},
	)
}
