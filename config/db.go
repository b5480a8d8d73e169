package config

import (
	"fmt"
	"log"
	"os"

	"frontdesk-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func buildDSN() string {
	host := envOrDefault("DB_HOST", "localhost")
	port := envOrDefault("DB_PORT", "5432")
	user := envOrDefault("DB_USER", "postgres")
	password := os.Getenv("DB_PASSWORD")
	name := envOrDefault("DB_NAME", "frontdesk")
	sslmode := envOrDefault("DB_SSLMODE", "disable")

	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		host, user, password, name, port, sslmode)
}

// ConnectDatabase opens the Postgres connection, runs migrations and seeds
// baseline rows. TranslateError is on so unique-index violations surface as
// gorm.ErrDuplicatedKey (check-in relies on this).
func ConnectDatabase() error {
	db, err := gorm.Open(postgres.Open(buildDSN()), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}

	if err := db.AutoMigrate(
		&models.Hotel{},
		&models.Room{},
		&models.Guest{},
		&models.BillRecord{},
		&models.FoodOrder{},
		&models.MenuItem{},
		&models.Staff{},
		&models.Booking{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	DB = db
	SeedDatabase()
	return nil
}

// SeedDatabase creates a default hotel and admin account when the tables
// are empty, so a fresh install is immediately usable.
func SeedDatabase() {
	hotelName := envOrDefault("DEFAULT_HOTEL_NAME", "Demo Hotel")

	var hotelCount int64
	DB.Model(&models.Hotel{}).Count(&hotelCount)
	if hotelCount == 0 {
		hotel := models.Hotel{
			Name:   hotelName,
			Domain: envOrDefault("DEFAULT_HOTEL_DOMAIN", "localhost"),
		}
		if err := DB.Create(&hotel).Error; err != nil {
			log.Printf("warning: failed to seed default hotel: %v", err)
		} else {
			log.Printf("Default hotel %q seeded", hotel.Name)
		}
	}

	var adminCount int64
	DB.Model(&models.Staff{}).Where("role = ?", models.RoleAdmin).Count(&adminCount)
	if adminCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte(envOrDefault("DEFAULT_ADMIN_PASSWORD", "admin123")), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("warning: failed to hash default admin password: %v", err)
			return
		}
		admin := models.Staff{
			HotelName: hotelName,
			FullName:  "Admin User",
			Username:  envOrDefault("DEFAULT_ADMIN_USERNAME", "admin@frontdesk.local"),
			Password:  string(hash),
			Role:      models.RoleAdmin,
		}
		if err := DB.Create(&admin).Error; err != nil {
			log.Printf("warning: failed to create default admin: %v", err)
		} else {
			log.Println("Default admin seeded")
		}
	}
}
