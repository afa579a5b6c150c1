package main

import (
	"fmt"
	"log"
	"os"

	"github.com/abdhalim18/inventory-backend/entity"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func setupDatabase() *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s user=%s password='%s' dbname=%s port=%s sslmode=%s",
		getenv("DB_HOST", "localhost"),
		getenv("DB_USER", "postgres"),
		getenv("DB_PASSWORD", "postgres"),
		getenv("DB_NAME", "inventory"),
		getenv("DB_PORT", "5432"),
		getenv("DB_SSLMODE", "disable"),
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect database:", err)
	}

	// Ensure required extensions for UUID are present (uuid_generate_v4 defaults)
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\"").Error; err != nil {
		log.Println("warning: failed to ensure uuid-ossp extension:", err)
	}

	if err := db.AutoMigrate(
		&entity.User{},
		&entity.Customer{},
		&entity.Category{},
		&entity.Product{},
		&entity.Order{},
		&entity.OrderItem{},
	); err != nil {
		log.Fatal("failed to run migrations:", err)
	}

	seedDefaults(db)
	return db
}

// seedDefaults is idempotent: category inserts use ON CONFLICT DO NOTHING on
// the unique name, and the admin user is only created when no user exists.
func seedDefaults(db *gorm.DB) {
	categories := []entity.Category{
		{Name: "Uncategorized"},
		{Name: "Electronics"},
		{Name: "Office Supplies"},
	}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&categories).Error
	if err != nil {
		log.Println("warning: failed to seed categories:", err)
	}

	var count int64
	if err := db.Model(&entity.User{}).Count(&count).Error; err != nil {
		log.Println("warning: failed to count users:", err)
		return
	}
	if count > 0 {
		return
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
		log.Println("warning: ADMIN_PASSWORD not set; seeding default admin with insecure password")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Println("warning: failed to hash admin password:", err)
		return
	}
	admin := entity.User{
		FirstName:    "Default",
		LastName:     "Admin",
		Email:        getenv("ADMIN_EMAIL", "admin@example.com"),
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
		Active:       true,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Println("warning: failed to seed admin user:", err)
	}
}
