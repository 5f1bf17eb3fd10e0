package database

import (
	"fmt"
	"log"

	"github.com/fogonlabs/comanda/internal/config"
	"github.com/fogonlabs/comanda/internal/domain/entity"
	"github.com/fogonlabs/comanda/internal/domain/enum"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		// Staff
		&entity.Waiter{},

		// Menu
		&entity.Category{},
		&entity.MenuItem{},
		&entity.InventoryItem{},

		// Floor plan
		&entity.Area{},
		&entity.Table{},

		// Customers
		&entity.Customer{},

		// Orders
		&entity.Order{},
		&entity.OrderItem{},
		&entity.Payment{},
		&entity.OrderCounter{},

		// Shifts
		&entity.Shift{},
		&entity.CashMovement{},

		// System entities
		&entity.RestaurantSettings{},
		&entity.IdempotencyKey{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData seeds the rows the system cannot run without: the order
// counter, the restaurant settings row, the walk-in customer and an admin
// account when one is configured.
func SeedDefaultData(db *gorm.DB) error {
	log.Println("Seeding default data...")

	// Order number counter, a single row bumped under lock
	var counter entity.OrderCounter
	if err := db.First(&counter, 1).Error; err != nil {
		counter = entity.OrderCounter{ID: 1, Next: 1}
		if err := db.Create(&counter).Error; err != nil {
			log.Printf("Warning: failed to create order counter: %v", err)
		}
	}

	// Settings row with the defaults declared on the entity
	var settings entity.RestaurantSettings
	if err := db.First(&settings, 1).Error; err != nil {
		settings = entity.RestaurantSettings{ID: 1}
		if err := db.Create(&settings).Error; err != nil {
			log.Printf("Warning: failed to create restaurant settings: %v", err)
		}
	}

	// Walk-in customer assigned to every order until a real one is picked
	var walkIn entity.Customer
	if err := db.Where("is_walk_in = ?", true).First(&walkIn).Error; err != nil {
		walkIn = entity.Customer{Name: "Walk-in", IsWalkIn: true}
		if err := db.Create(&walkIn).Error; err != nil {
			log.Printf("Warning: failed to create walk-in customer: %v", err)
		}
	}

	// Create the admin account if configured via environment variables
	adminName := viper.GetString("ADMIN_NAME")
	adminPIN := viper.GetString("ADMIN_PIN")

	if adminName != "" && adminPIN != "" {
		var existingAdmin entity.Waiter
		if err := db.Where("name = ?", adminName).First(&existingAdmin).Error; err != nil {
			hashedPIN, err := bcrypt.GenerateFromPassword([]byte(adminPIN), bcrypt.DefaultCost)
			if err != nil {
				log.Printf("Warning: failed to hash admin PIN: %v", err)
			} else {
				admin := entity.Waiter{
					Name:    adminName,
					PINHash: string(hashedPIN),
					Role:    enum.RoleAdmin,
					Active:  true,
				}
				if err := db.Create(&admin).Error; err != nil {
					log.Printf("Warning: failed to create admin account: %v", err)
				} else {
					log.Printf("Admin account created: %s", adminName)
				}
			}
		} else {
			log.Printf("Admin account already exists: %s", adminName)
		}
	}

	log.Println("Default data seeding completed")
	return nil
}
