package database

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"chef-backend/config"
	"chef-backend/models"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// DB is the global database instance.
var DB *gorm.DB

// ConnectDatabase opens MySQL when MYSQL_DSN is set, otherwise the local
// sqlite file, then migrates the schema.
func ConnectDatabase(cfg config.Config) error {
	var err error

	if cfg.MySQLDSN != "" {
		DB, err = gorm.Open(mysql.Open(cfg.MySQLDSN), &gorm.Config{})
	} else {
		if dir := filepath.Dir(cfg.SQLitePath); dir != "." {
			if mkErr := os.MkdirAll(dir, 0o755); mkErr != nil {
				return fmt.Errorf("failed to create data dir: %w", mkErr)
			}
		}
		DB, err = gorm.Open(sqlite.Open(cfg.SQLitePath), &gorm.Config{})
	}
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	fmt.Println("✅ Database connected successfully!")

	if err := Migrate(DB); err != nil {
		return err
	}
	fmt.Println("✅ Database migrated successfully!")

	return nil
}

// Migrate creates/updates the offers, scrape log, recipe cache and users
// tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Offer{},
		&models.ScrapeLogEntry{},
		&models.RecipeCacheBlob{},
		&models.User{},
	); err != nil {
		return fmt.Errorf("failed to migrate the database: %w", err)
	}
	return nil
}

// SeedAdmin makes sure the admin user from the environment exists.
func SeedAdmin(db *gorm.DB, username, password string) error {
	var user models.User
	if err := db.Where("username = ?", username).First(&user).Error; err == nil {
		return nil
	}

	user = models.User{Username: username}
	if err := user.HashPassword(password); err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	if err := db.Create(&user).Error; err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	log.Printf("✅ Admin user %q seeded", username)
	return nil
}
