package main

import (
	"log"
	"os"

	"cpd-events-be/internal/model"
	"cpd-events-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect to Database
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting GORM Migration...")

	// 3. Pre-Migration: extensions gen_random_uuid depends on
	log.Println("Step 1: Setting up Extensions...")

	setupSQL := []string{
		`CREATE EXTENSION IF NOT EXISTS pgcrypto;`,
		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	}

	for _, sql := range setupSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to execute setup SQL: %v. Continuing...", err)
		}
	}

	// 4. AutoMigrate All Models
	log.Println("Step 2: Running AutoMigrate...")

	models := []interface{}{
		&model.User{},
		&model.CertificateTemplate{},
		&model.FieldPlacement{},
		&model.Event{},
		&model.Attendee{},
		&model.Certificate{},
		&model.NotificationType{},
		&model.Notification{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	// 5. Seed the notification type registry (idempotent upserts)
	log.Println("Step 3: Seeding notification types...")

	seedSQL := []string{
		`INSERT INTO notification_types (code, display_name, template, target_type)
		 VALUES ('CERTIFICATE_ISSUED', 'Certificate Issued', 'Certificate for {attendee_name} has been issued.', 'SELF')
		 ON CONFLICT (code) DO NOTHING;`,
		`INSERT INTO notification_types (code, display_name, template, target_type)
		 VALUES ('CERTIFICATE_FAILED', 'Certificate Failed', 'Certificate generation failed: {reason}', 'SELF')
		 ON CONFLICT (code) DO NOTHING;`,
		`INSERT INTO notification_types (code, display_name, template, target_type)
		 VALUES ('CERTIFICATE_BATCH_QUEUED', 'Certificates Queued', '{count} certificates queued for issuance.', 'SELF')
		 ON CONFLICT (code) DO NOTHING;`,
		`INSERT INTO notification_types (code, display_name, template, target_type)
		 VALUES ('LAYOUT_SAVED', 'Layout Saved', 'Certificate template layout was saved.', 'SELF')
		 ON CONFLICT (code) DO NOTHING;`,
	}

	for _, sql := range seedSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to seed notification type: %v", err)
		}
	}

	log.Println("Success: Database migration completed via GORM.")
}
