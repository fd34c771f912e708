package main

import (
	"log"

	"members-backend/internal/app/ds"
	"members-backend/internal/app/dsn"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Загрузка переменных окружения из .env файла
	_ = godotenv.Load()

	dsnStr := dsn.FromEnv()
	if dsnStr == "" {
		log.Fatal("DSN string is empty. Check your .env file")
	}

	db, err := gorm.Open(postgres.Open(dsnStr), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Connected to database successfully")

	// Миграция всех моделей
	err = db.AutoMigrate(
		&ds.User{},
		&ds.Customer{},
		&ds.CustomerScheme{},
		&ds.Scheme{},
		&ds.Job{},
		&ds.JobState{},
		&ds.JobRevision{},
		&ds.JobLetter{},
		&ds.WorkType{},
		&ds.JobWorkType{},
		&ds.AuditFlagReason{},
		&ds.AuditFlag{},
		&ds.AuditFlagItem{},
		&ds.UploadedFile{},
		&ds.Tax{},
		&ds.AccountCharge{},
		&ds.AccountInvoice{},
		&ds.AccountItem{},
		&ds.Policy{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	log.Println("Database migration completed successfully")
}
