package repository

import (
	"fmt"

	"members-backend/internal/app/ds"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func New(dsn string) (*Repository, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// Автоматическая миграция всех таблиц
	err = db.AutoMigrate(
		&ds.User{},
		&ds.Customer{},
		&ds.CustomerScheme{},
		&ds.Scheme{},
		&ds.Job{},
		&ds.JobState{},
		&ds.JobRevision{},
		&ds.AuditFlagReason{},
		&ds.AuditFlag{},
		&ds.AuditFlagItem{},
		&ds.UploadedFile{},
		&ds.Tax{},
		&ds.AccountCharge{},
		&ds.AccountInvoice{},
		&ds.AccountItem{},
		&ds.Policy{},
		&ds.JobLetter{},
		&ds.WorkType{},
		&ds.JobWorkType{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &Repository{
		db: db,
	}, nil
}
