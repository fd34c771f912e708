package main

import (
	"fmt"
	"log"

	"members-backend/internal/app/ds"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	dsn := "host=localhost user=postgres password=password dbname=members_db port=5432 sslmode=disable TimeZone=Europe/London"
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	var jobs []ds.Job
	err = db.Order("id DESC").Limit(20).Find(&jobs).Error
	if err != nil {
		log.Fatal("Failed to get jobs:", err)
	}

	fmt.Println("Jobs in database:")
	for _, job := range jobs {
		fmt.Printf("ID: %d, Reference: %s, Scheme: %d, Void: %t\n",
			job.ID, job.Reference, job.CustomersSchemeID, job.Void)
	}
}
