package ds

import "time"

// 14. Письмо, сформированное по работе
type JobLetter struct {
	ID      uint      `gorm:"primaryKey"`
	JobID   uint      `gorm:"not null;index"`
	Name    string    `gorm:"type:varchar(100)"` // Название шаблона письма
	Void    bool      `gorm:"default:false;not null"`
	Created time.Time `gorm:"not null"`

	Job Job `gorm:"foreignKey:JobID"`
}
