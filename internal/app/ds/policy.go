package ds

import "time"

// 12. Страховая схема
type Scheme struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"type:varchar(100);not null"`
	Prefix       string `gorm:"type:varchar(20)"`
	PolicyPrefix string `gorm:"type:varchar(20)"`
}

// 13. Страховой полис; к работе привязан через строку счета
type Policy struct {
	ID            uint   `gorm:"primaryKey"`
	PolicyNumber  string `gorm:"column:policy_id;type:varchar(50)"`
	SchemeID      uint   `gorm:"not null;index"`
	AccountItemID uint   `gorm:"not null;index"`
	PolicyTypeID  *uint
	Void          bool      `gorm:"default:false;not null"`
	Created       time.Time `gorm:"not null"`

	Scheme      Scheme      `gorm:"foreignKey:SchemeID"`
	AccountItem AccountItem `gorm:"foreignKey:AccountItemID"`
}
