package ds

import "time"

// Тип связи строки счета с работой подрядчика
const AccountRelationJobsContractor = "jobs_contractor"

// 8. Налоговая ставка
type Tax struct {
	ID    uint    `gorm:"primaryKey"`
	Name  string  `gorm:"type:varchar(50)"`
	Value float64 `gorm:"type:decimal(5,2);not null"` // Процент
}

// 9. Начисление (группа строк счета)
type AccountCharge struct {
	ID      uint `gorm:"primaryKey"`
	Bounced bool `gorm:"default:false;not null"`
	Void    bool `gorm:"default:false;not null"`
}

// 10. Выставленный счет по начислению; created трактуется как дата оплаты
type AccountInvoice struct {
	ID              uint      `gorm:"primaryKey"`
	AccountChargeID uint      `gorm:"not null;index"`
	Created         time.Time `gorm:"not null"`

	Charge AccountCharge `gorm:"foreignKey:AccountChargeID"`
}

// 11. Финансовая строка, связанная с работой через типизированную связь
type AccountItem struct {
	ID                    uint    `gorm:"primaryKey"`
	AccountFeeTypeID      *uint   `gorm:"index"`
	Amount                float64 `gorm:"type:decimal(12,2);not null"`
	PolicyTypeID          *uint
	AmountPayInsurer      float64 `gorm:"type:decimal(12,2)"`
	TaxID                 uint    `gorm:"not null;index"`
	AccountPaymentTypeID  *uint
	AccountRelationTypeID string    `gorm:"type:varchar(50);not null;index"` // jobs_contractor и т.п.
	RelationID            uint      `gorm:"not null;index"`
	AccountChargeID       *uint     `gorm:"index"`
	Void                  bool      `gorm:"default:false;not null"`
	Refunded              bool      `gorm:"default:false;not null"`
	Cancelled             bool      `gorm:"default:false;not null"`
	Created               time.Time `gorm:"not null"`

	Tax Tax `gorm:"foreignKey:TaxID"`
}
