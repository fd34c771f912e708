package ds

import "time"

// 1. Таблица работ (строительные заказы участников схем)
type Job struct {
	ID        uint   `gorm:"primaryKey"`
	Reference string `gorm:"type:varchar(50);index"`

	// Контактные данные владельца
	TitleID                 *uint
	FirstName               string `gorm:"type:varchar(100)"`
	LastNameOrPropertyOwner string `gorm:"type:varchar(100);index"`
	EmailAddress            string `gorm:"type:varchar(100)"`
	TelephoneNo             string `gorm:"type:varchar(50)"`

	// Договор
	ContractValue float64 `gorm:"type:decimal(12,2)"`
	Term          int     `gorm:"type:int;default:0"`
	DepositCover  bool    `gorm:"default:false;not null"`
	DepositPaid   bool    `gorm:"default:false;not null"`
	DepositAmount float64 `gorm:"type:decimal(12,2)"`

	Completion          *time.Time `gorm:"default:null"` // Фактическая дата завершения
	CompletionEstimated *time.Time `gorm:"default:null"` // Плановая дата завершения

	// Почтовый адрес
	Address1        string `gorm:"type:varchar(100)"`
	Address2        string `gorm:"type:varchar(100)"`
	Address3        string `gorm:"type:varchar(100)"`
	AddressPostcode string `gorm:"type:varchar(20)"`

	// Адрес объекта (если отличается)
	InstallAddressDiffers  bool   `gorm:"default:false;not null"`
	InstallAddress1        string `gorm:"type:varchar(100)"`
	InstallAddress2        string `gorm:"type:varchar(100)"`
	InstallAddress3        string `gorm:"type:varchar(100)"`
	InstallAddressPostcode string `gorm:"type:varchar(20)"`

	// Привязка к схеме заказчика (и родительской схеме)
	CustomersSchemeID       uint  `gorm:"not null;index"`
	ParentCustomersSchemeID *uint `gorm:"index"`

	RateID                   *uint
	CompetentPersonsSchemeID *uint

	Void bool `gorm:"default:false;not null"`

	Created  time.Time `gorm:"not null"`
	Modified time.Time
}
