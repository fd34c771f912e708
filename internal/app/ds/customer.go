package ds

// 17. Заказчик (организация-участник)
type Customer struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"type:varchar(100);not null"`
}

// 18. Привязка заказчика к схеме; дочерние привязки наследуют доступ родителя
type CustomerScheme struct {
	ID                     uint  `gorm:"primaryKey"`
	CustomerID             uint  `gorm:"not null;index"`
	SchemeID               uint  `gorm:"not null;index"`
	ParentCustomerSchemeID *uint `gorm:"index"`
	Active                 bool  `gorm:"default:true;not null"`
	Void                   bool  `gorm:"default:false;not null"`

	Customer Customer `gorm:"foreignKey:CustomerID"`
	Scheme   Scheme   `gorm:"foreignKey:SchemeID"`
}
