package ds

// 19. Таблица пользователей API; каждый пользователь принадлежит заказчику
type User struct {
	ID         uint   `gorm:"primaryKey"`
	Login      string `gorm:"type:varchar(50);unique;not null"`
	Password   string `gorm:"type:varchar(255);not null"`
	Role       int    `gorm:"type:int;default:0;not null"`
	Email      string `gorm:"type:varchar(100)"`
	FullName   string `gorm:"type:varchar(100)"`
	CustomerID uint   `gorm:"not null;index"`

	Customer Customer `gorm:"foreignKey:CustomerID"`
}
