package ds

import "time"

// 3. Предложенные правки работы (создаются внешним контуром записи)
type JobRevision struct {
	ID      uint      `gorm:"primaryKey"`
	JobID   uint      `gorm:"not null;index"`
	Applied bool      `gorm:"default:false;not null"` // Правка уже применена
	Void    bool      `gorm:"default:false;not null"`
	Created time.Time `gorm:"not null"`

	Job Job `gorm:"foreignKey:JobID"`
}
