package ds

import "time"

// Код состояния "оплачено/завершено" в журнале состояний
const StateIDCompleted = 40000

// 2. Журнал смен состояний работы
type JobState struct {
	ID       uint       `gorm:"primaryKey"`
	JobID    uint       `gorm:"not null;index"`
	StateID  int        `gorm:"type:int;not null"`
	Resolved *time.Time `gorm:"default:null"` // Момент фиксации состояния
	Void     bool       `gorm:"default:false;not null"`
	Created  time.Time  `gorm:"not null"`

	Job Job `gorm:"foreignKey:JobID"`
}
