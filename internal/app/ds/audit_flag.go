package ds

import "time"

// Этап 300 = проверка закрыта, такой флаг не требует андеррайтинга
const AuditStageResolved = 300

// 4. Причина выставления флага проверки
type AuditFlagReason struct {
	ID                        uint   `gorm:"primaryKey"`
	Name                      string `gorm:"type:varchar(100);not null"`
	RequireUnderwritingReview bool   `gorm:"default:false;not null"`
}

// 5. Флаг проверки (комплаенс)
type AuditFlag struct {
	ID       uint `gorm:"primaryKey"`
	StageID  int  `gorm:"type:int;not null"` // 100, 101, 200 - активные этапы, 300 - закрыт
	ReasonID uint `gorm:"not null;index"`
	Void     bool `gorm:"default:false;not null"`

	Reason AuditFlagReason `gorm:"foreignKey:ReasonID"`
}

// 6. Привязка флага проверки к работе
type AuditFlagItem struct {
	ID          uint `gorm:"primaryKey"`
	JobID       uint `gorm:"not null;index"`
	AuditFlagID uint `gorm:"not null;index"`

	Job  Job       `gorm:"foreignKey:JobID"`
	Flag AuditFlag `gorm:"foreignKey:AuditFlagID"`
}

// 7. Файлы, приложенные к флагу проверки
type UploadedFile struct {
	ID          uint      `gorm:"primaryKey"`
	AuditFlagID uint      `gorm:"not null;index"`
	Filename    string    `gorm:"type:varchar(255);not null"`
	Void        bool      `gorm:"default:false;not null"`
	Created     time.Time `gorm:"not null"`
}
