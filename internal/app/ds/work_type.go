package ds

// 15. Справочник видов работ
type WorkType struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"type:varchar(100);not null"`
	ShortName string `gorm:"type:varchar(20)"`
	Void      bool   `gorm:"default:false;not null"`
}

// 16. Таблица многие-ко-многим (работы-виды работ)
type JobWorkType struct {
	ID         uint `gorm:"primaryKey"`
	JobID      uint `gorm:"not null;index;uniqueIndex:idx_job_work_type"`
	WorkTypeID uint `gorm:"not null;index;uniqueIndex:idx_job_work_type"`

	Job      Job      `gorm:"foreignKey:JobID"`
	WorkType WorkType `gorm:"foreignKey:WorkTypeID"`
}
