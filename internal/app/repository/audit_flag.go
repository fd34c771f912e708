package repository

import (
	"members-backend/internal/app/ds"
)

// Методы для флагов проверки

// AuditFlagView - флаг проверки вместе с причиной для выдачи наружу
type AuditFlagView struct {
	ItemID                    uint   `gorm:"column:item_id" json:"item_id"`
	FlagID                    uint   `gorm:"column:flag_id" json:"flag_id"`
	StageID                   int    `gorm:"column:stage_id" json:"stage_id"`
	ReasonName                string `gorm:"column:reason_name" json:"reason_name"`
	RequireUnderwritingReview bool   `gorm:"column:require_underwriting_review" json:"require_underwriting_review"`
	FileCount                 int64  `gorm:"column:file_count" json:"file_count,omitempty"`
}

// GetJobAuditFlags возвращает непогашенные флаги работы с причинами.
// excludeResolved отбрасывает закрытый этап 300; withFileCount добавляет
// количество приложенных файлов по каждому флагу.
func (r *Repository) GetJobAuditFlags(jobID uint, excludeResolved, withFileCount bool) ([]AuditFlagView, error) {
	selects := `audit_flag_items.id AS item_id, f.id AS flag_id, f.stage_id AS stage_id,
reason.name AS reason_name, reason.require_underwriting_review AS require_underwriting_review`
	if withFileCount {
		selects += `, (SELECT count(*) FROM uploaded_files uf WHERE uf.audit_flag_id = f.id AND uf.void = false) AS file_count`
	}

	query := r.db.Model(&ds.AuditFlagItem{}).
		Joins("LEFT JOIN audit_flags f ON f.id = audit_flag_items.audit_flag_id").
		Joins("LEFT JOIN audit_flag_reasons reason ON reason.id = f.reason_id").
		Where("audit_flag_items.job_id = ?", jobID).
		Where("f.void = ?", false).
		Select(selects)

	if excludeResolved {
		query = query.Where("f.stage_id <> ?", ds.AuditStageResolved)
	}

	var flags []AuditFlagView
	if err := query.Find(&flags).Error; err != nil {
		return nil, err
	}
	return flags, nil
}

// GetAuditFlagFile возвращает приложенный файл, убедившись что он
// действительно привязан к флагу указанной работы
func (r *Repository) GetAuditFlagFile(jobID, fileID uint) (*ds.UploadedFile, error) {
	var file ds.UploadedFile
	err := r.db.Model(&ds.UploadedFile{}).
		Joins("JOIN audit_flag_items i ON i.audit_flag_id = uploaded_files.audit_flag_id").
		Where("uploaded_files.id = ? AND uploaded_files.void = ?", fileID, false).
		Where("i.job_id = ?", jobID).
		Select("uploaded_files.*").
		Take(&file).Error
	if err != nil {
		return nil, err
	}
	return &file, nil
}
