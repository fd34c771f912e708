package repository

import (
	"errors"
	"fmt"
	"time"

	"members-backend/internal/app/ds"

	"gorm.io/gorm"
)

// Методы для работы с работами (jobs)

// JobRow - строка работы вместе с тремя вычисляемыми сигналами.
// Сигналы нигде не хранятся и пересчитываются при каждой выборке.
type JobRow struct {
	ds.Job          `gorm:"embedded"`
	RevisionPending bool `gorm:"column:revision_pending"`
	StateCompleted  bool `gorm:"column:state_completed"`
	AuditStageID    int  `gorm:"column:audit_stage_id"`
}

// JobStatsRow - урезанная строка для сводного отчета
type JobStatsRow struct {
	ID                uint       `gorm:"column:id"`
	CustomersSchemeID uint       `gorm:"column:customers_scheme_id"`
	Void              bool       `gorm:"column:void"`
	StateCompleted    bool       `gorm:"column:state_completed"`
	PaidDate          *time.Time `gorm:"column:job_paid_date"`
}

// Подзапросы вычисляемых сигналов. audit_stage_id суммирует этапы всех
// подходящих флагов - так делает исходная система, редукция сохранена как есть.
var jobDerivedSelects = fmt.Sprintf(`jobs.*,
EXISTS(SELECT 1 FROM job_revisions r WHERE r.job_id = jobs.id AND r.void = false AND r.applied = false) AS revision_pending,
EXISTS(SELECT 1 FROM job_states s WHERE s.job_id = jobs.id AND s.void = false AND s.resolved IS NOT NULL AND s.state_id = %d) AS state_completed,
(SELECT COALESCE(SUM(f.stage_id), 0) FROM audit_flag_items i JOIN audit_flags f ON f.id = i.audit_flag_id
 WHERE i.job_id = jobs.id AND f.void = false AND f.stage_id IN (100, 101, 200) AND f.reason_id IN (300, 400, 603)) AS audit_stage_id`,
	ds.StateIDCompleted)

// Условие области доступа: работа видна, если ее схема или родительская
// схема входит в разрешенный набор. Пустой набор не находит ничего.
const schemeScopeCondition = "jobs.customers_scheme_id IN ? OR jobs.parent_customers_scheme_id IN ?"

// GetJobByID - точечная выборка с учетом области доступа.
// Возвращает (nil, nil), если работы нет или она вне области доступа.
func (r *Repository) GetJobByID(jobID uint, schemeIDs []uint) (*JobRow, error) {
	var row JobRow
	err := r.db.Model(&ds.Job{}).
		Select(jobDerivedSelects).
		Where("jobs.id = ?", jobID).
		Where(schemeScopeCondition, schemeIDs, schemeIDs).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

// GetJobs - выборка по предикату, сортировка по id по убыванию.
// Материализуется весь отфильтрованный набор: вызывающая сторона сама
// режет страницу и считает total_records по полному набору.
func (r *Repository) GetJobs(pred JobPredicate, schemeIDs []uint) ([]JobRow, error) {
	query := r.db.Model(&ds.Job{}).
		Select(jobDerivedSelects).
		Where(schemeScopeCondition, schemeIDs, schemeIDs).
		Order("jobs.id DESC")

	for _, cond := range pred.Where {
		query = query.Where(cond.Query, cond.Args...)
	}

	var rows []JobRow
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	if len(pred.StateCompleted) == 0 {
		return rows, nil
	}

	// Фильтр по вычисляемому сигналу применяем после выборки
	filtered := make([]JobRow, 0, len(rows))
	for _, row := range rows {
		if pred.matchesState(row.StateCompleted) {
			filtered = append(filtered, row)
		}
	}
	return filtered, nil
}

// GetJobStats возвращает строки для сводного отчета: признак завершения
// и дату оплаты через цепочку счет -> начисление -> строка счета подрядчика.
func (r *Repository) GetJobStats(schemeIDs []uint) ([]JobStatsRow, error) {
	selects := fmt.Sprintf(`jobs.id, jobs.customers_scheme_id, jobs.void,
EXISTS(SELECT 1 FROM job_states s WHERE s.job_id = jobs.id AND s.void = false AND s.resolved IS NOT NULL AND s.state_id = %d) AS state_completed,
(SELECT inv.created FROM account_invoices inv
 LEFT JOIN account_charges ch ON inv.account_charge_id = ch.id
 LEFT JOIN account_items ai ON ai.account_charge_id = ch.id
 WHERE ai.account_relation_type_id = ?
   AND ai.relation_id = jobs.id
   AND ai.void = false AND ai.cancelled = false AND ai.refunded = false
   AND ch.bounced = false AND ch.void = false
   AND jobs.void = false
 LIMIT 1) AS job_paid_date`, ds.StateIDCompleted)

	var rows []JobStatsRow
	err := r.db.Model(&ds.Job{}).
		Select(selects, ds.AccountRelationJobsContractor).
		Where(schemeScopeCondition, schemeIDs, schemeIDs).
		Order("jobs.id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
