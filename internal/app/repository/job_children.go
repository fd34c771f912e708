package repository

import (
	"time"

	"members-backend/internal/app/ds"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Методы для дочерних коллекций работы (полисы, письма, виды работ, финансы)

type PolicyView struct {
	ID            uint      `gorm:"column:id" json:"id"`
	PolicyNumber  string    `gorm:"column:policy_number" json:"policy_number"`
	SchemeID      uint      `gorm:"column:scheme_id" json:"scheme_id"`
	SchemeName    string    `gorm:"column:scheme_name" json:"scheme_name"`
	SchemePrefix  string    `gorm:"column:scheme_prefix" json:"scheme_prefix"`
	PolicyTypeID  *uint     `gorm:"column:policy_type_id" json:"policy_type_id"`
	AccountItemID uint      `gorm:"column:account_item_id" json:"account_item_id"`
	Created       time.Time `gorm:"column:created" json:"created"`
}

type LetterView struct {
	ID                      uint      `gorm:"column:id" json:"id"`
	Name                    string    `gorm:"column:name" json:"name"`
	Created                 time.Time `gorm:"column:created" json:"created"`
	LastNameOrPropertyOwner string    `gorm:"column:last_name_or_property_owner" json:"last_name_or_property_owner"`
	Address1                string    `gorm:"column:address_1" json:"address_1"`
	AddressPostcode         string    `gorm:"column:address_postcode" json:"address_postcode"`
	InstallAddress1         string    `gorm:"column:install_address_1" json:"install_address_1"`
	InstallAddressPostcode  string    `gorm:"column:install_address_postcode" json:"install_address_postcode"`
}

type WorkTypeView struct {
	ID        uint   `gorm:"column:id" json:"id"`
	Name      string `gorm:"column:name" json:"name"`
	ShortName string `gorm:"column:short_name" json:"short_name"`
}

type AccountItemView struct {
	ID                    uint      `gorm:"column:id" json:"id"`
	AccountFeeTypeID      *uint     `gorm:"column:account_fee_type_id" json:"account_fee_type_id"`
	Amount                float64   `gorm:"column:amount" json:"amount"`
	PolicyTypeID          *uint     `gorm:"column:policy_type_id" json:"policy_type_id"`
	AmountPayInsurer      float64   `gorm:"column:amount_pay_insurer" json:"amount_pay_insurer"`
	TaxID                 uint      `gorm:"column:tax_id" json:"tax_id"`
	TaxRate               float64   `gorm:"column:tax_rate" json:"tax_rate"`
	AccountPaymentTypeID  *uint     `gorm:"column:account_payment_type_id" json:"account_payment_type_id"`
	AccountRelationTypeID string    `gorm:"column:account_relation_type_id" json:"account_relation_type_id"`
	RelationID            uint      `gorm:"column:relation_id" json:"relation_id"`
	AccountChargeID       *uint     `gorm:"column:account_charge_id" json:"account_charge_id"`
	Created               time.Time `gorm:"column:created" json:"created"`
	// Считается в коде по ставке налога, в БД не хранится
	AmountIncTax float64 `gorm:"-" json:"amount_inc_tax"`
}

// GetJobPolicies - непогашенные полисы работы через строки счета, новые первыми
func (r *Repository) GetJobPolicies(jobID uint) ([]PolicyView, error) {
	var policies []PolicyView
	err := r.policyQuery(jobID).
		Select(`policies.id AS id, policies.policy_id AS policy_number, policies.scheme_id AS scheme_id,
schemes.name AS scheme_name, schemes.prefix AS scheme_prefix,
policies.policy_type_id AS policy_type_id, policies.account_item_id AS account_item_id, policies.created AS created`).
		Order("policies.created DESC").
		Find(&policies).Error
	if err != nil {
		return nil, err
	}
	return policies, nil
}

// HasPolicies - дешевая проверка наличия без выборки коллекции
func (r *Repository) HasPolicies(jobID uint) (bool, error) {
	var count int64
	err := r.policyQuery(jobID).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *Repository) policyQuery(jobID uint) *gorm.DB {
	return r.db.Model(&ds.Policy{}).
		Joins("LEFT JOIN schemes ON schemes.id = policies.scheme_id").
		Joins("LEFT JOIN account_items ON account_items.id = policies.account_item_id").
		Joins("LEFT JOIN jobs ON jobs.id = account_items.relation_id").
		Where("jobs.id = ?", jobID).
		Where("policies.void = ?", false)
}

// GetJobLetters - непогашенные письма работы вместе с адресными полями
func (r *Repository) GetJobLetters(jobID uint) ([]LetterView, error) {
	var letters []LetterView
	err := r.letterQuery(jobID).
		Select(`job_letters.id AS id, job_letters.name AS name, job_letters.created AS created,
jobs.last_name_or_property_owner, jobs.address_1, jobs.address_postcode,
jobs.install_address_1, jobs.install_address_postcode`).
		Find(&letters).Error
	if err != nil {
		return nil, err
	}
	return letters, nil
}

func (r *Repository) HasLetters(jobID uint) (bool, error) {
	var count int64
	err := r.letterQuery(jobID).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *Repository) letterQuery(jobID uint) *gorm.DB {
	return r.db.Model(&ds.JobLetter{}).
		Joins("LEFT JOIN jobs ON jobs.id = job_letters.job_id").
		Where("jobs.id = ?", jobID).
		Where("job_letters.void = ?", false)
}

// GetJobWorkTypes - виды работ, привязанные к работе
func (r *Repository) GetJobWorkTypes(jobID uint) ([]WorkTypeView, error) {
	var workTypes []WorkTypeView
	err := r.db.Model(&ds.JobWorkType{}).
		Joins("LEFT JOIN work_types ON work_types.id = job_work_types.work_type_id").
		Where("job_work_types.job_id = ?", jobID).
		Where("work_types.void = ?", false).
		Select("work_types.id AS id, work_types.name AS name, work_types.short_name AS short_name").
		Find(&workTypes).Error
	if err != nil {
		return nil, err
	}
	return workTypes, nil
}

// GetJobAccountItems - действующие строки счета подрядчика по работе.
// Сумма с налогом считается по каждой строке отдельно по ее ставке.
func (r *Repository) GetJobAccountItems(jobID uint) ([]AccountItemView, error) {
	var items []AccountItemView
	err := r.db.Model(&ds.AccountItem{}).
		Where("account_items.relation_id = ?", jobID).
		Where("account_items.account_relation_type_id = ?", ds.AccountRelationJobsContractor).
		Where("account_items.void = ? AND account_items.cancelled = ? AND account_items.refunded = ?", false, false, false).
		Select(`account_items.*, (SELECT value FROM taxes WHERE taxes.id = account_items.tax_id) AS tax_rate`).
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	for i := range items {
		items[i].AmountIncTax = AmountIncTax(items[i].Amount, items[i].TaxRate)
	}
	return items, nil
}

// AmountIncTax = round(amount + amount * rate / 100, 2).
// Округление всегда по строке, итоги суммируются из уже округленных значений.
func AmountIncTax(amount, taxRate float64) float64 {
	a := decimal.NewFromFloat(amount)
	incTax := a.Add(a.Mul(decimal.NewFromFloat(taxRate)).Div(decimal.NewFromInt(100)))
	return incTax.Round(2).InexactFloat64()
}
