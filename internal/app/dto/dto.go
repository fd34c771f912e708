package dto

import (
	"time"

	"members-backend/internal/app/repository"
)

// ============ Общие структуры ============

type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type SuccessResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ============ Работы ============

// JobListQuery - критерии query-строки списка работ.
// Все фильтры необязательны и складываются по И.
type JobListQuery struct {
	JobID              *uint   `form:"job_id"`
	Reference          *string `form:"job_reference"`
	ContactName        *string `form:"job_last_name_or_property_owner"`
	Status             *string `form:"job_status"`
	SchemeID           *uint   `form:"customers_scheme_id"`
	Email              *string `form:"email_address"`
	Phone              *string `form:"telephone_no"`
	Address            *string `form:"address"`
	Postcode           *string `form:"postcode"`
	StateCompleted     *bool   `form:"state_completed"`
	IncludePolicies    bool    `form:"include_policies"`
	IncludeLetters     bool    `form:"include_letters"`
	IncludeWorkTypes   bool    `form:"include_work_types"`
	IncludeFinances    bool    `form:"include_finances"`
	IncludeFlags       bool    `form:"include_audit_flags"`
	IncludeHasPolicies bool    `form:"include_has_policies"`
	IncludeHasLetters  bool    `form:"include_has_letters"`
	Offset             *int    `form:"offset" binding:"omitempty,gte=0"`
	Limit              *int    `form:"limit" binding:"omitempty,gte=0"`
}

type JobDetailsQuery struct {
	IncludePolicies  bool `form:"include_policies"`
	IncludeLetters   bool `form:"include_letters"`
	IncludeWorkTypes bool `form:"include_work_types"`
	IncludeFinances  bool `form:"include_finances"`
	IncludeFlags     bool `form:"include_audit_flags"`
}

type JobResponse struct {
	ID                       uint       `json:"id"`
	Reference                string     `json:"reference"`
	TitleID                  *uint      `json:"title_id"`
	FirstName                string     `json:"first_name"`
	LastNameOrPropertyOwner  string     `json:"last_name_or_property_owner"`
	EmailAddress             string     `json:"email_address"`
	TelephoneNo              string     `json:"telephone_no"`
	ContractValue            float64    `json:"contract_value"`
	Term                     int        `json:"term"`
	DepositCover             bool       `json:"deposit_cover"`
	DepositPaid              bool       `json:"deposit_paid"`
	DepositAmount            float64    `json:"deposit_amount"`
	Completion               *time.Time `json:"completion"`
	CompletionEstimated      *time.Time `json:"completion_estimated"`
	Address1                 string     `json:"address_1"`
	Address2                 string     `json:"address_2"`
	Address3                 string     `json:"address_3"`
	AddressPostcode          string     `json:"address_postcode"`
	InstallAddressDiffers    bool       `json:"install_address_differs"`
	InstallAddress1          string     `json:"install_address_1"`
	InstallAddress2          string     `json:"install_address_2"`
	InstallAddress3          string     `json:"install_address_3"`
	InstallAddressPostcode   string     `json:"install_address_postcode"`
	CustomersSchemeID        uint       `json:"customers_scheme_id"`
	ParentCustomersSchemeID  *uint      `json:"parent_customers_scheme_id"`
	RateID                   *uint      `json:"rate_id"`
	CompetentPersonsSchemeID *uint      `json:"competent_persons_scheme_id"`
	Void                     bool       `json:"void"`
	Created                  time.Time  `json:"created"`
	Modified                 time.Time  `json:"modified"`

	// Вычисляемые сигналы
	RevisionPending bool `json:"revision_pending"`
	StateCompleted  bool `json:"state_completed"`
	AuditStageID    int  `json:"audit_stage_id"`

	CalculatedStates   []string                   `json:"calculated_states"`
	UnderwritingReview bool                       `json:"underwriting_review"`
	Flags              []repository.AuditFlagView `json:"flags,omitempty"`

	// Дочерние коллекции, только по запросу; каждая идет вместе со своим количеством
	Policies            []repository.PolicyView      `json:"policies,omitempty"`
	TotalPolicies       *int                         `json:"total_policies,omitempty"`
	Letters             []repository.LetterView      `json:"letters,omitempty"`
	TotalLetters        *int                         `json:"total_letters,omitempty"`
	WorkTypes           []repository.WorkTypeView    `json:"work_types,omitempty"`
	TotalWorkTypes      *int                         `json:"total_work_types,omitempty"`
	AccountItems        []repository.AccountItemView `json:"account_items,omitempty"`
	TotalAccountItems   *int                         `json:"total_account_items,omitempty"`
	PremiumAmount       *float64                     `json:"premium_amount,omitempty"`
	PremiumAmountIncTax *float64                     `json:"premium_amount_inc_tax,omitempty"`
	HasPolicies         *bool                        `json:"has_policies,omitempty"`
	HasLetters          *bool                        `json:"has_letters,omitempty"`
}

type JobListResponse struct {
	TotalRecords    int           `json:"total_records"`
	ReturnedRecords int           `json:"returned_records"`
	Limit           int           `json:"limit"`
	Results         []JobResponse `json:"results"`
}

type JobStatsEntry struct {
	ID       uint       `json:"id"`
	PaidDate *time.Time `json:"paid_date"`
	State    string     `json:"state"`
}

type JobStatsResponse struct {
	TotalRecords int             `json:"total_records"`
	Jobs         []JobStatsEntry `json:"jobs"`
}

// ============ Аутентификация ============

type RegisterRequest struct {
	Login      string `json:"login" binding:"required"`
	Password   string `json:"password" binding:"required"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	CustomerID uint   `json:"customer_id" binding:"required"`
}

type LoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	ExpiresIn   int64  `json:"expires_in"`
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type UserResponse struct {
	ID         uint   `json:"id"`
	Login      string `json:"login"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Role       int    `json:"role"`
	CustomerID uint   `json:"customer_id"`
}
