package repository

import (
	"errors"
	"strings"
	"time"
)

// Именованные статусы для фильтра списка работ
const (
	JobStatusAwaitingSignOff = "Awaiting Sign-off"
	JobStatusCompleted       = "Completed"
	JobStatusPostEstOverdue  = "Awaiting Sign-off and Post Est Completed"
)

var ErrUnknownJobStatus = errors.New("неизвестный статус работы в фильтре")

// JobFilter - набор необязательных критериев поиска работ.
// Незаполненное поле не накладывает никаких ограничений.
type JobFilter struct {
	JobID       *uint
	Reference   *string
	ContactName *string // last_name_or_property_owner
	Status      *string
	SchemeID    *uint
	Email       *string
	Phone       *string
	Address     *string
	Postcode    *string
	// Указатель, чтобы явный false отличался от отсутствия фильтра
	StateCompleted *bool
}

// Condition - одно SQL-условие с аргументами
type Condition struct {
	Query string
	Args  []interface{}
}

// JobPredicate - скомпилированный фильтр. Where уходит в SQL;
// StateCompleted проверяется по вычисляемому сигналу уже после выборки
// (в исходной системе это был HAVING по алиасу). Несколько условий
// соединяются по И, противоречие дает пустой результат.
type JobPredicate struct {
	Where          []Condition
	StateCompleted []bool
}

// Compile собирает критерии в предикат; now нужен для статуса
// с просроченной плановой датой (сравнение с точностью до дня).
func (f JobFilter) Compile(now time.Time) (JobPredicate, error) {
	var pred JobPredicate

	if f.JobID != nil {
		pred.Where = append(pred.Where, Condition{"jobs.id = ?", []interface{}{*f.JobID}})
	}
	if f.Reference != nil {
		pred.Where = append(pred.Where, Condition{"jobs.reference = ?", []interface{}{*f.Reference}})
	}
	if f.ContactName != nil {
		pred.Where = append(pred.Where, Condition{"jobs.last_name_or_property_owner = ?", []interface{}{*f.ContactName}})
	}
	if f.SchemeID != nil {
		pred.Where = append(pred.Where, Condition{"jobs.customers_scheme_id = ?", []interface{}{*f.SchemeID}})
	}
	if f.Email != nil {
		pred.Where = append(pred.Where, Condition{"jobs.email_address = ?", []interface{}{*f.Email}})
	}
	if f.Phone != nil {
		pred.Where = append(pred.Where, Condition{"jobs.telephone_no = ?", []interface{}{*f.Phone}})
	}

	if f.Status != nil {
		switch *f.Status {
		case JobStatusAwaitingSignOff:
			pred.StateCompleted = append(pred.StateCompleted, false)
		case JobStatusCompleted:
			pred.StateCompleted = append(pred.StateCompleted, true)
		case JobStatusPostEstOverdue:
			pred.StateCompleted = append(pred.StateCompleted, false)
			pred.Where = append(pred.Where, Condition{
				"(date(jobs.completion_estimated) < ? OR jobs.completion_estimated IS NULL)",
				[]interface{}{now.UTC().Format("2006-01-02")},
			})
		default:
			return JobPredicate{}, ErrUnknownJobStatus
		}
	}

	if f.Address != nil {
		like := "%" + *f.Address + "%"
		pred.Where = append(pred.Where, Condition{
			"(jobs.address_1 ILIKE ? OR jobs.address_2 ILIKE ? OR jobs.address_3 ILIKE ?" +
				" OR jobs.install_address_1 ILIKE ? OR jobs.install_address_2 ILIKE ? OR jobs.install_address_3 ILIKE ?)",
			[]interface{}{like, like, like, like, like, like},
		})
	}

	if f.Postcode != nil {
		// Индекс пробуем и как введен, и со склеенными пробелами
		like := "%" + *f.Postcode + "%"
		likeStripped := "%" + strings.ReplaceAll(*f.Postcode, " ", "") + "%"
		pred.Where = append(pred.Where, Condition{
			"(jobs.address_postcode ILIKE ? OR jobs.address_postcode ILIKE ?" +
				" OR jobs.install_address_postcode ILIKE ? OR jobs.install_address_postcode ILIKE ?)",
			[]interface{}{like, likeStripped, like, likeStripped},
		})
	}

	if f.StateCompleted != nil {
		pred.StateCompleted = append(pred.StateCompleted, *f.StateCompleted)
	}

	return pred, nil
}

// matchesState проверяет вычисленный сигнал против всех условий предиката
func (p JobPredicate) matchesState(stateCompleted bool) bool {
	for _, want := range p.StateCompleted {
		if stateCompleted != want {
			return false
		}
	}
	return true
}
