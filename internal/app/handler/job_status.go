package handler

import (
	"members-backend/internal/app/ds"
	"members-backend/internal/app/repository"
)

// Метки статусов для списка и деталей работы
const (
	stateCompletedLabel          = "completed"
	stateAwaitingSignOffLabel    = "awaiting-sign-off"
	stateUnderReviewLabel        = "under-review"
	stateUnderwritingReviewLabel = "underwriting-review"
)

// Метки статусов для сводки
const (
	statsNotYetAssigned  = "Not Yet Assigned"
	statsAwaitingSignoff = "Awaiting Signoff"
	statsAwaitingPayment = "Awaiting Payment"
	statsPolicyIssued    = "Policy Issued"
	statsCancelled       = "Cancelled"
)

// Служебная схема-заглушка "работа еще не распределена"
const notYetAssignedSchemeID = 17822

// underwritingReviewRequired - хотя бы один нерешенный флаг требует проверки андеррайтером
func underwritingReviewRequired(flags []repository.AuditFlagView) bool {
	for _, flag := range flags {
		if flag.RequireUnderwritingReview && flag.StageID != ds.AuditStageResolved {
			return true
		}
	}
	return false
}

// calculateJobStates - аддитивный набор состояний работы.
// Возвращает список меток и признак проверки андеррайтером.
func calculateJobStates(stateCompleted bool, auditStageID int, flags []repository.AuditFlagView) ([]string, bool) {
	underwritingReview := underwritingReviewRequired(flags)

	states := []string{}
	if !underwritingReview {
		if stateCompleted {
			states = append(states, stateCompletedLabel)
		} else {
			states = append(states, stateAwaitingSignOffLabel)
		}
	}

	if auditStageID != 0 {
		states = append(states, stateUnderReviewLabel)
	}

	if underwritingReview {
		states = append(states, stateUnderwritingReviewLabel)
	}

	return states, underwritingReview
}

// deriveStatsState - единственная метка для сводки.
// Порядок проверок значим: побеждает последнее совпавшее условие.
func deriveStatsState(row repository.JobStatsRow) string {
	state := ""

	if row.CustomersSchemeID == notYetAssignedSchemeID {
		state = statsNotYetAssigned
	}
	if !row.StateCompleted {
		state = statsAwaitingSignoff
	}
	if row.StateCompleted {
		state = statsAwaitingPayment
	}
	if row.PaidDate != nil {
		state = statsPolicyIssued
	}
	if row.Void {
		state = statsCancelled
	}

	return state
}
