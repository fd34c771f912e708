package handler

import (
	"testing"
	"time"

	"members-backend/internal/app/repository"

	"github.com/stretchr/testify/require"
)

func TestCalculateJobStatesWithoutFlags(t *testing.T) {
	states, uw := calculateJobStates(false, 0, nil)
	require.False(t, uw)
	require.Equal(t, []string{"awaiting-sign-off"}, states)

	states, uw = calculateJobStates(true, 0, nil)
	require.False(t, uw)
	require.Equal(t, []string{"completed"}, states)
}

func TestCalculateJobStatesUnderReview(t *testing.T) {
	states, uw := calculateJobStates(true, 100, []repository.AuditFlagView{
		{StageID: 100, RequireUnderwritingReview: false},
	})
	require.False(t, uw)
	require.Equal(t, []string{"completed", "under-review"}, states)
}

func TestCalculateJobStatesUnderwritingReview(t *testing.T) {
	states, uw := calculateJobStates(false, 100, []repository.AuditFlagView{
		{StageID: 100, RequireUnderwritingReview: true},
	})
	require.True(t, uw)
	// При проверке андеррайтером базовая метка не выставляется
	require.NotContains(t, states, "completed")
	require.NotContains(t, states, "awaiting-sign-off")
	require.Equal(t, []string{"under-review", "underwriting-review"}, states)
}

func TestCalculateJobStatesResolvedFlagExempt(t *testing.T) {
	// Закрытый этап 300 не требует проверки андеррайтером
	states, uw := calculateJobStates(true, 0, []repository.AuditFlagView{
		{StageID: 300, RequireUnderwritingReview: true},
	})
	require.False(t, uw)
	require.Equal(t, []string{"completed"}, states)
}

func TestDeriveStatsStateCascade(t *testing.T) {
	paid := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		row  repository.JobStatsRow
		want string
	}{
		{
			name: "not completed",
			row:  repository.JobStatsRow{CustomersSchemeID: 101},
			want: "Awaiting Signoff",
		},
		{
			name: "completed awaiting payment",
			row:  repository.JobStatsRow{CustomersSchemeID: 101, StateCompleted: true},
			want: "Awaiting Payment",
		},
		{
			name: "paid",
			row:  repository.JobStatsRow{CustomersSchemeID: 101, StateCompleted: true, PaidDate: &paid},
			want: "Policy Issued",
		},
		{
			name: "void wins over everything",
			row:  repository.JobStatsRow{CustomersSchemeID: 101, StateCompleted: true, PaidDate: &paid, Void: true},
			want: "Cancelled",
		},
		{
			name: "paid but not completed",
			row:  repository.JobStatsRow{CustomersSchemeID: 101, PaidDate: &paid},
			want: "Policy Issued",
		},
		{
			// Метка заглушки всегда перекрывается следующими проверками
			name: "unassigned scheme still resolves",
			row:  repository.JobStatsRow{CustomersSchemeID: notYetAssignedSchemeID},
			want: "Awaiting Signoff",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, deriveStatsState(tt.row))
		})
	}
}
