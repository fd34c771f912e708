package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func uintPtr(v uint) *uint    { return &v }
func strPtr(v string) *string { return &v }
func boolPtr(v bool) *bool    { return &v }

var testNow = time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)

func TestCompileEmptyFilter(t *testing.T) {
	pred, err := JobFilter{}.Compile(testNow)
	require.NoError(t, err)
	require.Empty(t, pred.Where)
	require.Empty(t, pred.StateCompleted)
}

func TestCompileExactConditions(t *testing.T) {
	filter := JobFilter{
		JobID:       uintPtr(42),
		Reference:   strPtr("JOB-42"),
		ContactName: strPtr("Smith"),
		SchemeID:    uintPtr(7),
		Email:       strPtr("smith@example.com"),
		Phone:       strPtr("0123456789"),
	}
	pred, err := filter.Compile(testNow)
	require.NoError(t, err)
	require.Len(t, pred.Where, 6)

	require.Equal(t, "jobs.id = ?", pred.Where[0].Query)
	require.Equal(t, []interface{}{uint(42)}, pred.Where[0].Args)
	require.Equal(t, "jobs.reference = ?", pred.Where[1].Query)
	require.Equal(t, "jobs.last_name_or_property_owner = ?", pred.Where[2].Query)
	require.Equal(t, "jobs.customers_scheme_id = ?", pred.Where[3].Query)
	require.Equal(t, "jobs.email_address = ?", pred.Where[4].Query)
	require.Equal(t, "jobs.telephone_no = ?", pred.Where[5].Query)
}

func TestCompileAddressSearchesSixColumns(t *testing.T) {
	pred, err := JobFilter{Address: strPtr("High Street")}.Compile(testNow)
	require.NoError(t, err)
	require.Len(t, pred.Where, 1)
	require.Len(t, pred.Where[0].Args, 6)
	for _, arg := range pred.Where[0].Args {
		require.Equal(t, "%High Street%", arg)
	}
}

func TestCompilePostcodeStripsSpaces(t *testing.T) {
	pred, err := JobFilter{Postcode: strPtr("AB1 2CD")}.Compile(testNow)
	require.NoError(t, err)
	require.Len(t, pred.Where, 1)
	// Обе колонки индекса, как введено и со склеенными пробелами
	require.Equal(t, []interface{}{"%AB1 2CD%", "%AB12CD%", "%AB1 2CD%", "%AB12CD%"}, pred.Where[0].Args)
}

func TestCompileStatus(t *testing.T) {
	t.Run("awaiting sign-off", func(t *testing.T) {
		pred, err := JobFilter{Status: strPtr(JobStatusAwaitingSignOff)}.Compile(testNow)
		require.NoError(t, err)
		require.Empty(t, pred.Where)
		require.Equal(t, []bool{false}, pred.StateCompleted)
	})

	t.Run("completed", func(t *testing.T) {
		pred, err := JobFilter{Status: strPtr(JobStatusCompleted)}.Compile(testNow)
		require.NoError(t, err)
		require.Equal(t, []bool{true}, pred.StateCompleted)
	})

	t.Run("post est overdue", func(t *testing.T) {
		pred, err := JobFilter{Status: strPtr(JobStatusPostEstOverdue)}.Compile(testNow)
		require.NoError(t, err)
		require.Equal(t, []bool{false}, pred.StateCompleted)
		require.Len(t, pred.Where, 1)
		require.Contains(t, pred.Where[0].Query, "completion_estimated")
		require.Equal(t, []interface{}{"2024-06-15"}, pred.Where[0].Args)
	})

	t.Run("unknown status", func(t *testing.T) {
		_, err := JobFilter{Status: strPtr("Nonsense")}.Compile(testNow)
		require.ErrorIs(t, err, ErrUnknownJobStatus)
	})
}

func TestCompileStateCompletedExplicitFalse(t *testing.T) {
	// Явный false отличается от отсутствия фильтра
	pred, err := JobFilter{StateCompleted: boolPtr(false)}.Compile(testNow)
	require.NoError(t, err)
	require.Equal(t, []bool{false}, pred.StateCompleted)

	pred, err = JobFilter{}.Compile(testNow)
	require.NoError(t, err)
	require.Empty(t, pred.StateCompleted)
}

func TestPredicateMatchesState(t *testing.T) {
	none := JobPredicate{}
	require.True(t, none.matchesState(true))
	require.True(t, none.matchesState(false))

	completed := JobPredicate{StateCompleted: []bool{true}}
	require.True(t, completed.matchesState(true))
	require.False(t, completed.matchesState(false))

	// Противоречивые условия не находят ничего
	contradiction := JobPredicate{StateCompleted: []bool{true, false}}
	require.False(t, contradiction.matchesState(true))
	require.False(t, contradiction.matchesState(false))
}

func TestCompileCombinesCriteria(t *testing.T) {
	filter := JobFilter{
		Reference:      strPtr("JOB-1"),
		Postcode:       strPtr("AB1"),
		Status:         strPtr(JobStatusCompleted),
		StateCompleted: boolPtr(true),
	}
	pred, err := filter.Compile(testNow)
	require.NoError(t, err)
	require.Len(t, pred.Where, 2)
	require.Equal(t, []bool{true, true}, pred.StateCompleted)
	require.True(t, pred.matchesState(true))
}
