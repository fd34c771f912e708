package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"members-backend/internal/app/dto"
	"members-backend/internal/app/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestBuildJobResponseFlagsToggle(t *testing.T) {
	row := repository.JobRow{AuditStageID: 100}
	row.ID = 7
	flags := []repository.AuditFlagView{
		{ItemID: 1, FlagID: 2, StageID: 100, ReasonName: "Missing documents", FileCount: 3},
	}

	// Флаги всегда участвуют в расчете статусов, но в выдачу
	// попадают только по запросу
	resp := buildJobResponse(row, flags, false)
	require.Nil(t, resp.Flags)
	require.Contains(t, resp.CalculatedStates, "under-review")

	resp = buildJobResponse(row, flags, true)
	require.Equal(t, flags, resp.Flags)
	require.Contains(t, resp.CalculatedStates, "under-review")
}

func TestApplyWorkTypesSetsTotal(t *testing.T) {
	var resp dto.JobResponse
	workTypes := []repository.WorkTypeView{
		{ID: 1, Name: "Loft conversion", ShortName: "LC"},
		{ID: 2, Name: "Extension", ShortName: "EX"},
	}

	applyWorkTypes(&resp, workTypes)
	require.Equal(t, workTypes, resp.WorkTypes)
	require.NotNil(t, resp.TotalWorkTypes)
	require.Equal(t, 2, *resp.TotalWorkTypes)

	applyWorkTypes(&resp, nil)
	require.Equal(t, 0, *resp.TotalWorkTypes)
}

func TestApplyAccountItemsTotalsAndPremiums(t *testing.T) {
	var resp dto.JobResponse
	items := []repository.AccountItemView{
		{ID: 1, Amount: 100, TaxRate: 20, AmountIncTax: 120},
		{ID: 2, Amount: 33.33, TaxRate: 17.5, AmountIncTax: 39.16},
	}

	applyAccountItems(&resp, items)
	require.Equal(t, items, resp.AccountItems)
	require.NotNil(t, resp.TotalAccountItems)
	require.Equal(t, 2, *resp.TotalAccountItems)
	require.NotNil(t, resp.PremiumAmount)
	require.Equal(t, 133.33, *resp.PremiumAmount)
	// Сумма с налогом складывается из построчных значений
	require.Equal(t, 159.16, *resp.PremiumAmountIncTax)
}

func TestApplyAccountItemsEmpty(t *testing.T) {
	var resp dto.JobResponse
	applyAccountItems(&resp, nil)
	require.Equal(t, 0, *resp.TotalAccountItems)
	require.Equal(t, 0.0, *resp.PremiumAmount)
	require.Equal(t, 0.0, *resp.PremiumAmountIncTax)
}

func TestJobListQueryBindsIncludes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	bind := func(rawQuery string) dto.JobListQuery {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/api/jobs?"+rawQuery, nil)

		var q dto.JobListQuery
		require.NoError(t, c.ShouldBindQuery(&q))
		return q
	}

	q := bind("include_audit_flags=true")
	require.True(t, q.IncludeFlags)
	require.False(t, q.IncludeHasPolicies)
	require.False(t, q.IncludeHasLetters)

	// Признаки наличия включаются независимо друг от друга
	q = bind("include_has_policies=true")
	require.True(t, q.IncludeHasPolicies)
	require.False(t, q.IncludeHasLetters)

	q = bind("include_has_letters=true")
	require.True(t, q.IncludeHasLetters)
	require.False(t, q.IncludeHasPolicies)
}
