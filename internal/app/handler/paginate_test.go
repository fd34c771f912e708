package handler

import (
	"testing"

	"members-backend/internal/app/repository"

	"github.com/stretchr/testify/require"
)

func makeJobRows(n int) []repository.JobRow {
	rows := make([]repository.JobRow, n)
	for i := range rows {
		rows[i].ID = uint(n - i)
	}
	return rows
}

func TestPaginateJobs(t *testing.T) {
	tests := []struct {
		name         string
		total        int
		offset       int
		limit        int
		wantReturned int
	}{
		{"first page", 120, 0, 50, 50},
		{"middle page", 120, 50, 50, 50},
		{"last partial page", 120, 100, 50, 20},
		{"offset beyond set", 40, 50, 50, 0},
		{"offset at boundary", 40, 40, 50, 0},
		{"zero limit", 40, 0, 0, 0},
		{"empty set", 0, 0, 50, 0},
		{"limit larger than set", 7, 0, 50, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, total, returned := paginateJobs(makeJobRows(tt.total), tt.offset, tt.limit)
			// total_records всегда считается до среза
			require.Equal(t, tt.total, total)
			require.Equal(t, tt.wantReturned, returned)
			require.Len(t, page, tt.wantReturned)
		})
	}
}

func TestPaginateJobsKeepsOrder(t *testing.T) {
	rows := makeJobRows(10)
	page, _, _ := paginateJobs(rows, 3, 4)
	require.Len(t, page, 4)
	require.Equal(t, rows[3].ID, page[0].ID)
	require.Equal(t, rows[6].ID, page[3].ID)
}
