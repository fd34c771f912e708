package handler

import "members-backend/internal/app/repository"

// Лимит страницы списка работ по умолчанию
const defaultListLimit = 50

// paginateJobs - срез страницы из уже полностью отфильтрованного набора.
// total всегда считается до среза.
func paginateJobs(rows []repository.JobRow, offset, limit int) ([]repository.JobRow, int, int) {
	total := len(rows)

	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}

	if offset >= total {
		return []repository.JobRow{}, total, 0
	}

	end := offset + limit
	if end > total {
		end = total
	}

	page := rows[offset:end]
	return page, total, len(page)
}
