package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"members-backend/internal/app/dto"
	"members-backend/internal/app/repository"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// GetJobList список работ с фильтрацией и пагинацией
// @Summary Список работ
// @Description Возвращает работы в области доступа пользователя с вычисленными статусами
// @Tags Jobs
// @Produce json
// @Security BearerAuth
// @Param job_id query int false "Точный id работы"
// @Param job_reference query string false "Точный номер работы"
// @Param job_last_name_or_property_owner query string false "Фамилия или владелец объекта"
// @Param job_status query string false "Именованный статус"
// @Param customers_scheme_id query int false "Схема клиента"
// @Param email_address query string false "Email"
// @Param telephone_no query string false "Телефон"
// @Param address query string false "Подстрока адреса"
// @Param postcode query string false "Подстрока индекса"
// @Param state_completed query bool false "Признак завершения"
// @Param include_policies query bool false "Включить полисы"
// @Param include_letters query bool false "Включить письма"
// @Param include_work_types query bool false "Включить виды работ"
// @Param include_finances query bool false "Включить строки счета"
// @Param include_audit_flags query bool false "Включить флаги проверки"
// @Param include_has_policies query bool false "Признак наличия полисов"
// @Param include_has_letters query bool false "Признак наличия писем"
// @Param offset query int false "Смещение страницы"
// @Param limit query int false "Размер страницы"
// @Success 200 {object} dto.JobListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/jobs [get]
func (h *APIHandler) GetJobList(c *gin.Context) {
	var query dto.JobListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	customerID, err := h.getCustomerFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, err.Error())
		return
	}

	schemeIDs, err := h.Repository.GetAllowedSchemeIDs(customerID)
	if err != nil {
		logrus.Error("GetJobList: scheme scope: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "ошибка определения области доступа")
		return
	}

	filter := repository.JobFilter{
		JobID:          query.JobID,
		Reference:      query.Reference,
		ContactName:    query.ContactName,
		Status:         query.Status,
		SchemeID:       query.SchemeID,
		Email:          query.Email,
		Phone:          query.Phone,
		Address:        query.Address,
		Postcode:       query.Postcode,
		StateCompleted: query.StateCompleted,
	}

	pred, err := filter.Compile(time.Now())
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	rows, err := h.Repository.GetJobs(pred, schemeIDs)
	if err != nil {
		logrus.Error("GetJobList: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "ошибка выборки работ")
		return
	}

	offset := 0
	if query.Offset != nil {
		offset = *query.Offset
	}
	limit := defaultListLimit
	if query.Limit != nil {
		limit = *query.Limit
	}

	page, total, returned := paginateJobs(rows, offset, limit)

	results := make([]dto.JobResponse, 0, len(page))
	for _, row := range page {
		flags, err := h.Repository.GetJobAuditFlags(row.ID, false, query.IncludeFlags)
		if err != nil {
			logrus.Error("GetJobList: audit flags: ", err)
			h.errorResponse(c, http.StatusInternalServerError, "ошибка выборки флагов проверки")
			return
		}

		resp := buildJobResponse(row, flags, query.IncludeFlags)
		if err := h.attachListIncludes(&resp, row.ID, query); err != nil {
			logrus.Error("GetJobList: includes: ", err)
			h.errorResponse(c, http.StatusInternalServerError, "ошибка выборки связанных данных")
			return
		}
		results = append(results, resp)
	}

	h.successResponse(c, http.StatusOK, dto.JobListResponse{
		TotalRecords:    total,
		ReturnedRecords: returned,
		Limit:           limit,
		Results:         results,
	})
}

// GetJobDetails детальная карточка работы
// @Summary Детали работы
// @Tags Jobs
// @Produce json
// @Security BearerAuth
// @Param id path int true "id работы"
// @Param include_policies query bool false "Включить полисы"
// @Param include_letters query bool false "Включить письма"
// @Param include_work_types query bool false "Включить виды работ"
// @Param include_finances query bool false "Включить строки счета"
// @Param include_audit_flags query bool false "Включить флаги проверки"
// @Success 200 {object} dto.JobResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/jobs/{id} [get]
func (h *APIHandler) GetJobDetails(c *gin.Context) {
	jobID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "некорректный id работы")
		return
	}

	var query dto.JobDetailsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.errorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	customerID, err := h.getCustomerFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, err.Error())
		return
	}

	schemeIDs, err := h.Repository.GetAllowedSchemeIDs(customerID)
	if err != nil {
		logrus.Error("GetJobDetails: scheme scope: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "ошибка определения области доступа")
		return
	}

	row, err := h.Repository.GetJobByID(uint(jobID), schemeIDs)
	if err != nil {
		logrus.Error("GetJobDetails: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "ошибка выборки работы")
		return
	}
	if row == nil {
		h.errorResponse(c, http.StatusNotFound, "работа не найдена")
		return
	}

	// Флаги с количеством файлов нужны и для вывода, и для расчета статусов
	flags, err := h.Repository.GetJobAuditFlags(row.ID, false, true)
	if err != nil {
		logrus.Error("GetJobDetails: audit flags: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "ошибка выборки флагов проверки")
		return
	}

	resp := buildJobResponse(*row, flags, query.IncludeFlags)

	if query.IncludePolicies {
		policies, err := h.Repository.GetJobPolicies(row.ID)
		if err != nil {
			logrus.Error("GetJobDetails: policies: ", err)
			h.errorResponse(c, http.StatusInternalServerError, "ошибка выборки полисов")
			return
		}
		total := len(policies)
		resp.Policies = policies
		resp.TotalPolicies = &total
	}

	if query.IncludeLetters {
		letters, err := h.Repository.GetJobLetters(row.ID)
		if err != nil {
			logrus.Error("GetJobDetails: letters: ", err)
			h.errorResponse(c, http.StatusInternalServerError, "ошибка выборки писем")
			return
		}
		total := len(letters)
		resp.Letters = letters
		resp.TotalLetters = &total
	}

	if query.IncludeWorkTypes {
		workTypes, err := h.Repository.GetJobWorkTypes(row.ID)
		if err != nil {
			logrus.Error("GetJobDetails: work types: ", err)
			h.errorResponse(c, http.StatusInternalServerError, "ошибка выборки видов работ")
			return
		}
		applyWorkTypes(&resp, workTypes)
	}

	if query.IncludeFinances {
		if err := h.attachFinances(&resp, row.ID); err != nil {
			logrus.Error("GetJobDetails: finances: ", err)
			h.errorResponse(c, http.StatusInternalServerError, "ошибка выборки строк счета")
			return
		}
	}

	h.successResponse(c, http.StatusOK, resp)
}

// GetJobStats сводный отчет по работам
// @Summary Сводка по работам
// @Description Одна метка состояния на работу, без пагинации
// @Tags Jobs
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.JobStatsResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/jobs/stats [get]
func (h *APIHandler) GetJobStats(c *gin.Context) {
	customerID, err := h.getCustomerFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, err.Error())
		return
	}

	schemeIDs, err := h.Repository.GetAllowedSchemeIDs(customerID)
	if err != nil {
		logrus.Error("GetJobStats: scheme scope: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "ошибка определения области доступа")
		return
	}

	rows, err := h.Repository.GetJobStats(schemeIDs)
	if err != nil {
		logrus.Error("GetJobStats: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "ошибка выборки сводки")
		return
	}

	jobs := make([]dto.JobStatsEntry, 0, len(rows))
	for _, row := range rows {
		jobs = append(jobs, dto.JobStatsEntry{
			ID:       row.ID,
			PaidDate: row.PaidDate,
			State:    deriveStatsState(row),
		})
	}

	h.successResponse(c, http.StatusOK, dto.JobStatsResponse{
		TotalRecords: len(jobs),
		Jobs:         jobs,
	})
}

// GetAuditFlagFile выдает ссылку на скачивание файла флага проверки
// @Summary Файл флага проверки
// @Description Временная ссылка на файл, приложенный к флагу работы
// @Tags Jobs
// @Produce json
// @Security BearerAuth
// @Param id path int true "id работы"
// @Param file_id path int true "id файла"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/jobs/{id}/audit-files/{file_id} [get]
func (h *APIHandler) GetAuditFlagFile(c *gin.Context) {
	jobID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "некорректный id работы")
		return
	}
	fileID, err := strconv.ParseUint(c.Param("file_id"), 10, 64)
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "некорректный id файла")
		return
	}

	customerID, err := h.getCustomerFromContext(c)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, err.Error())
		return
	}

	schemeIDs, err := h.Repository.GetAllowedSchemeIDs(customerID)
	if err != nil {
		logrus.Error("GetAuditFlagFile: scheme scope: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "ошибка определения области доступа")
		return
	}

	// Файл доступен только через работу в области доступа
	row, err := h.Repository.GetJobByID(uint(jobID), schemeIDs)
	if err != nil {
		logrus.Error("GetAuditFlagFile: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "ошибка выборки работы")
		return
	}
	if row == nil {
		h.errorResponse(c, http.StatusNotFound, "работа не найдена")
		return
	}

	file, err := h.Repository.GetAuditFlagFile(uint(jobID), uint(fileID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.errorResponse(c, http.StatusNotFound, "файл не найден")
			return
		}
		logrus.Error("GetAuditFlagFile: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "ошибка выборки файла")
		return
	}

	if h.MinIOClient == nil {
		h.errorResponse(c, http.StatusInternalServerError, "файловое хранилище недоступно")
		return
	}

	// Запись в БД может пережить сам объект в хранилище
	exists, err := h.MinIOClient.FileExists(c.Request.Context(), file.Filename)
	if err != nil {
		logrus.Error("GetAuditFlagFile: stat: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "ошибка обращения к хранилищу")
		return
	}
	if !exists {
		h.errorResponse(c, http.StatusNotFound, "файл отсутствует в хранилище")
		return
	}

	url, err := h.MinIOClient.GetFileURL(c.Request.Context(), file.Filename)
	if err != nil {
		logrus.Error("GetAuditFlagFile: presign: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "ошибка формирования ссылки")
		return
	}

	h.successResponse(c, http.StatusOK, dto.SuccessResponse{
		Status: "success",
		Data: gin.H{
			"file_id":  file.ID,
			"filename": file.Filename,
			"url":      url,
		},
	})
}

// buildJobResponse собирает выдачу работы из строки и флагов
func buildJobResponse(row repository.JobRow, flags []repository.AuditFlagView, includeFlags bool) dto.JobResponse {
	states, underwritingReview := calculateJobStates(row.StateCompleted, row.AuditStageID, flags)

	resp := dto.JobResponse{
		ID:                       row.ID,
		Reference:                row.Reference,
		TitleID:                  row.TitleID,
		FirstName:                row.FirstName,
		LastNameOrPropertyOwner:  row.LastNameOrPropertyOwner,
		EmailAddress:             row.EmailAddress,
		TelephoneNo:              row.TelephoneNo,
		ContractValue:            row.ContractValue,
		Term:                     row.Term,
		DepositCover:             row.DepositCover,
		DepositPaid:              row.DepositPaid,
		DepositAmount:            row.DepositAmount,
		Completion:               row.Completion,
		CompletionEstimated:      row.CompletionEstimated,
		Address1:                 row.Address1,
		Address2:                 row.Address2,
		Address3:                 row.Address3,
		AddressPostcode:          row.AddressPostcode,
		InstallAddressDiffers:    row.InstallAddressDiffers,
		InstallAddress1:          row.InstallAddress1,
		InstallAddress2:          row.InstallAddress2,
		InstallAddress3:          row.InstallAddress3,
		InstallAddressPostcode:   row.InstallAddressPostcode,
		CustomersSchemeID:        row.CustomersSchemeID,
		ParentCustomersSchemeID:  row.ParentCustomersSchemeID,
		RateID:                   row.RateID,
		CompetentPersonsSchemeID: row.CompetentPersonsSchemeID,
		Void:                     row.Void,
		Created:                  row.Created,
		Modified:                 row.Modified,
		RevisionPending:          row.RevisionPending,
		StateCompleted:           row.StateCompleted,
		AuditStageID:             row.AuditStageID,
		CalculatedStates:         states,
		UnderwritingReview:       underwritingReview,
	}
	if includeFlags {
		resp.Flags = flags
	}
	return resp
}

// attachListIncludes подключает дочерние коллекции к строке списка
func (h *APIHandler) attachListIncludes(resp *dto.JobResponse, jobID uint, query dto.JobListQuery) error {
	if query.IncludeHasPolicies {
		hasPolicies, err := h.Repository.HasPolicies(jobID)
		if err != nil {
			return err
		}
		resp.HasPolicies = &hasPolicies
	}

	if query.IncludeHasLetters {
		hasLetters, err := h.Repository.HasLetters(jobID)
		if err != nil {
			return err
		}
		resp.HasLetters = &hasLetters
	}

	if query.IncludePolicies {
		policies, err := h.Repository.GetJobPolicies(jobID)
		if err != nil {
			return err
		}
		total := len(policies)
		resp.Policies = policies
		resp.TotalPolicies = &total
	}

	if query.IncludeLetters {
		letters, err := h.Repository.GetJobLetters(jobID)
		if err != nil {
			return err
		}
		total := len(letters)
		resp.Letters = letters
		resp.TotalLetters = &total
	}

	if query.IncludeWorkTypes {
		workTypes, err := h.Repository.GetJobWorkTypes(jobID)
		if err != nil {
			return err
		}
		applyWorkTypes(resp, workTypes)
	}

	if query.IncludeFinances {
		if err := h.attachFinances(resp, jobID); err != nil {
			return err
		}
	}
	return nil
}

// attachFinances подключает строки счета и суммы премий
func (h *APIHandler) attachFinances(resp *dto.JobResponse, jobID uint) error {
	items, err := h.Repository.GetJobAccountItems(jobID)
	if err != nil {
		return err
	}
	applyAccountItems(resp, items)
	return nil
}

// applyWorkTypes выставляет коллекцию видов работ вместе с количеством
func applyWorkTypes(resp *dto.JobResponse, workTypes []repository.WorkTypeView) {
	total := len(workTypes)
	resp.WorkTypes = workTypes
	resp.TotalWorkTypes = &total
}

// applyAccountItems выставляет строки счета, их количество и суммы премий.
// Итог с налогом складывается из уже округленных построчных значений.
func applyAccountItems(resp *dto.JobResponse, items []repository.AccountItemView) {
	amount := decimal.Zero
	amountIncTax := decimal.Zero
	for _, item := range items {
		amount = amount.Add(decimal.NewFromFloat(item.Amount))
		amountIncTax = amountIncTax.Add(decimal.NewFromFloat(item.AmountIncTax))
	}

	total := len(items)
	premium := amount.Round(2).InexactFloat64()
	premiumIncTax := amountIncTax.Round(2).InexactFloat64()

	resp.AccountItems = items
	resp.TotalAccountItems = &total
	resp.PremiumAmount = &premium
	resp.PremiumAmountIncTax = &premiumIncTax
}
