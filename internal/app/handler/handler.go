package handler

import (
	"fmt"
	"net/http"

	"members-backend/internal/app/dto"
	"members-backend/internal/app/repository"
	"members-backend/internal/app/storage"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// APIHandler содержит обработчики для REST API
type APIHandler struct {
	Repository  *repository.Repository
	MinIOClient *storage.MinIOClient
	AuthHandler *AuthHandler
}

func NewAPIHandler(r *repository.Repository, minioClient *storage.MinIOClient, authHandler *AuthHandler) *APIHandler {
	return &APIHandler{
		Repository:  r,
		MinIOClient: minioClient,
		AuthHandler: authHandler,
	}
}

// Получение customer_id текущего пользователя из контекста
func (h *APIHandler) getCustomerFromContext(c *gin.Context) (uint, error) {
	customerID, exists := c.Get("customerID")
	if !exists {
		logrus.Warn("customerID not found in context")
		return 0, fmt.Errorf("user not authenticated")
	}

	id, ok := customerID.(uint)
	if !ok {
		logrus.Errorf("getCustomerFromContext: invalid customerID type: %T", customerID)
		return 0, fmt.Errorf("invalid customer ID")
	}
	return id, nil
}

// ============ Вспомогательные функции ============

func (h *APIHandler) errorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{
		Status:  "fail",
		Message: message,
	})
}

func (h *APIHandler) successResponse(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// Ping проверка работоспособности сервиса
// @Summary Проверка доступности
// @Tags Service
// @Produce json
// @Success 200 {object} map[string]string
// @Router /ping [get]
func (h *APIHandler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
