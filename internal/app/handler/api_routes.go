package handler

import (
	"members-backend/internal/app/middleware"
	"members-backend/internal/app/role"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterAPIRoutes регистрирует все REST API маршруты с авторизацией
func (h *APIHandler) RegisterAPIRoutes(router *gin.Engine, authMiddleware *middleware.AuthMiddleware) {
	api := router.Group("/api")

	// ============ Работы (Jobs) - только для авторизованных пользователей ============
	jobs := api.Group("/jobs")
	jobs.Use(authMiddleware.WithAuthCheck(role.Member, role.Manager, role.Admin))
	{
		jobs.GET("", h.GetJobList)                                // GET список с фильтрацией и пагинацией
		jobs.GET("/stats", h.GetJobStats)                         // GET сводка по работам
		jobs.GET("/:id", h.GetJobDetails)                         // GET детальная карточка
		jobs.GET("/:id/audit-files/:file_id", h.GetAuditFlagFile) // GET файл флага проверки
	}

	// ============ Аутентификация ============
	auth := api.Group("/auth")
	{
		// Публичные эндпоинты
		auth.POST("/register", h.AuthHandler.RegisterUser) // POST регистрация
		auth.POST("/login", h.AuthHandler.LoginUser)       // POST аутентификация JWT

		// Защищенные эндпоинты
		auth.GET("/profile", authMiddleware.WithAuthCheck(role.Member, role.Manager, role.Admin), h.AuthHandler.GetUserProfile)
		auth.POST("/logout", authMiddleware.WithAuthCheck(role.Member, role.Manager, role.Admin), h.AuthHandler.LogoutUser)
	}

	// Swagger документация
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Ping эндпоинт для проверки
	router.GET("/ping", h.Ping)
}
