package main

import (
	"context"

	"members-backend/internal/app/config"
	"members-backend/internal/app/dsn"
	"members-backend/internal/app/handler"
	"members-backend/internal/app/middleware"
	"members-backend/internal/app/redis"
	"members-backend/internal/app/repository"
	"members-backend/internal/app/storage"
	"members-backend/internal/pkg"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// @title Members API
// @version 1.0
// @description API личного кабинета участников: работы, статусы, сводки

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	logrus.Info("App start")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal("ошибка чтения конфигурации: ", err)
	}

	repo, err := repository.New(dsn.FromEnv())
	if err != nil {
		logrus.Fatal("ошибка инициализации репозитория: ", err)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis)
	if err != nil {
		logrus.Fatal("ошибка подключения к Redis: ", err)
	}
	defer redisClient.Close()

	// Без хранилища сервис работает, недоступны только файлы проверок
	minioClient, err := storage.NewMinIOClient(
		cfg.MinIO.Endpoint,
		cfg.MinIO.AccessKey,
		cfg.MinIO.SecretKey,
		cfg.MinIO.Bucket,
		cfg.MinIO.UseSSL,
	)
	if err != nil {
		logrus.Warn("MinIO недоступен, выдача файлов отключена: ", err)
		minioClient = nil
	}

	authHandler := handler.NewAuthHandler(repo, redisClient, cfg)
	apiHandler := handler.NewAPIHandler(repo, minioClient, authHandler)
	authMiddleware := middleware.NewAuthMiddleware(redisClient, cfg)

	router := gin.Default()
	app := pkg.NewApp(cfg, router, apiHandler, authMiddleware)
	app.RunApp()

	logrus.Info("App terminated")
}
