package storage

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinIOClient - только чтение: файлы складывает во внешнюю систему
// другой сервис, здесь мы их лишь выдаем
type MinIOClient struct {
	client     *minio.Client
	bucketName string
}

// Время жизни временной ссылки на файл
const presignedURLExpiry = time.Hour

// NewMinIOClient создает клиент для MinIO
func NewMinIOClient(endpoint, accessKey, secretKey, bucketName string, useSSL bool) (*MinIOClient, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(context.Background(), bucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", bucketName)
	}

	return &MinIOClient{
		client:     client,
		bucketName: bucketName,
	}, nil
}

// GetFileURL возвращает временную ссылку на скачивание файла
func (m *MinIOClient) GetFileURL(ctx context.Context, filename string) (string, error) {
	reqParams := make(url.Values)
	reqParams.Set("response-content-disposition", fmt.Sprintf("attachment; filename=%q", filename))

	presigned, err := m.client.PresignedGetObject(ctx, m.bucketName, filename, presignedURLExpiry, reqParams)
	if err != nil {
		return "", fmt.Errorf("failed to presign file url: %w", err)
	}
	return presigned.String(), nil
}

// FileExists проверяет наличие файла в хранилище
func (m *MinIOClient) FileExists(ctx context.Context, filename string) (bool, error) {
	_, err := m.client.StatObject(ctx, m.bucketName, filename, minio.StatObjectOptions{})
	if err != nil {
		errResp := minio.ToErrorResponse(err)
		if errResp.Code == "NoSuchKey" {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
