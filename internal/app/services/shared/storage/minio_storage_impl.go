package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"

	"medsafe-service/internal/app/contracts"
	"medsafe-service/internal/pkg/exceptions"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

type minioStorage struct {
	MinioClient *minio.Client
	BucketName  string
	Log         *zap.Logger
}

var (
	minioStorageInstance contracts.ObjectStorage
	onceMinioStorage     sync.Once
)

func NewMinioStorage(minioClient *minio.Client, bucketName string, logger *zap.Logger) contracts.ObjectStorage {
	onceMinioStorage.Do(func() {
		minioStorageInstance = &minioStorage{
			MinioClient: minioClient,
			BucketName:  bucketName,
			Log:         logger,
		}
	})
	return minioStorageInstance
}

func (m *minioStorage) Upload(ctx context.Context, objectName string, data []byte, contentType string) (string, error) {
	_, err := m.MinioClient.PutObject(
		ctx,
		m.BucketName,
		objectName,
		bytes.NewReader(data),
		int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType},
	)
	if err != nil {
		return "", exceptions.ErrMinioCreateObject(err, m.BucketName)
	}

	m.Log.Info("object uploaded",
		zap.String("bucket", m.BucketName),
		zap.String("object", objectName),
		zap.Int("size", len(data)),
	)
	return m.objectURL(objectName), nil
}

func (m *minioStorage) Download(ctx context.Context, objectName string) ([]byte, error) {
	object, err := m.MinioClient.GetObject(ctx, m.BucketName, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, exceptions.ErrMinioGetObject(err, m.BucketName)
	}
	defer object.Close()

	data, err := io.ReadAll(object)
	if err != nil {
		return nil, exceptions.ErrMinioGetObject(err, m.BucketName)
	}
	return data, nil
}

func (m *minioStorage) Delete(ctx context.Context, objectName string) error {
	err := m.MinioClient.RemoveObject(ctx, m.BucketName, objectName, minio.RemoveObjectOptions{})
	if err != nil {
		return exceptions.ErrMinioRemoveObject(err, m.BucketName)
	}

	m.Log.Info("object removed",
		zap.String("bucket", m.BucketName),
		zap.String("object", objectName),
	)
	return nil
}

func (m *minioStorage) ObjectPath(url string) string {
	return ExtractObjectPath(url, m.BucketName)
}

func (m *minioStorage) objectURL(objectName string) string {
	return fmt.Sprintf("%s/%s/%s", m.MinioClient.EndpointURL().String(), m.BucketName, EncodeObjectPath(objectName))
}
