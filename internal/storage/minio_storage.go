package storage

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/psastudios/content-ms-go/internal/port"
)

// MinioStorage is the blob-store collaborator uploaded media files land in.
// It hands back publicly resolvable URLs the admin panel uses as src and
// thumbnail values.
type MinioStorage struct {
	client        minioClient
	bucketName    string
	publicBaseURL string
}

// compile-time check: *MinioStorage must satisfy port.Storage
var _ port.Storage = (*MinioStorage)(nil)

func NewStorage(endpoint, accessKey, secretKey string, useSSL bool, bucket, publicBaseURL string) (*MinioStorage, error) {
	log.Println("initialising minio client...")
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, mapMinioErr(err)
	}

	if publicBaseURL == "" {
		scheme := "http"
		if useSSL {
			scheme = "https"
		}
		publicBaseURL = fmt.Sprintf("%s://%s", scheme, endpoint)
	}

	return &MinioStorage{client: client, bucketName: bucket, publicBaseURL: publicBaseURL}, nil
}

func (s *MinioStorage) InitBucket() error {
	ok, err := s.client.BucketExists(context.Background(), s.bucketName)
	if err != nil {
		return mapMinioErr(err)
	}
	if !ok {
		log.Printf("bucket %q does not exist, creating it...", s.bucketName)
		if err := s.client.MakeBucket(context.Background(), s.bucketName, minio.MakeBucketOptions{}); err != nil {
			return mapMinioErr(err)
		}
	}
	return nil
}

func (s *MinioStorage) SaveFile(ctx context.Context, fileKey string, r io.Reader, size int64, contentType string) (string, error) {
	log.Printf("uploading file %q to bucket %q...", fileKey, s.bucketName)

	_, err := s.client.PutObject(ctx, s.bucketName, fileKey, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", mapMinioErr(err)
	}

	return fmt.Sprintf("%s/%s/%s", s.publicBaseURL, s.bucketName, fileKey), nil
}
