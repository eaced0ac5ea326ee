package storage

import (
	"fmt"

	"github.com/minio/minio-go/v7"

	"github.com/psastudios/content-ms-go/internal/usecase/content"
)

func mapMinioErr(err error) error {
	if err == nil {
		return nil
	}
	resp := minio.ToErrorResponse(err)
	switch resp.Code {
	case "NoSuchBucket":
		return content.ErrBucketNotFound
	case "AccessDenied", "InvalidAccessKeyId", "SignatureDoesNotMatch":
		return content.ErrStorageUnauthorized
	default:
		// catch everything else
		return fmt.Errorf("%w: %v", content.ErrStorageInternal, err)
	}
}
