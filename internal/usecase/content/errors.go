package content

import "errors"

var (
	// ErrValidation marks an operator input rejected before the store was
	// touched. The wrapped message names the offending field.
	ErrValidation = errors.New("validation failed")

	// ErrNotConfigured is returned when a publish is attempted without the
	// three credential fields; no network call is made.
	ErrNotConfigured = errors.New("github credentials not configured")

	ErrFileTooLarge    = errors.New("file size must be less than 10MB")
	ErrUnsupportedType = errors.New("only image and video files are allowed")

	ErrBucketNotFound      = errors.New("storage: bucket not found")
	ErrStorageUnauthorized = errors.New("storage: unauthorized")
	ErrStorageInternal     = errors.New("storage: internal error")
)
