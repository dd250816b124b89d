package storage

import (
	"errors"
	"fmt"
	"strings"

	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
)

// Error categories for backend failures. The handler maps these to HTTP
// status codes; anything not matched here is treated as unexpected.
var (
	// ErrBucketNotFound is returned when the bucket does not exist
	ErrBucketNotFound = errors.New("bucket not found")
	// ErrAccessDenied is returned when the backend rejects the credentials' permissions
	ErrAccessDenied = errors.New("access denied")
	// ErrNoCredentials is returned when no AWS credentials could be resolved
	ErrNoCredentials = errors.New("aws credentials not configured")
	// ErrService is returned for any other backend service failure
	ErrService = errors.New("aws service error")
)

// classifyError translates an SDK error into one of the error categories.
func classifyError(err error) error {
	var noBucket *s3types.NoSuchBucket
	if errors.As(err, &noBucket) {
		return ErrBucketNotFound
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NoSuchBucket":
			return ErrBucketNotFound
		case "AccessDenied", "AccessDeniedException":
			return ErrAccessDenied
		}
		return fmt.Errorf("%w: %s: %s", ErrService, apiErr.ErrorCode(), apiErr.ErrorMessage())
	}

	// Credential resolution failures are wrapped operation errors, not typed
	// API errors, so they have to be matched on the message.
	if strings.Contains(strings.ToLower(err.Error()), "credential") {
		return ErrNoCredentials
	}

	return fmt.Errorf("%w: %v", ErrService, err)
}

// ErrorCategory returns a short label for an error, for metrics and logs.
func ErrorCategory(err error) string {
	switch {
	case errors.Is(err, ErrBucketNotFound):
		return "bucket_not_found"
	case errors.Is(err, ErrAccessDenied):
		return "access_denied"
	case errors.Is(err, ErrNoCredentials):
		return "no_credentials"
	case errors.Is(err, ErrService):
		return "service_error"
	default:
		return "unexpected"
	}
}
