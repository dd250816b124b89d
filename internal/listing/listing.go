// Package listing shapes a raw storage page into the response contract.
package listing

import (
	"math"
	"strings"
	"time"

	"bucketlister/internal/storage"
)

const defaultStorageClass = "STANDARD"

// Owner identifies the owner of an object. Both fields are pulled through
// from the backend as-is and may be empty.
type Owner struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

// ObjectRecord is one object in the listing response.
type ObjectRecord struct {
	Key          string `json:"key"`
	SizeBytes    int64  `json:"size_bytes"`
	LastModified string `json:"last_modified"`
	ContentHash  string `json:"content_hash"`
	StorageClass string `json:"storage_class"`
	Owner        *Owner `json:"owner,omitempty"`
}

// Result is the full listing response body. NextContinuationToken is present
// exactly when IsTruncated is true.
type Result struct {
	BucketName            string         `json:"bucket_name"`
	Prefix                string         `json:"prefix"`
	ObjectCount           int            `json:"object_count"`
	TotalSizeBytes        int64          `json:"total_size_bytes"`
	TotalSizeMB           float64        `json:"total_size_mb"`
	IsTruncated           bool           `json:"is_truncated"`
	Objects               []ObjectRecord `json:"objects"`
	Timestamp             string         `json:"timestamp"`
	NextContinuationToken string         `json:"next_continuation_token,omitempty"`
	CommonPrefixes        []string       `json:"common_prefixes,omitempty"`
}

// BuildResult transforms a raw page into the response contract:
// ETag quotes are stripped, storage class defaults to STANDARD, owner is
// included only when the backend returned one, and timestamps are rendered
// as RFC 3339. Aggregates cover this page only, not the whole bucket.
func BuildResult(bucket, prefix string, page storage.ObjectPage, now time.Time) Result {
	objects := make([]ObjectRecord, 0, len(page.Objects))
	var totalSize int64

	for _, raw := range page.Objects {
		record := ObjectRecord{
			Key:          raw.Key,
			SizeBytes:    raw.Size,
			LastModified: raw.LastModified.Format(time.RFC3339),
			ContentHash:  strings.Trim(raw.ETag, `"`),
			StorageClass: raw.StorageClass,
		}
		if record.StorageClass == "" {
			record.StorageClass = defaultStorageClass
		}
		if raw.Owner != nil {
			record.Owner = &Owner{
				ID:          raw.Owner.ID,
				DisplayName: raw.Owner.DisplayName,
			}
		}

		objects = append(objects, record)
		totalSize += raw.Size
	}

	result := Result{
		BucketName:     bucket,
		Prefix:         prefix,
		ObjectCount:    len(objects),
		TotalSizeBytes: totalSize,
		TotalSizeMB:    megabytes(totalSize),
		IsTruncated:    page.IsTruncated,
		Objects:        objects,
		Timestamp:      now.UTC().Format(time.RFC3339),
		CommonPrefixes: page.CommonPrefixes,
	}

	if page.IsTruncated {
		result.NextContinuationToken = page.NextContinuationToken
	}

	return result
}

// megabytes converts bytes to megabytes rounded to 2 decimal places.
func megabytes(bytes int64) float64 {
	return math.Round(float64(bytes)/(1024*1024)*100) / 100
}
