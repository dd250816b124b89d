// Package storage provides the object-storage listing collaborator. The
// handler consumes exactly one capability from it: a single-page object
// listing with an opaque continuation token.
package storage

import (
	"context"
	"time"
)

// Owner identifies the owner of a stored object when the backend returns it.
type Owner struct {
	ID          string
	DisplayName string
}

// RawObject is one entry of a raw listing page, before response shaping.
type RawObject struct {
	Key          string
	Size         int64
	LastModified time.Time
	ETag         string
	StorageClass string
	Owner        *Owner
}

// ObjectPage is a single page of a bucket listing. NextContinuationToken is
// only set when the page is truncated.
type ObjectPage struct {
	Objects               []RawObject
	IsTruncated           bool
	NextContinuationToken string
	CommonPrefixes        []string
}

// Lister lists a single page of objects from a bucket. Implementations make
// exactly one backend call per invocation; pagination is the caller's
// responsibility via the continuation token.
type Lister interface {
	List(ctx context.Context, bucket, prefix string, maxKeys int32) (ObjectPage, error)
}
