package storage

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"

	"bucketlister/internal/observability"
)

// S3API is the subset of the S3 client the lister needs.
type S3API interface {
	ListObjectsV2(ctx context.Context, params *awss3.ListObjectsV2Input, optFns ...func(*awss3.Options)) (*awss3.ListObjectsV2Output, error)
}

// Client implements Lister against AWS S3.
type Client struct {
	api     S3API
	logger  *observability.Logger
	metrics *observability.Metrics
}

// NewClient creates a new S3 lister.
func NewClient(api S3API, logger *observability.Logger, metrics *observability.Metrics) *Client {
	return &Client{
		api:     api,
		logger:  logger,
		metrics: metrics,
	}
}

// List fetches a single page of objects. Prefix is only sent when non-empty.
// The SDK's default retry policy applies; no retry is added here.
func (c *Client) List(ctx context.Context, bucket, prefix string, maxKeys int32) (ObjectPage, error) {
	start := time.Now()

	input := &awss3.ListObjectsV2Input{
		Bucket:  aws.String(bucket),
		MaxKeys: aws.Int32(maxKeys),
	}
	if prefix != "" {
		input.Prefix = aws.String(prefix)
	}

	out, err := c.api.ListObjectsV2(ctx, input)
	if err != nil {
		classified := classifyError(err)
		c.logger.Error("Failed to list objects",
			"error", err,
			"bucket", bucket,
			"prefix", prefix,
			"error_type", ErrorCategory(classified))
		c.metrics.RecordError(ErrorCategory(classified))
		return ObjectPage{}, classified
	}

	page := ObjectPage{
		Objects: make([]RawObject, 0, len(out.Contents)),
	}

	for _, obj := range out.Contents {
		raw := RawObject{
			Key:          aws.ToString(obj.Key),
			Size:         aws.ToInt64(obj.Size),
			LastModified: aws.ToTime(obj.LastModified),
			ETag:         aws.ToString(obj.ETag),
			StorageClass: string(obj.StorageClass),
		}
		if obj.Owner != nil {
			raw.Owner = &Owner{
				ID:          aws.ToString(obj.Owner.ID),
				DisplayName: aws.ToString(obj.Owner.DisplayName),
			}
		}
		page.Objects = append(page.Objects, raw)
	}

	for _, cp := range out.CommonPrefixes {
		page.CommonPrefixes = append(page.CommonPrefixes, aws.ToString(cp.Prefix))
	}

	if aws.ToBool(out.IsTruncated) {
		page.IsTruncated = true
		page.NextContinuationToken = aws.ToString(out.NextContinuationToken)
	}

	duration := time.Since(start)
	c.logger.Debug("Listed objects",
		"bucket", bucket,
		"prefix", prefix,
		"count", len(page.Objects),
		"truncated", page.IsTruncated,
		"duration_ms", duration.Milliseconds())
	c.metrics.ObserveDuration("s3_list", duration.Seconds())

	return page, nil
}
