package handler

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sts"

	"bucketlister/internal/observability"
)

// STSAPI is the subset of the STS client the health check needs.
type STSAPI interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

// HealthStatus reports the result of an out-of-band liveness check.
type HealthStatus struct {
	Status     string `json:"status"`
	Timestamp  string `json:"timestamp"`
	AWSAccount string `json:"aws_account,omitempty"`
	AWSUserID  string `json:"aws_user_id,omitempty"`
	Error      string `json:"error,omitempty"`
}

// HealthChecker verifies AWS credentials and reachability via STS.
// It is independent of the listing request path.
type HealthChecker struct {
	api    STSAPI
	logger *observability.Logger
}

// NewHealthChecker creates a health checker.
func NewHealthChecker(api STSAPI, logger *observability.Logger) *HealthChecker {
	return &HealthChecker{api: api, logger: logger}
}

// Check queries the caller identity and reports healthy or unhealthy.
func (h *HealthChecker) Check(ctx context.Context) HealthStatus {
	timestamp := time.Now().UTC().Format(time.RFC3339)

	identity, err := h.api.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		h.logger.Error("Health check failed", "error", err)
		return HealthStatus{
			Status:    "unhealthy",
			Timestamp: timestamp,
			Error:     err.Error(),
		}
	}

	return HealthStatus{
		Status:     "healthy",
		Timestamp:  timestamp,
		AWSAccount: aws.ToString(identity.Account),
		AWSUserID:  aws.ToString(identity.UserId),
	}
}
