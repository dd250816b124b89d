// Package handler implements the bucket listing request handler: query
// parameter validation, a single storage call, response shaping, and the
// mapping of backend failures to HTTP status codes.
package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	"bucketlister/internal/config"
	"bucketlister/internal/listing"
	"bucketlister/internal/observability"
	"bucketlister/internal/storage"
	"bucketlister/internal/utils"
)

const (
	defaultMaxKeys = 100
	maxKeysLimit   = 1000
)

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Handler handles listing requests. All errors are caught here and
// translated into well-formed JSON error responses; nothing propagates.
type Handler struct {
	cfg     *config.Config
	lister  storage.Lister
	logger  *observability.Logger
	metrics *observability.Metrics
}

// New creates a Handler with explicit dependencies.
func New(cfg *config.Config, lister storage.Lister, logger *observability.Logger, metrics *observability.Metrics) *Handler {
	return &Handler{
		cfg:     cfg,
		lister:  lister,
		logger:  logger,
		metrics: metrics,
	}
}

// Handle processes one listing request.
//
// Parameter policy: prefix defaults to "", max_keys defaults to 100.
// Non-numeric max_keys is a 400; zero and negative values are rejected as
// 400 as well; values above 1000 are silently clamped to the S3 page limit.
func (h *Handler) Handle(ctx context.Context, req Request) (resp Response) {
	start := time.Now()
	defer func() {
		h.metrics.RecordRequest(resp.StatusCode)
		h.metrics.ObserveDuration("handle", time.Since(start).Seconds())
	}()

	defer func() {
		if r := recover(); r != nil {
			h.logger.Error("Panic recovered",
				"request_id", req.ID,
				"panic", fmt.Sprintf("%v", r),
				"stack", string(debug.Stack()))
			h.metrics.RecordError("panic")
			resp = NewResponse(http.StatusInternalServerError, errorBody{
				Error:   "Internal server error",
				Message: "An unexpected error occurred",
			}, nil)
		}
	}()

	if h.cfg.HandlerTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.cfg.HandlerTimeout)
		defer cancel()
	}

	bucket := h.cfg.BucketName
	if bucket == "" {
		h.logger.Error("BUCKET_NAME environment variable not set", "request_id", req.ID)
		h.metrics.RecordError("missing_configuration")
		return NewResponse(http.StatusInternalServerError, errorBody{
			Error:   "Internal server error",
			Message: "Bucket name not configured",
		}, nil)
	}

	prefix := req.QueryParams["prefix"]

	maxKeys := defaultMaxKeys
	if raw, ok := req.QueryParams["max_keys"]; ok && raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("Invalid max_keys parameter", "request_id", req.ID, "max_keys", raw)
			h.metrics.RecordError("invalid_request")
			return NewResponse(http.StatusBadRequest, errorBody{
				Error:   "Invalid request",
				Message: err.Error(),
			}, nil)
		}
		if parsed <= 0 {
			h.logger.Warn("Non-positive max_keys parameter", "request_id", req.ID, "max_keys", parsed)
			h.metrics.RecordError("invalid_request")
			return NewResponse(http.StatusBadRequest, errorBody{
				Error:   "Invalid request",
				Message: "max_keys must be a positive integer",
			}, nil)
		}
		maxKeys = parsed
	}

	if maxKeys > maxKeysLimit {
		h.logger.Warn("max_keys reduced to 1000 (S3 limit)", "request_id", req.ID, "requested", maxKeys)
		maxKeys = maxKeysLimit
	}

	h.logger.Info("Listing objects",
		"request_id", req.ID,
		"bucket", bucket,
		"prefix", prefix,
		"max_keys", maxKeys)

	page, err := h.lister.List(ctx, bucket, prefix, int32(maxKeys))
	if err != nil {
		return h.errorResponse(req, err)
	}

	result := listing.BuildResult(bucket, prefix, page, time.Now().UTC())

	h.logger.Info("Successfully listed objects",
		"request_id", req.ID,
		"count", result.ObjectCount,
		"total_size", utils.HumanSize(result.TotalSizeBytes),
		"truncated", result.IsTruncated)
	h.metrics.ObserveObjectCount(result.ObjectCount)

	return NewResponse(http.StatusOK, result, nil)
}

// errorResponse maps a classified storage error to the error contract.
func (h *Handler) errorResponse(req Request, err error) Response {
	h.metrics.RecordError(storage.ErrorCategory(err))

	switch {
	case errors.Is(err, storage.ErrBucketNotFound):
		h.logger.Error("Bucket not found", "request_id", req.ID, "error", err)
		return NewResponse(http.StatusNotFound, errorBody{
			Error:   "Bucket not found",
			Message: "The specified bucket does not exist",
		}, nil)

	case errors.Is(err, storage.ErrAccessDenied):
		h.logger.Error("Access denied", "request_id", req.ID, "error", err)
		return NewResponse(http.StatusForbidden, errorBody{
			Error:   "Access denied",
			Message: "Insufficient permissions to access the bucket",
		}, nil)

	case errors.Is(err, storage.ErrNoCredentials):
		h.logger.Error("AWS credentials not found", "request_id", req.ID, "error", err)
		return NewResponse(http.StatusInternalServerError, errorBody{
			Error:   "Internal server error",
			Message: "AWS credentials not configured",
		}, nil)

	case errors.Is(err, storage.ErrService):
		h.logger.Error("AWS service error", "request_id", req.ID, "error", err)
		return NewResponse(http.StatusInternalServerError, errorBody{
			Error:   "AWS service error",
			Message: "An error occurred while accessing AWS services",
		}, nil)

	default:
		h.logger.Error("Unexpected error", "request_id", req.ID, "error", err)
		return NewResponse(http.StatusInternalServerError, errorBody{
			Error:   "Internal server error",
			Message: "An unexpected error occurred",
		}, nil)
	}
}
