package main

import (
	"context"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	awss3 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/prometheus/client_golang/prometheus"

	"bucketlister/internal/config"
	"bucketlister/internal/handler"
	"bucketlister/internal/observability"
	"bucketlister/internal/platform"
	"bucketlister/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := observability.NewLogger(cfg.LogLevel, nil).WithFields(map[string]interface{}{
		"service":     cfg.ServiceName,
		"environment": cfg.Environment,
	})
	metrics := observability.NewMetrics("bucketlister", prometheus.DefaultRegisterer)

	logger.Info("Starting service",
		"platform", cfg.Platform,
		"bucket", cfg.BucketName,
		"region", cfg.AWS.Region)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	awsCfg, err := buildAWSConfig(ctx, cfg)
	if err != nil {
		logger.Error("Failed to load AWS config", "error", err)
		log.Fatalf("Failed to load AWS config: %v", err)
	}

	s3Client := awss3.NewFromConfig(awsCfg, func(o *awss3.Options) {
		if cfg.AWS.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.AWS.Endpoint)
			o.UsePathStyle = true
		}
	})

	lister := storage.NewClient(s3Client, logger, metrics)
	h := handler.New(cfg, lister, logger, metrics)
	health := handler.NewHealthChecker(sts.NewFromConfig(awsCfg), logger)

	switch cfg.Platform {
	case "http":
		adapter := platform.NewHTTPAdapter(h, health)
		logger.Info("Listening", "addr", cfg.HTTP.Addr)
		if err := adapter.Serve(cfg.HTTP); err != nil {
			logger.Error("Server stopped", "error", err)
			log.Fatalf("Server stopped: %v", err)
		}
	default:
		platform.NewLambdaAdapter(h).Start()
	}
}

// buildAWSConfig builds the AWS client configuration. Static credentials are
// only used for local development against localstack or minio; on Lambda the
// default provider chain resolves the execution role.
func buildAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	optFns := []func(*awsconfig.LoadOptions) error{}

	if cfg.AWS.Region != "" {
		optFns = append(optFns, awsconfig.WithRegion(cfg.AWS.Region))
	}

	if cfg.AWS.Endpoint != "" && cfg.AWS.AccessKeyID != "" && cfg.AWS.SecretAccessKey != "" {
		optFns = append(optFns, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				cfg.AWS.AccessKeyID,
				cfg.AWS.SecretAccessKey,
				"",
			),
		))
	}

	return awsconfig.LoadDefaultConfig(ctx, optFns...)
}
