// Package platform adapts the listing handler to its runtime environments:
// the AWS Lambda runtime behind API Gateway, and a plain HTTP server for
// local development.
package platform

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/google/uuid"

	"bucketlister/internal/handler"
)

// LambdaAdapter runs the handler on the AWS Lambda runtime, translating
// API Gateway proxy events.
type LambdaAdapter struct {
	handler *handler.Handler
}

// NewLambdaAdapter creates a new Lambda adapter.
func NewLambdaAdapter(h *handler.Handler) *LambdaAdapter {
	return &LambdaAdapter{handler: h}
}

// Start begins the Lambda runtime loop. It does not return.
func (a *LambdaAdapter) Start() {
	lambda.Start(a.HandleRequest)
}

// HandleRequest processes one API Gateway proxy event. A nil
// QueryStringParameters map means both query parameters take their defaults.
func (a *LambdaAdapter) HandleRequest(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	requestID := event.RequestContext.RequestID
	if requestID == "" {
		requestID = uuid.New().String()
	}

	resp := a.handler.Handle(ctx, handler.Request{
		ID:          requestID,
		QueryParams: event.QueryStringParameters,
	})

	return events.APIGatewayProxyResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       resp.Body,
	}, nil
}
