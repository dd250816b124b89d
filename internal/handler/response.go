package handler

import "encoding/json"

// Request is the platform-agnostic request descriptor. Only query parameters
// matter; a nil map means no parameters were supplied.
type Request struct {
	// ID is a unique identifier for the request (for tracing)
	ID string

	// QueryParams holds the raw query string parameters, may be nil
	QueryParams map[string]string
}

// Response is the API Gateway-shaped response envelope.
type Response struct {
	StatusCode int               `json:"statusCode"`
	Headers    map[string]string `json:"headers"`
	Body       string            `json:"body"`
}

// NewResponse builds a response envelope with the fixed CORS header set.
// Extra headers override the defaults on key collision. The body is
// serialized to JSON.
func NewResponse(statusCode int, body interface{}, extraHeaders map[string]string) Response {
	headers := map[string]string{
		"Content-Type":                 "application/json",
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Headers": "Content-Type,X-Amz-Date,Authorization,X-Api-Key,X-Amz-Security-Token",
		"Access-Control-Allow-Methods": "GET,OPTIONS",
	}
	for k, v := range extraHeaders {
		headers[k] = v
	}

	encoded, err := json.Marshal(body)
	if err != nil {
		return Response{
			StatusCode: 500,
			Headers:    headers,
			Body:       `{"error":"Internal server error","message":"Failed to encode response body"}`,
		}
	}

	return Response{
		StatusCode: statusCode,
		Headers:    headers,
		Body:       string(encoded),
	}
}
