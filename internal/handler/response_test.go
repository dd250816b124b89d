package handler

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewResponseDefaultHeaders(t *testing.T) {
	resp := NewResponse(200, map[string]string{"ok": "true"}, nil)

	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Headers["Content-Type"])
	assert.Equal(t, "*", resp.Headers["Access-Control-Allow-Origin"])
	assert.Equal(t, "Content-Type,X-Amz-Date,Authorization,X-Api-Key,X-Amz-Security-Token",
		resp.Headers["Access-Control-Allow-Headers"])
	assert.Equal(t, "GET,OPTIONS", resp.Headers["Access-Control-Allow-Methods"])
}

func TestNewResponseExtraHeadersOverride(t *testing.T) {
	resp := NewResponse(200, nil, map[string]string{
		"Content-Type":  "text/plain",
		"Cache-Control": "no-store",
	})

	assert.Equal(t, "text/plain", resp.Headers["Content-Type"], "override wins on collision")
	assert.Equal(t, "no-store", resp.Headers["Cache-Control"])
	assert.Equal(t, "*", resp.Headers["Access-Control-Allow-Origin"], "defaults remain")
}

func TestNewResponseBodyIsJSONString(t *testing.T) {
	resp := NewResponse(400, errorBody{Error: "Invalid request", Message: "bad max_keys"}, nil)

	var body errorBody
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &body))
	assert.Equal(t, "Invalid request", body.Error)
	assert.Equal(t, "bad max_keys", body.Message)
}

func TestNewResponseUnencodableBody(t *testing.T) {
	resp := NewResponse(200, make(chan int), nil)

	assert.Equal(t, 500, resp.StatusCode)
	assert.Contains(t, resp.Body, "Internal server error")
}
