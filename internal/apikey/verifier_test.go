package apikey

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func modelsServer(t *testing.T, validKey string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/models" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if r.Header.Get("Authorization") != "Bearer "+validKey {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":{"message":"Incorrect API key provided","type":"invalid_request_error","code":"invalid_api_key"}}`))
			return
		}
		w.Write([]byte(`{"object":"list","data":[{"id":"gpt-4o","object":"model"}]}`))
	}))
}

func TestVerifyAcceptsValidKey(t *testing.T) {
	srv := modelsServer(t, "sk-valid")
	defer srv.Close()

	verifier := NewVerifierWithBaseURL(srv.URL + "/v1")
	ok, err := verifier.Verify(context.Background(), "sk-valid")
	assert.NoError(t, err)
	assert.True(t, ok)
}

func TestVerifyRejectsBadKeyWithoutError(t *testing.T) {
	srv := modelsServer(t, "sk-valid")
	defer srv.Close()

	verifier := NewVerifierWithBaseURL(srv.URL + "/v1")
	ok, err := verifier.Verify(context.Background(), "sk-wrong")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyEmptyKeyShortCircuits(t *testing.T) {
	verifier := NewVerifierWithBaseURL("http://invalid.invalid/v1")
	ok, err := verifier.Verify(context.Background(), "   ")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyReportsTransportFailure(t *testing.T) {
	srv := modelsServer(t, "sk-valid")
	srv.Close()

	verifier := NewVerifierWithBaseURL(srv.URL + "/v1")
	ok, err := verifier.Verify(context.Background(), "sk-valid")
	assert.Error(t, err)
	assert.False(t, ok)
}
