// Package apikey checks provider API keys with a live call.
package apikey

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// Verifier validates a key against an OpenAI-compatible API.
type Verifier struct {
	baseURL string
}

func NewVerifier() *Verifier {
	return &Verifier{}
}

// NewVerifierWithBaseURL targets a different OpenAI-compatible endpoint.
func NewVerifierWithBaseURL(baseURL string) *Verifier {
	return &Verifier{baseURL: baseURL}
}

// Verify issues a models listing with the key. A rejected key reports
// (false, nil) so the wizard can show "invalid key"; transport failures are
// returned so it can show "check your connection" instead.
func (v *Verifier) Verify(ctx context.Context, key string) (bool, error) {
	if strings.TrimSpace(key) == "" {
		return false, nil
	}

	cfg := openai.DefaultConfig(key)
	if v.baseURL != "" {
		cfg.BaseURL = v.baseURL
	}
	client := openai.NewClientWithConfig(cfg)

	if _, err := client.ListModels(ctx); err != nil {
		if isAuthError(err) {
			return false, nil
		}
		return false, fmt.Errorf("verify api key: %w", err)
	}
	return true, nil
}

func isAuthError(err error) bool {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode == http.StatusUnauthorized ||
			apiErr.HTTPStatusCode == http.StatusForbidden
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode == http.StatusUnauthorized ||
			reqErr.HTTPStatusCode == http.StatusForbidden
	}
	return false
}
