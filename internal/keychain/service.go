// Package keychain stores provider API keys in the OS credential store.
package keychain

import (
	"errors"

	"github.com/zalando/go-keyring"
)

const serviceName = "macbot"

// Service is bound to the frontend so the wizard can offer keychain storage
// beside the plaintext .env flow.
type Service struct{}

func New() *Service {
	return &Service{}
}

func (s *Service) Store(provider, apiKey string) error {
	if provider == "" {
		return errors.New("provider is required")
	}
	if apiKey == "" {
		return errors.New("api key is empty")
	}
	return keyring.Set(serviceName, provider, apiKey)
}

func (s *Service) Get(provider string) (string, error) {
	if provider == "" {
		return "", errors.New("provider is required")
	}
	return keyring.Get(serviceName, provider)
}

func (s *Service) Delete(provider string) error {
	if provider == "" {
		return errors.New("provider is required")
	}
	return keyring.Delete(serviceName, provider)
}
