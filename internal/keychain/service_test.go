package keychain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zalando/go-keyring"
)

func TestStoreGetDelete(t *testing.T) {
	keyring.MockInit()
	service := New()

	assert.NoError(t, service.Store("openai", "sk-test"))

	key, err := service.Get("openai")
	assert.NoError(t, err)
	assert.Equal(t, "sk-test", key)

	assert.NoError(t, service.Delete("openai"))

	_, err = service.Get("openai")
	assert.Error(t, err)
}

func TestValidation(t *testing.T) {
	keyring.MockInit()
	service := New()

	assert.EqualError(t, service.Store("", "sk-test"), "provider is required")
	assert.EqualError(t, service.Store("openai", ""), "api key is empty")

	_, err := service.Get("")
	assert.EqualError(t, err, "provider is required")

	assert.EqualError(t, service.Delete(""), "provider is required")
}
