// Package auth supplies the API credential to the HTTP layer.
package auth

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Static errors for err113 compliance.
var (
	ErrAPIKeyEmpty    = errors.New("API key is empty")
	ErrEnvVarNotSet   = errors.New("environment variable not set")
	ErrNoKeyAvailable = errors.New("no API key available from any provider")
)

// KeyProvider exposes a single credential string. The HTTP layer reads it
// once per request and never stores it elsewhere.
type KeyProvider interface {
	APIKey(ctx context.Context) (string, error)
}

// StaticKeyProvider returns a fixed key.
type StaticKeyProvider struct {
	key string
}

// NewStaticKeyProvider creates a provider for a fixed key.
func NewStaticKeyProvider(key string) (*StaticKeyProvider, error) {
	if strings.TrimSpace(key) == "" {
		return nil, ErrAPIKeyEmpty
	}

	return &StaticKeyProvider{key: key}, nil
}

// APIKey implements KeyProvider.
func (p *StaticKeyProvider) APIKey(ctx context.Context) (string, error) {
	return p.key, nil
}

// EnvKeyProvider reads the key from an environment variable on every call,
// so rotated values are picked up without rebuilding the client.
type EnvKeyProvider struct {
	envVar string
}

// NewEnvKeyProvider creates a provider reading the named variable.
func NewEnvKeyProvider(envVar string) *EnvKeyProvider {
	return &EnvKeyProvider{envVar: envVar}
}

// APIKey implements KeyProvider.
func (p *EnvKeyProvider) APIKey(ctx context.Context) (string, error) {
	key := os.Getenv(p.envVar)
	if key == "" {
		return "", fmt.Errorf("%w: %s", ErrEnvVarNotSet, p.envVar)
	}

	return key, nil
}

// ChainKeyProvider asks each provider in order and returns the first key.
type ChainKeyProvider struct {
	providers []KeyProvider
}

// NewChainKeyProvider creates a provider trying each given provider in order.
func NewChainKeyProvider(providers ...KeyProvider) *ChainKeyProvider {
	return &ChainKeyProvider{providers: providers}
}

// APIKey implements KeyProvider.
func (p *ChainKeyProvider) APIKey(ctx context.Context) (string, error) {
	for _, provider := range p.providers {
		key, err := provider.APIKey(ctx)
		if err == nil && key != "" {
			return key, nil
		}
	}

	return "", ErrNoKeyAvailable
}
