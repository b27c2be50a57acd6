package auth

import (
	"os"
	"strings"
)

// SecretProvider yields the token signing secret, if it has one.
type SecretProvider interface {
	Secret() (string, bool)
}

// SecretProviderFunc adapts a function to SecretProvider.
type SecretProviderFunc func() (string, bool)

func (f SecretProviderFunc) Secret() (string, bool) { return f() }

// EnvSecret reads the secret from an environment variable on every call.
func EnvSecret(key string) SecretProvider {
	return SecretProviderFunc(func() (string, bool) {
		v := os.Getenv(key)
		return v, v != ""
	})
}

// FileSecret reads the secret from a mounted file on every call, so rotated
// secrets are picked up without a restart. Surrounding whitespace is trimmed.
func FileSecret(path string) SecretProvider {
	return SecretProviderFunc(func() (string, bool) {
		if path == "" {
			return "", false
		}
		b, err := os.ReadFile(path)
		if err != nil {
			return "", false
		}
		v := strings.TrimSpace(string(b))
		return v, v != ""
	})
}

// StaticSecret always returns v. Empty v means no secret.
func StaticSecret(v string) SecretProvider {
	return SecretProviderFunc(func() (string, bool) {
		return v, v != ""
	})
}

// SecretChain tries each provider in order; the first non-empty secret wins.
func SecretChain(providers ...SecretProvider) SecretProvider {
	return SecretProviderFunc(func() (string, bool) {
		for _, p := range providers {
			if p == nil {
				continue
			}
			if v, ok := p.Secret(); ok && v != "" {
				return v, true
			}
		}
		return "", false
	})
}

func resolveSecret(p SecretProvider) ([]byte, error) {
	if p == nil {
		return nil, ErrConfiguration
	}
	v, ok := p.Secret()
	if !ok || v == "" {
		return nil, ErrConfiguration
	}
	return []byte(v), nil
}
