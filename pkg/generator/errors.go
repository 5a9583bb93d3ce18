package generator

import (
	"errors"
	"strings"
)

var (
	// ErrNoContent means the model returned nothing usable. The caller shows
	// a generic retry message and clears any pending state.
	ErrNoContent = errors.New("no destination content generated")

	// ErrCredential means the configured key or entitlement was rejected.
	// Surfaced separately so the user is told to re-select a key instead of
	// retrying the same request.
	ErrCredential = errors.New("invalid or unentitled API credential")
)

var credentialMarkers = []string{
	"api key",
	"api_key_invalid",
	"permission_denied",
	"unauthenticated",
	"unauthorized",
	"invalid authentication",
	"401",
	"403",
}

// IsCredentialError reports whether err looks like a rejected credential
// rather than a transient failure. Provider SDKs do not share an error
// type, so this matches on the message.
func IsCredentialError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrCredential) {
		return true
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range credentialMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
