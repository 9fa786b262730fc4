package domain

import (
	"fmt"
	"strings"
)

// CredentialPolicy decides where the upstream bearer credential comes from.
type CredentialPolicy string

const (
	// CredentialHeaderOverride forwards the caller's Authorization header and
	// falls back to the configured key when the header is absent.
	CredentialHeaderOverride CredentialPolicy = "header_override"
	// CredentialServerKey always uses the configured key.
	CredentialServerKey CredentialPolicy = "server_key"
)

func ParseCredentialPolicy(s string) (CredentialPolicy, error) {
	switch p := CredentialPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case CredentialHeaderOverride, CredentialServerKey:
		return p, nil
	case "":
		return CredentialHeaderOverride, nil
	default:
		return "", fmt.Errorf("unknown credential policy %q", s)
	}
}

// CredentialResolver picks the upstream credential for one request.
type CredentialResolver struct {
	Policy     CredentialPolicy
	DefaultKey string
}

func NewCredentialResolver(policy CredentialPolicy, defaultKey string) CredentialResolver {
	return CredentialResolver{Policy: policy, DefaultKey: defaultKey}
}

// Resolve returns the bare token (no scheme) for the given Authorization
// header value, or ErrMissingCredential.
func (r CredentialResolver) Resolve(authHeader string) (string, error) {
	if r.Policy != CredentialServerKey {
		if token := stripBearer(authHeader); token != "" {
			return token, nil
		}
	}
	if key := strings.TrimSpace(r.DefaultKey); key != "" {
		return key, nil
	}
	return "", ErrMissingCredential
}

func stripBearer(header string) string {
	header = strings.TrimSpace(header)
	if strings.EqualFold(header, "bearer") {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
		return strings.TrimSpace(parts[1])
	}
	return header
}
