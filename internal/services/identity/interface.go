// Package identity is the contract for the external authentication
// collaborator. The game core never inspects credentials; it only maps
// an opaque credential to a user ID at the transport edge.
package identity

import (
	"context"
	"errors"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_verifier.go github.com/moundworks/diceball/internal/services/identity Verifier

// ErrUnauthenticated is returned for a missing or invalid credential.
var ErrUnauthenticated = errors.New("unauthenticated")

// Verifier is implemented by the identity collaborator.
type Verifier interface {
	// Verify resolves an opaque credential to a user ID
	Verify(ctx context.Context, credential string) (string, error)
}

// Insecure is a development-only verifier that treats the credential
// itself as the user ID. Never wire it in production.
type Insecure struct{}

// Verify returns the credential as the user ID.
func (Insecure) Verify(_ context.Context, credential string) (string, error) {
	if credential == "" {
		return "", ErrUnauthenticated
	}
	return credential, nil
}
