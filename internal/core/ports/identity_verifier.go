package ports

import (
	"context"

	"forwarding/internal/core/domain/model/account"
)

// IdentityVerifier resolves a bearer session token to the verified actor
// behind it. Backed by the account service; every role-gated operation runs
// through it before touching domain state.
type IdentityVerifier interface {
	Verify(ctx context.Context, sessionToken string) (account.Actor, error)
}
