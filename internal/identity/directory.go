package identity

import (
	"context"
	"errors"
	"time"

	"github.com/kith-app/kith/pkg/domain"
	derrors "github.com/kith-app/kith/pkg/domain-errors"
)

// Store is the persistence surface behind the directory. Implementations
// must treat user IDs as the single source of identity.
type Store interface {
	Save(ctx context.Context, ident *Identity) error
	FindByID(ctx context.Context, id domain.UserID) (*Identity, error)
	Delete(ctx context.Context, id domain.UserID) error
}

// Directory is the user-level surface of the identity collaborator. It holds
// no privileged operations: nothing reachable through it can mutate another
// account.
type Directory struct {
	tokens *TokenService
	store  Store
}

func NewDirectory(tokens *TokenService, store Store) *Directory {
	return &Directory{tokens: tokens, store: store}
}

// VerifyBearer resolves a session credential to the identity it is bound to.
// A syntactically valid token whose identity no longer exists fails exactly
// like a forged one: the caller cannot distinguish the two.
func (d *Directory) VerifyBearer(ctx context.Context, token string) (*Identity, error) {
	claims, err := d.tokens.ValidateToken(token)
	if err != nil {
		return nil, err
	}

	userID, err := domain.ParseUserID(claims.UserID)
	if err != nil {
		return nil, derrors.New(derrors.CodeUnauthorized, "invalid token subject")
	}

	ident, err := d.store.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, derrors.New(derrors.CodeUnauthorized, "unknown identity")
		}
		return nil, derrors.Wrap(err, derrors.CodeInternal, "identity lookup failed")
	}
	return ident, nil
}

// CredentialInfo exposes a credential's ID and expiry so revocation entries
// can match the token's remaining lifetime.
func (d *Directory) CredentialInfo(token string) (jti string, expiresAt time.Time, err error) {
	claims, err := d.tokens.ValidateToken(token)
	if err != nil {
		return "", time.Time{}, err
	}
	if claims.ExpiresAt == nil {
		return "", time.Time{}, derrors.New(derrors.CodeUnauthorized, "token has no expiry")
	}
	return claims.ID, claims.ExpiresAt.Time, nil
}

// ServiceCredential is the elevated credential required to construct the
// admin capability. It is a distinct type, never derived from a session
// credential, so privileged operations stay structurally separate from the
// end-user path.
type ServiceCredential struct {
	secret string
}

// NewServiceCredential wraps a configured service secret. Empty secrets are
// rejected so a misconfigured deployment cannot silently mint admin access.
func NewServiceCredential(secret string) (ServiceCredential, error) {
	if secret == "" {
		return ServiceCredential{}, derrors.New(derrors.CodeUnauthorized, "service credential required")
	}
	return ServiceCredential{secret: secret}, nil
}

// Admin is the privileged surface of the identity collaborator. Only code
// holding a ServiceCredential can construct one.
type Admin struct {
	store Store
}

// NewAdmin constructs the admin capability. The zero ServiceCredential is
// rejected, which keeps `identity.Admin{}` literals unusable.
func NewAdmin(store Store, cred ServiceCredential) (*Admin, error) {
	if cred.secret == "" {
		return nil, derrors.New(derrors.CodeUnauthorized, "service credential required")
	}
	return &Admin{store: store}, nil
}

// DeleteIdentity removes the identity record. Deleting an identity that is
// already gone reports success: the operation is declarative and retries
// after partial failures must converge.
func (a *Admin) DeleteIdentity(ctx context.Context, id domain.UserID) error {
	if id.IsNil() {
		return derrors.New(derrors.CodeBadRequest, "user ID required")
	}
	err := a.store.Delete(ctx, id)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return derrors.Wrap(err, derrors.CodeIdentityDeletionFailed, "failed to delete identity")
	}
	return nil
}
