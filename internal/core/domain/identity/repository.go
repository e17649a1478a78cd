package identity

import (
	"context"
	c "unitactivity/internal/core/domain/common"
)

// Repository gives access to one identity table.
type Repository interface {
	Kind() Kind
	GetByEmail(ctx context.Context, email c.Email) (Identity, error)
	SetPasswordHash(ctx context.Context, id ID, hash PasswordHash) error
}

type PasswordHasher interface {
	HashPassword(password RawPassword) (PasswordHash, error)
	ValidatePassword(password RawPassword, hash PasswordHash) bool
}

// CredentialAdmin sets a password of an auth provider account directly.
// Hashing and persistence are up to the provider.
type CredentialAdmin interface {
	SetPassword(ctx context.Context, id AuthUserID, password RawPassword) error
}
