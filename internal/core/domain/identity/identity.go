package identity

import (
	"fmt"
	c "unitactivity/internal/core/domain/common"
	e "unitactivity/internal/core/domain/errors"
)

type Kind string

const (
	KindUser  Kind = "user"
	KindAdmin Kind = "admin"
)

func (k Kind) String() string {
	return string(k)
}

type ID int64

// AuthUserID identifies an account of the auth provider. It is not related to
// the numeric ids of the identity tables.
type AuthUserID string

type PasswordHash string

func (p PasswordHash) String() string {
	return "***"
}

type RawPassword string

func (p RawPassword) String() string {
	return "***"
}

type Identity struct {
	ID           ID
	Kind         Kind
	Email        c.Email
	PasswordHash PasswordHash
}

func (i *Identity) Validate() error {
	if i.PasswordHash == "" {
		return e.NewInvalidStateError(fmt.Sprintf("password hash is not set for %s %d", i.Kind, i.ID))
	}
	return nil
}
