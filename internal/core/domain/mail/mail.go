package mail

import (
	"context"
	"errors"
	c "unitactivity/internal/core/domain/common"
)

type Kind string

const (
	KindVerification  Kind = "verification"
	KindPasswordReset Kind = "password_reset"
)

var (
	ErrUnknownKind       = errors.New("unknown email kind")
	ErrIncompleteMessage = errors.New("recipient and code are required")
)

var subjects = map[Kind]string{
	KindVerification:  "Verifikasi Email - Unit Activity UKDC",
	KindPasswordReset: "Reset Password - Unit Activity UKDC",
}

func (k Kind) Subject() (string, error) {
	subject, ok := subjects[k]
	if !ok {
		return "", ErrUnknownKind
	}
	return subject, nil
}

// Code is a short numeric or alphanumeric token shown to the recipient.
type Code string

type DeliveryID string

type Message struct {
	To       c.Email
	Subject  string
	HTMLBody string
}

type Sender interface {
	Name() string
	Send(ctx context.Context, msg Message) (DeliveryID, error)
	// Verify checks that the relay is reachable and accepts the credentials.
	Verify(ctx context.Context) error
}

type Renderer interface {
	Render(kind Kind, code Code) (string, error)
}
