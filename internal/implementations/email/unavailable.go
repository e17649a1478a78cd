package email

import (
	"context"
	e "unitactivity/internal/core/domain/errors"
	"unitactivity/internal/core/domain/mail"
)

// UnavailableSender stands in for a provider whose settings are unusable.
// Every call fails with the settings error.
type UnavailableSender struct {
	name string
	err  error
}

func NewUnavailableSender(name string, err error) *UnavailableSender {
	if err == nil {
		panic(e.NewNilArgumentError("err"))
	}
	return &UnavailableSender{name: name, err: err}
}

func (s *UnavailableSender) Name() string {
	return s.name
}

func (s *UnavailableSender) Send(ctx context.Context, msg mail.Message) (mail.DeliveryID, error) {
	return "", s.err
}

func (s *UnavailableSender) Verify(ctx context.Context) error {
	return s.err
}
