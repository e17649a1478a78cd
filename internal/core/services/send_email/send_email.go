package send_email

import (
	"context"
	c "unitactivity/internal/core/domain/common"
	e "unitactivity/internal/core/domain/errors"
	"unitactivity/internal/core/domain/logging"
	"unitactivity/internal/core/domain/mail"
	"unitactivity/internal/core/domain/metrics"
	"unitactivity/internal/core/services"
)

type Input struct {
	Kind      mail.Kind
	Code      mail.Code
	Recipient c.Email
}

type Result struct {
	DeliveryID mail.DeliveryID
}

type service struct {
	log      logging.Logger
	metrics  metrics.Recorder
	renderer mail.Renderer
	sender   mail.Sender
}

func New(
	log logging.Logger,
	metrics metrics.Recorder,
	renderer mail.Renderer,
	sender mail.Sender,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if metrics == nil {
		panic(e.NewNilArgumentError("metrics"))
	}
	if renderer == nil {
		panic(e.NewNilArgumentError("renderer"))
	}
	if sender == nil {
		panic(e.NewNilArgumentError("sender"))
	}
	return &service{log: log, metrics: metrics, renderer: renderer, sender: sender}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if input.Recipient.IsZero() || input.Code == "" {
		return result, mail.ErrIncompleteMessage
	}

	subject, err := input.Kind.Subject()
	if err != nil {
		return result, err
	}
	body, err := s.renderer.Render(input.Kind, input.Code)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("kind", input.Kind))
		return result, err
	}

	deliveryID, err := s.sender.Send(ctx, mail.Message{
		To:       input.Recipient,
		Subject:  subject,
		HTMLBody: body,
	})
	if err != nil {
		s.log.Error(
			ctx,
			"Could not send email.",
			logging.Entry("kind", input.Kind),
			logging.Entry("sender", s.sender.Name()),
			logging.Entry("err", err),
		)
		s.metrics.EmailSent(string(input.Kind), metrics.OutcomeFailure)
		return result, err
	}

	s.log.Info(
		ctx,
		"Email has been sent.",
		logging.Entry("kind", input.Kind),
		logging.Entry("sender", s.sender.Name()),
		logging.Entry("deliveryID", deliveryID),
	)
	s.metrics.EmailSent(string(input.Kind), metrics.OutcomeSuccess)
	return Result{DeliveryID: deliveryID}, nil
}
