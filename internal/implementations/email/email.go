package email

import (
	"context"
	"unitactivity/internal/core/domain/logging"
	"unitactivity/internal/core/domain/mail"
)

// VerifySender checks the mail relay once. A failure is only logged: requests
// keep being accepted and report relay errors one by one.
func VerifySender(ctx context.Context, log logging.Logger, sender mail.Sender) bool {
	if err := sender.Verify(ctx); err != nil {
		log.Error(
			ctx,
			"Email sender verification failed.",
			logging.Entry("sender", sender.Name()),
			logging.Entry("err", err),
		)
		return false
	}
	log.Info(ctx, "Email sender is ready to send messages.", logging.Entry("sender", sender.Name()))
	return true
}
