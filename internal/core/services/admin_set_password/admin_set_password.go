package admin_set_password

import (
	"context"
	e "unitactivity/internal/core/domain/errors"
	"unitactivity/internal/core/domain/identity"
	"unitactivity/internal/core/domain/logging"
	"unitactivity/internal/core/domain/metrics"
	"unitactivity/internal/core/services"
)

type Input struct {
	UserID      identity.AuthUserID
	NewPassword identity.RawPassword
}

type Result struct{}

type service struct {
	log             logging.Logger
	metrics         metrics.Recorder
	credentialAdmin identity.CredentialAdmin
}

func New(
	log logging.Logger,
	metrics metrics.Recorder,
	credentialAdmin identity.CredentialAdmin,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if metrics == nil {
		panic(e.NewNilArgumentError("metrics"))
	}
	if credentialAdmin == nil {
		panic(e.NewNilArgumentError("credentialAdmin"))
	}
	return &service{
		log:             log,
		metrics:         metrics,
		credentialAdmin: credentialAdmin,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if input.UserID == "" || input.NewPassword == "" {
		return result, identity.ErrMissingFields
	}
	if err := identity.ValidatePasswordStrength(input.NewPassword); err != nil {
		s.metrics.PasswordUpdated(metrics.PathAdmin, metrics.OutcomeRejected)
		return result, err
	}

	s.log.Info(ctx, "Admin is updating password.", logging.Entry("userID", input.UserID))
	if err := s.credentialAdmin.SetPassword(ctx, input.UserID, input.NewPassword); err != nil {
		s.log.Error(
			ctx,
			"Could not update password.",
			logging.Entry("userID", input.UserID),
			logging.Entry("err", err),
		)
		s.metrics.PasswordUpdated(metrics.PathAdmin, metrics.OutcomeFailure)
		return result, err
	}

	s.log.Info(ctx, "Password has been successfully updated.", logging.Entry("userID", input.UserID))
	s.metrics.PasswordUpdated(metrics.PathAdmin, metrics.OutcomeSuccess)
	return result, nil
}
