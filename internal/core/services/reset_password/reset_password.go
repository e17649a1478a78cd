package reset_password

import (
	"context"
	"errors"
	"fmt"
	c "unitactivity/internal/core/domain/common"
	e "unitactivity/internal/core/domain/errors"
	"unitactivity/internal/core/domain/identity"
	"unitactivity/internal/core/domain/logging"
	"unitactivity/internal/core/domain/metrics"
	"unitactivity/internal/core/services"
)

// ErrUpdateFailed wraps errors of the final password write, so callers can
// tell them apart from lookup errors.
var ErrUpdateFailed = errors.New("could not update password")

type Input struct {
	Email       c.Email
	NewPassword identity.RawPassword
}

type Result struct {
	Kind identity.Kind
	ID   identity.ID
}

type service struct {
	log            logging.Logger
	metrics        metrics.Recorder
	passwordHasher identity.PasswordHasher
	// Lookup order. The first table holding the email owns it.
	repositories []identity.Repository
}

func New(
	log logging.Logger,
	metrics metrics.Recorder,
	passwordHasher identity.PasswordHasher,
	users identity.Repository,
	admins identity.Repository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if metrics == nil {
		panic(e.NewNilArgumentError("metrics"))
	}
	if passwordHasher == nil {
		panic(e.NewNilArgumentError("passwordHasher"))
	}
	if users == nil {
		panic(e.NewNilArgumentError("users"))
	}
	if admins == nil {
		panic(e.NewNilArgumentError("admins"))
	}
	return &service{
		log:            log,
		metrics:        metrics,
		passwordHasher: passwordHasher,
		repositories:   []identity.Repository{users, admins},
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	email := c.NewEmail(string(input.Email))
	if email.IsZero() || input.NewPassword == "" {
		return result, identity.ErrMissingFields
	}

	for _, repo := range s.repositories {
		found, err := repo.GetByEmail(ctx, email)
		if errors.Is(err, identity.ErrIdentityDoesNotExist) {
			continue
		}
		if errors.Is(err, context.Canceled) {
			return result, err
		}
		if err != nil {
			s.log.Error(
				ctx,
				"Could not look up identity for password reset.",
				logging.Entry("kind", repo.Kind()),
				logging.Entry("email", email),
				logging.Entry("err", err),
			)
			s.metrics.PasswordUpdated(metrics.PathReset, metrics.OutcomeFailure)
			return result, err
		}
		return s.replacePassword(ctx, repo, found, input.NewPassword)
	}

	s.log.Info(ctx, "Identity not found for password reset.", logging.Entry("email", email))
	s.metrics.PasswordUpdated(metrics.PathReset, metrics.OutcomeRejected)
	return result, identity.ErrIdentityDoesNotExist
}

func (s *service) replacePassword(
	ctx context.Context,
	repo identity.Repository,
	found identity.Identity,
	newPassword identity.RawPassword,
) (result Result, err error) {
	if s.passwordHasher.ValidatePassword(newPassword, found.PasswordHash) {
		s.log.Info(
			ctx,
			"New password matches the current one.",
			logging.Entry("kind", found.Kind),
			logging.Entry("id", found.ID),
		)
		s.metrics.PasswordUpdated(metrics.PathReset, metrics.OutcomeRejected)
		return result, identity.ErrSamePassword
	}

	newPasswordHash, err := s.passwordHasher.HashPassword(newPassword)
	if err != nil {
		logging.Error(ctx, s.log, err, logging.Entry("kind", found.Kind), logging.Entry("id", found.ID))
		s.metrics.PasswordUpdated(metrics.PathReset, metrics.OutcomeFailure)
		return result, err
	}

	err = repo.SetPasswordHash(ctx, found.ID, newPasswordHash)
	if err != nil {
		s.log.Error(
			ctx,
			"Could not update password.",
			logging.Entry("kind", found.Kind),
			logging.Entry("id", found.ID),
			logging.Entry("err", err),
		)
		s.metrics.PasswordUpdated(metrics.PathReset, metrics.OutcomeFailure)
		return result, fmt.Errorf("%w: %w", ErrUpdateFailed, err)
	}

	s.log.Info(
		ctx,
		"Password has been successfully reset.",
		logging.Entry("kind", found.Kind),
		logging.Entry("id", found.ID),
	)
	s.metrics.PasswordUpdated(metrics.PathReset, metrics.OutcomeSuccess)
	return Result{Kind: found.Kind, ID: found.ID}, nil
}
