package services

import (
	"unitactivity/internal/app/deps"
	"unitactivity/internal/core/services"
	adminsetpassword "unitactivity/internal/core/services/admin_set_password"
	resetpassword "unitactivity/internal/core/services/reset_password"
	sendemail "unitactivity/internal/core/services/send_email"
)

type Services struct {
	SendEmail        services.Service[sendemail.Input, sendemail.Result]
	ResetPassword    services.Service[resetpassword.Input, resetpassword.Result]
	AdminSetPassword services.Service[adminsetpassword.Input, adminsetpassword.Result]
}

func InitServices(deps *deps.Deps) *Services {
	s := &Services{}

	s.SendEmail = sendemail.New(
		deps.Logger,
		deps.Metrics,
		deps.EmailRenderer,
		deps.EmailSender,
	)
	s.ResetPassword = resetpassword.New(
		deps.Logger,
		deps.Metrics,
		deps.PasswordHasher,
		deps.UserRepository,
		deps.AdminRepository,
	)
	s.AdminSetPassword = adminsetpassword.New(
		deps.Logger,
		deps.Metrics,
		deps.CredentialAdmin,
	)

	return s
}
