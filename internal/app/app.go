package app

import (
	"fmt"
	"net/http"
	"time"
	"unitactivity/internal/app/deps"
	"unitactivity/internal/app/services"
	"unitactivity/internal/core/domain/mail"
	adminupdatepassword "unitactivity/internal/http/handlers/auth/admin_update_password"
	resetpassword "unitactivity/internal/http/handlers/auth/reset_password"
	sendemail "unitactivity/internal/http/handlers/email/send_email"
	"unitactivity/internal/http/handlers/health"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

const maxRequestBodyBytes = 64 << 10

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	router := NewRouter(deps.Config.AllowedOrigins, deps.Now, deps.Metrics.Handler(), s)

	address := fmt.Sprintf("0.0.0.0:%d", deps.Config.Port)

	return &http.Server{
		Handler:           router,
		Addr:              address,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func NewRouter(
	allowedOrigins []string,
	now func() time.Time,
	metricsHandler http.Handler,
	s *services.Services,
) http.Handler {
	apiRouter := chi.NewRouter()
	apiRouter.Method(
		http.MethodPost,
		"/send-verification-email",
		sendemail.New(s.SendEmail, mail.KindVerification, sendemail.VerificationMessages),
	)
	apiRouter.Method(
		http.MethodPost,
		"/send-password-reset-email",
		sendemail.New(s.SendEmail, mail.KindPasswordReset, sendemail.PasswordResetMessages),
	)
	apiRouter.Method(http.MethodPost, "/reset-password", resetpassword.New(s.ResetPassword))
	apiRouter.Method(http.MethodPost, "/admin-update-password", adminupdatepassword.New(s.AdminSetPassword))
	apiRouter.Method(http.MethodGet, "/health", health.New(now))

	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestSize(maxRequestBodyBytes))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	router.Mount("/api", apiRouter)
	router.Method(http.MethodGet, "/metrics", metricsHandler)

	return router
}
