package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"unitactivity/internal/app"
	"unitactivity/internal/app/deps"
	"unitactivity/internal/app/services"

	dl "unitactivity/internal/core/domain/logging"

	"github.com/joho/godotenv"
)

// In-flight sends may wait on the mail relay for up to EMAIL_TIMEOUT.
const drainTimeout = 45 * time.Second

var routes = []string{
	"POST /api/send-verification-email",
	"POST /api/send-password-reset-email",
	"POST /api/reset-password",
	"POST /api/admin-update-password",
	"GET /api/health",
	"GET /metrics",
}

func main() {
	// A missing .env is fine, the environment may be provided by the platform.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, closeDeps := deps.InitDeps()
	services := services.InitServices(deps)
	server := app.InitHttpServer(deps, services)

	deps.Logger.Info(
		ctx,
		"Unit activity service is listening.",
		dl.Entry("address", server.Addr),
		dl.Entry("routes", routes),
		dl.Entry("allowedOrigins", deps.Config.AllowedOrigins),
		dl.Entry("emailProvider", deps.EmailSender.Name()),
		dl.Entry("emailReady", deps.EmailReady),
		dl.Entry("isTestMode", deps.Config.IsTestMode),
	)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		deps.Logger.Info(context.Background(), "Stop signal received, draining requests.")
	case err := <-serverErr:
		if !errors.Is(err, http.ErrServerClosed) {
			deps.Logger.Error(context.Background(), "HTTP server failed.", dl.Entry("err", err))
		}
	}

	drain(server, deps)
	closeDeps()
}

// drain stops accepting requests and waits for pending sends and password
// writes. The database pool is closed afterwards by closeDeps.
func drain(server *http.Server, deps *deps.Deps) {
	ctx, cancel := context.WithTimeout(context.Background(), drainTimeout)
	defer cancel()

	startedAt := time.Now()
	if err := server.Shutdown(ctx); err != nil {
		deps.Logger.Error(ctx, "Requests did not drain in time.", dl.Entry("err", err))
		_ = server.Close()
		return
	}
	deps.Logger.Info(ctx, "Requests drained.", dl.Entry("took", time.Since(startedAt).String()))
}
