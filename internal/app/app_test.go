package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unitactivity/internal/app/services"
	"unitactivity/internal/core/domain/mail"
	coreservices "unitactivity/internal/core/services"
	adminsetpassword "unitactivity/internal/core/services/admin_set_password"
	resetpassword "unitactivity/internal/core/services/reset_password"
	sendemail "unitactivity/internal/core/services/send_email"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testSuite struct {
	sendInputs []sendemail.Input
	router     http.Handler
}

func setupSuite(allowedOrigins ...string) *testSuite {
	s := &testSuite{}
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	srv := &services.Services{
		SendEmail: coreservices.ServiceFunc[sendemail.Input, sendemail.Result](
			func(ctx context.Context, input sendemail.Input) (sendemail.Result, error) {
				s.sendInputs = append(s.sendInputs, input)
				return sendemail.Result{DeliveryID: "<id@ukdc.ac.id>"}, nil
			},
		),
		ResetPassword: coreservices.ServiceFunc[resetpassword.Input, resetpassword.Result](
			func(ctx context.Context, input resetpassword.Input) (resetpassword.Result, error) {
				return resetpassword.Result{}, nil
			},
		),
		AdminSetPassword: coreservices.ServiceFunc[adminsetpassword.Input, adminsetpassword.Result](
			func(ctx context.Context, input adminsetpassword.Input) (adminsetpassword.Result, error) {
				return adminsetpassword.Result{}, nil
			},
		),
	}
	metricsHandler := http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		rw.Write([]byte("emails_sent_total 0\n"))
	})
	now := func() time.Time { return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC) }
	s.router = NewRouter(allowedOrigins, now, metricsHandler, srv)
	return s
}

func (s *testSuite) do(method string, path string, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rw := httptest.NewRecorder()
	s.router.ServeHTTP(rw, req)
	return rw
}

func TestRoutes(t *testing.T) {
	cases := []struct {
		method         string
		path           string
		body           string
		expectedStatus int
	}{
		{http.MethodPost, "/api/send-verification-email", `{"email":"a@ukdc.ac.id","code":"1"}`, http.StatusOK},
		{http.MethodPost, "/api/send-password-reset-email", `{"email":"a@ukdc.ac.id","code":"1"}`, http.StatusOK},
		{http.MethodPost, "/api/reset-password", `{"email":"a@ukdc.ac.id","newPassword":"x"}`, http.StatusOK},
		{http.MethodPost, "/api/admin-update-password", `{"userId":"u","newPassword":"x"}`, http.StatusOK},
		{http.MethodGet, "/api/health", ``, http.StatusOK},
		{http.MethodGet, "/metrics", ``, http.StatusOK},
		{http.MethodGet, "/api/reset-password", ``, http.StatusMethodNotAllowed},
		{http.MethodPost, "/api/unknown", `{}`, http.StatusNotFound},
	}

	suite := setupSuite()
	for _, testcase := range cases {
		t.Run(testcase.method+" "+testcase.path, func(t *testing.T) {
			rw := suite.do(testcase.method, testcase.path, testcase.body)
			assert.Equal(t, testcase.expectedStatus, rw.Code)
		})
	}
}

func TestSendEmailRoutesUseTheirKind(t *testing.T) {
	suite := setupSuite()

	suite.do(http.MethodPost, "/api/send-verification-email", `{"email":"a@ukdc.ac.id","code":"1"}`)
	suite.do(http.MethodPost, "/api/send-password-reset-email", `{"email":"a@ukdc.ac.id","code":"2"}`)

	require.Len(t, suite.sendInputs, 2)
	assert.Equal(t, mail.KindVerification, suite.sendInputs[0].Kind)
	assert.Equal(t, mail.KindPasswordReset, suite.sendInputs[1].Kind)
}

func TestCORS(t *testing.T) {
	suite := setupSuite()

	req := httptest.NewRequest(http.MethodOptions, "/api/reset-password", nil)
	req.Header.Set("Origin", "https://ukdc.ac.id")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rw := httptest.NewRecorder()
	suite.router.ServeHTTP(rw, req)

	assert.Equal(t, "*", rw.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSRestrictedOrigins(t *testing.T) {
	suite := setupSuite("https://ukdc.ac.id")

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Origin", "https://evil.example")
	rw := httptest.NewRecorder()
	suite.router.ServeHTTP(rw, req)
	assert.Equal(t, "", rw.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("Origin", "https://ukdc.ac.id")
	rw = httptest.NewRecorder()
	suite.router.ServeHTTP(rw, req)
	assert.Equal(t, "https://ukdc.ac.id", rw.Header().Get("Access-Control-Allow-Origin"))
}

func TestOversizedBodyIsRejected(t *testing.T) {
	suite := setupSuite()
	body := `{"email":"a@ukdc.ac.id","newPassword":"` + strings.Repeat("x", maxRequestBodyBytes) + `"}`

	rw := suite.do(http.MethodPost, "/api/reset-password", body)

	assert.Equal(t, http.StatusBadRequest, rw.Code)
	assert.JSONEq(t, `{"success": false, "error": "Data permintaan tidak valid"}`, rw.Body.String())
}
