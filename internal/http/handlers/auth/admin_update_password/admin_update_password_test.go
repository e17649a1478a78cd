package adminupdatepassword

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unitactivity/internal/core/domain/identity"
	"unitactivity/internal/core/domain/logging"
	"unitactivity/internal/core/domain/metrics"
	adminsetpassword "unitactivity/internal/core/services/admin_set_password"
	supabaseadmin "unitactivity/internal/implementations/supabase_admin"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createHandler() (*Handler, *identity.FakeCredentialAdmin) {
	admin := identity.NewFakeCredentialAdmin()
	service := adminsetpassword.New(logging.NewFakeLogger(), metrics.NopRecorder{}, admin)
	return New(service), admin
}

func TestAdminUpdatePasswordHandler(t *testing.T) {
	cases := []struct {
		id             string
		body           string
		expectedStatus int
		expectedBody   string
		expectedCalls  int
	}{
		{
			id:             "success",
			body:           `{"userId": "6f1c1e0e-1b7a-4c55-9d3e-0d1f1c2b3a4d", "newPassword": "Secret123!"}`,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"success": true, "message": "Password berhasil diupdate"}`,
			expectedCalls:  1,
		},
		{
			id:             "long password",
			body:           `{"userId": "u-1", "newPassword": "` + strings.Repeat("Aa1!", 100) + `"}`,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"success": true, "message": "Password berhasil diupdate"}`,
			expectedCalls:  1,
		},
		{
			id:             "missing user id",
			body:           `{"newPassword": "Secret123!"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody: `{
				"success": false,
				"error": "User ID dan password baru wajib diisi",
				"code": "MISSING_FIELDS"
			}`,
		},
		{
			id:             "too short",
			body:           `{"userId": "u-1", "newPassword": "Se1!"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody: `{
				"success": false,
				"error": "Password minimal 8 karakter",
				"code": "PASSWORD_TOO_SHORT"
			}`,
		},
		{
			id:             "no uppercase",
			body:           `{"userId": "u-1", "newPassword": "secret123!"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody: `{
				"success": false,
				"error": "Password harus mengandung minimal 1 huruf kapital",
				"code": "NO_UPPERCASE"
			}`,
		},
		{
			id:             "no number",
			body:           `{"userId": "u-1", "newPassword": "Secretpass!"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody: `{
				"success": false,
				"error": "Password harus mengandung minimal 1 angka",
				"code": "NO_NUMBER"
			}`,
		},
		{
			id:             "no symbol",
			body:           `{"userId": "u-1", "newPassword": "Secret1234"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody: `{
				"success": false,
				"error": "Password harus mengandung minimal 1 simbol (!@#$%^&*)",
				"code": "NO_SYMBOL"
			}`,
		},
		{
			id:             "malformed json",
			body:           `[`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"success": false, "error": "Data permintaan tidak valid"}`,
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			handler, admin := createHandler()

			req := httptest.NewRequest(
				http.MethodPost,
				"/api/admin-update-password",
				strings.NewReader(testcase.body),
			)
			rw := httptest.NewRecorder()
			handler.ServeHTTP(rw, req)

			assert.Equal(t, testcase.expectedStatus, rw.Code)
			assert.JSONEq(t, testcase.expectedBody, rw.Body.String())
			assert.Equal(t, testcase.expectedCalls, admin.CallCount())
		})
	}
}

func TestAdminUpdatePasswordHandlerRendersAPIError(t *testing.T) {
	handler, admin := createHandler()
	admin.ReturnError = &supabaseadmin.APIError{Status: http.StatusNotFound, Message: "User not found"}

	req := httptest.NewRequest(
		http.MethodPost,
		"/api/admin-update-password",
		strings.NewReader(`{"userId": "u-1", "newPassword": "Secret123!"}`),
	)
	rw := httptest.NewRecorder()
	handler.ServeHTTP(rw, req)

	require.Equal(t, http.StatusInternalServerError, rw.Code)
	require.JSONEq(t, `{
		"success": false,
		"error": "Gagal mengupdate password",
		"details": "User not found"
	}`, rw.Body.String())
	require.Equal(t, 1, admin.CallCount())
}
