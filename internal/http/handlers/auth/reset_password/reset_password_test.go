package resetpassword

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	c "unitactivity/internal/core/domain/common"
	"unitactivity/internal/core/domain/identity"
	resetpassword "unitactivity/internal/core/services/reset_password"

	"github.com/stretchr/testify/assert"
)

var LONG_PASSWORD = strings.Repeat("Aa1!", 100)

type stubService struct {
	err   error
	input *resetpassword.Input
}

func (s *stubService) Run(ctx context.Context, input resetpassword.Input) (result resetpassword.Result, err error) {
	s.input = &input
	if s.err != nil {
		return result, s.err
	}
	return resetpassword.Result{Kind: identity.KindUser, ID: 1}, nil
}

func TestResetPasswordHandler(t *testing.T) {
	cases := []struct {
		id             string
		body           string
		serviceErr     error
		expectedStatus int
		expectedBody   string
		expectedInput  *resetpassword.Input
	}{
		{
			id:             "success",
			body:           `{"email": " Member@UKDC.ac.id", "newPassword": "Secret123!"}`,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"success": true, "message": "Password berhasil direset"}`,
			expectedInput: &resetpassword.Input{
				Email:       c.Email(" Member@UKDC.ac.id"),
				NewPassword: identity.RawPassword("Secret123!"),
			},
		},
		{
			id:             "missing password",
			body:           `{"email": "member@ukdc.ac.id"}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody: `{
				"success": false,
				"error": "Email dan password baru wajib diisi",
				"code": "MISSING_FIELDS"
			}`,
		},
		{
			id:             "malformed json",
			body:           `email=member@ukdc.ac.id`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"success": false, "error": "Data permintaan tidak valid"}`,
		},
		{
			id:             "blank email",
			body:           `{"email": "  ", "newPassword": "secret"}`,
			serviceErr:     identity.ErrMissingFields,
			expectedStatus: http.StatusBadRequest,
			expectedBody: `{
				"success": false,
				"error": "Email dan password baru wajib diisi",
				"code": "MISSING_FIELDS"
			}`,
			expectedInput: &resetpassword.Input{Email: c.Email("  "), NewPassword: identity.RawPassword("secret")},
		},
		{
			id:             "same password",
			body:           `{"email": "member@ukdc.ac.id", "newPassword": "secret"}`,
			serviceErr:     identity.ErrSamePassword,
			expectedStatus: http.StatusBadRequest,
			expectedBody: `{
				"success": false,
				"error": "Password baru tidak boleh sama dengan password lama",
				"code": "SAME_PASSWORD"
			}`,
			expectedInput: &resetpassword.Input{
				Email:       c.Email("member@ukdc.ac.id"),
				NewPassword: identity.RawPassword("secret"),
			},
		},
		{
			id:             "not found",
			body:           `{"email": "ghost@ukdc.ac.id", "newPassword": "secret"}`,
			serviceErr:     identity.ErrIdentityDoesNotExist,
			expectedStatus: http.StatusNotFound,
			expectedBody: `{
				"success": false,
				"error": "Email tidak terdaftar",
				"code": "NOT_FOUND"
			}`,
			expectedInput: &resetpassword.Input{
				Email:       c.Email("ghost@ukdc.ac.id"),
				NewPassword: identity.RawPassword("secret"),
			},
		},
		{
			id:             "update failed",
			body:           `{"email": "member@ukdc.ac.id", "newPassword": "secret"}`,
			serviceErr:     fmt.Errorf("%w: %w", resetpassword.ErrUpdateFailed, errors.New("connection reset")),
			expectedStatus: http.StatusInternalServerError,
			expectedBody: `{
				"success": false,
				"error": "Gagal mereset password",
				"details": "could not update password: connection reset"
			}`,
			expectedInput: &resetpassword.Input{
				Email:       c.Email("member@ukdc.ac.id"),
				NewPassword: identity.RawPassword("secret"),
			},
		},
		{
			id:   "write reports missing row",
			body: `{"email": "member@ukdc.ac.id", "newPassword": "secret"}`,
			serviceErr: fmt.Errorf(
				"%w: %w", resetpassword.ErrUpdateFailed, identity.ErrIdentityDoesNotExist,
			),
			expectedStatus: http.StatusInternalServerError,
			expectedBody: `{
				"success": false,
				"error": "Gagal mereset password",
				"details": "could not update password: identity does not exist"
			}`,
			expectedInput: &resetpassword.Input{
				Email:       c.Email("member@ukdc.ac.id"),
				NewPassword: identity.RawPassword("secret"),
			},
		},
		{
			id:             "long password",
			body:           `{"email": "member@ukdc.ac.id", "newPassword": "` + LONG_PASSWORD + `"}`,
			expectedStatus: http.StatusOK,
			expectedBody:   `{"success": true, "message": "Password berhasil direset"}`,
			expectedInput: &resetpassword.Input{
				Email:       c.Email("member@ukdc.ac.id"),
				NewPassword: identity.RawPassword(LONG_PASSWORD),
			},
		},
		{
			id:             "lookup failed",
			body:           `{"email": "member@ukdc.ac.id", "newPassword": "secret"}`,
			serviceErr:     errors.New("connection refused"),
			expectedStatus: http.StatusInternalServerError,
			expectedBody: `{
				"success": false,
				"error": "Terjadi kesalahan saat reset password",
				"details": "connection refused"
			}`,
			expectedInput: &resetpassword.Input{
				Email:       c.Email("member@ukdc.ac.id"),
				NewPassword: identity.RawPassword("secret"),
			},
		},
	}

	for _, testcase := range cases {
		t.Run(testcase.id, func(t *testing.T) {
			service := &stubService{err: testcase.serviceErr}
			handler := New(service)

			req := httptest.NewRequest(http.MethodPost, "/api/reset-password", strings.NewReader(testcase.body))
			rw := httptest.NewRecorder()
			handler.ServeHTTP(rw, req)

			assert.Equal(t, testcase.expectedStatus, rw.Code)
			assert.JSONEq(t, testcase.expectedBody, rw.Body.String())
			assert.Equal(t, testcase.expectedInput, service.input)
		})
	}
}
