package resetpassword

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	c "unitactivity/internal/core/domain/common"
	e "unitactivity/internal/core/domain/errors"
	"unitactivity/internal/core/domain/identity"
	"unitactivity/internal/core/services"
	resetpassword "unitactivity/internal/core/services/reset_password"
	"unitactivity/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
)

const (
	missingFieldsMessage = "Email dan password baru wajib diisi"
	samePasswordMessage  = "Password baru tidak boleh sama dengan password lama"
	notFoundMessage      = "Email tidak terdaftar"
	updateFailedMessage  = "Gagal mereset password"
	unexpectedMessage    = "Terjadi kesalahan saat reset password"
	successMessage       = "Password berhasil direset"
)

type Handler struct {
	service services.Service[resetpassword.Input, resetpassword.Result]
}

func New(
	service services.Service[resetpassword.Input, resetpassword.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Input struct {
	Email       string `json:"email"`
	NewPassword string `json:"newPassword"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Email, validation.Required),
		validation.Field(&i.NewPassword, validation.Required),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderInvalidRequest(rw)
		return
	}
	if err := input.Validate(); err != nil {
		response.RenderErrorWithCode(rw, missingFieldsMessage, identity.CodeMissingFields, http.StatusBadRequest)
		return
	}

	_, err := h.service.Run(
		r.Context(),
		resetpassword.Input{
			Email:       c.Email(input.Email),
			NewPassword: identity.RawPassword(input.NewPassword),
		},
	)
	switch {
	case err == nil:
		response.RenderSuccess(rw, successMessage)
	case errors.Is(err, identity.ErrMissingFields):
		response.RenderErrorWithCode(rw, missingFieldsMessage, identity.CodeMissingFields, http.StatusBadRequest)
	case errors.Is(err, identity.ErrSamePassword):
		response.RenderErrorWithCode(rw, samePasswordMessage, identity.CodeSamePassword, http.StatusBadRequest)
	case errors.Is(err, resetpassword.ErrUpdateFailed):
		// A write may fail with not-found after a successful lookup. That is
		// a store failure, not an unknown email.
		response.RenderErrorWithDetails(rw, updateFailedMessage, err, http.StatusInternalServerError)
	case errors.Is(err, identity.ErrIdentityDoesNotExist):
		response.RenderErrorWithCode(rw, notFoundMessage, identity.CodeNotFound, http.StatusNotFound)
	default:
		response.RenderErrorWithDetails(rw, unexpectedMessage, err, http.StatusInternalServerError)
	}
}
