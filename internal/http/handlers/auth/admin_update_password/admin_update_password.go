package adminupdatepassword

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	e "unitactivity/internal/core/domain/errors"
	"unitactivity/internal/core/domain/identity"
	"unitactivity/internal/core/services"
	adminsetpassword "unitactivity/internal/core/services/admin_set_password"
	"unitactivity/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
)

const (
	missingFieldsMessage = "User ID dan password baru wajib diisi"
	updateFailedMessage  = "Gagal mengupdate password"
	successMessage       = "Password berhasil diupdate"
)

var policyMessages = []struct {
	err error
	msg string
}{
	{err: identity.ErrMissingFields, msg: missingFieldsMessage},
	{err: identity.ErrPasswordTooShort, msg: "Password minimal 8 karakter"},
	{err: identity.ErrNoUppercase, msg: "Password harus mengandung minimal 1 huruf kapital"},
	{err: identity.ErrNoNumber, msg: "Password harus mengandung minimal 1 angka"},
	{err: identity.ErrNoSymbol, msg: "Password harus mengandung minimal 1 simbol (!@#$%^&*)"},
}

type Handler struct {
	service services.Service[adminsetpassword.Input, adminsetpassword.Result]
}

func New(
	service services.Service[adminsetpassword.Input, adminsetpassword.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Input struct {
	UserID      string `json:"userId"`
	NewPassword string `json:"newPassword"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.UserID, validation.Required),
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
		adminsetpassword.Input{
			UserID:      identity.AuthUserID(input.UserID),
			NewPassword: identity.RawPassword(input.NewPassword),
		},
	)
	if err == nil {
		response.RenderSuccess(rw, successMessage)
		return
	}
	for _, policy := range policyMessages {
		if errors.Is(err, policy.err) {
			response.RenderErrorWithCode(rw, policy.msg, identity.Code(err), http.StatusBadRequest)
			return
		}
	}
	response.RenderErrorWithDetails(rw, updateFailedMessage, err, http.StatusInternalServerError)
}
