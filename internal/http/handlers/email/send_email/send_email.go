package sendemail

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	c "unitactivity/internal/core/domain/common"
	e "unitactivity/internal/core/domain/errors"
	"unitactivity/internal/core/domain/mail"
	"unitactivity/internal/core/services"
	sendemail "unitactivity/internal/core/services/send_email"
	"unitactivity/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type Messages struct {
	MissingFields string
	Sent          string
	Failed        string
}

var (
	VerificationMessages = Messages{
		MissingFields: "Email dan kode verifikasi wajib diisi",
		Sent:          "Email verifikasi berhasil dikirim",
		Failed:        "Gagal mengirim email verifikasi",
	}
	PasswordResetMessages = Messages{
		MissingFields: "Email dan kode reset wajib diisi",
		Sent:          "Email reset password berhasil dikirim",
		Failed:        "Gagal mengirim email reset password",
	}
)

const invalidEmailMessage = "Format email tidak valid"

type Handler struct {
	service  services.Service[sendemail.Input, sendemail.Result]
	kind     mail.Kind
	messages Messages
}

func New(
	service services.Service[sendemail.Input, sendemail.Result],
	kind mail.Kind,
	messages Messages,
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service, kind: kind, messages: messages}
}

type Input struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	if err := e.Decode(i); err != nil {
		return err
	}
	i.Email = strings.TrimSpace(i.Email)
	i.Code = strings.TrimSpace(i.Code)
	return nil
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Email, validation.Required, is.Email),
		validation.Field(&i.Code, validation.Required),
	)
}

func (i Input) isIncomplete() bool {
	return i.Email == "" || i.Code == ""
}

type Response struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	MessageID string `json:"messageId"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderInvalidRequest(rw)
		return
	}
	if err := input.Validate(); err != nil {
		if input.isIncomplete() {
			response.RenderError(rw, h.messages.MissingFields, http.StatusBadRequest)
			return
		}
		response.RenderErrorWithDetails(rw, invalidEmailMessage, err, http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(
		r.Context(),
		sendemail.Input{
			Kind:      h.kind,
			Code:      mail.Code(input.Code),
			Recipient: c.Email(input.Email),
		},
	)
	if errors.Is(err, mail.ErrIncompleteMessage) {
		response.RenderError(rw, h.messages.MissingFields, http.StatusBadRequest)
		return
	}
	if err != nil {
		response.RenderErrorWithDetails(rw, h.messages.Failed, err, http.StatusInternalServerError)
		return
	}

	response.Render(
		rw,
		Response{Success: true, Message: h.messages.Sent, MessageID: string(result.DeliveryID)},
		http.StatusOK,
	)
}
