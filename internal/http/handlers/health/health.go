package health

import (
	"net/http"
	"time"
	"unitactivity/internal/http/handlers/response"

	"github.com/golang-module/carbon/v2"
)

const (
	message         = "Email service is running"
	timestampLayout = "2006-01-02T15:04:05.000Z07:00"
)

type Handler struct {
	now func() time.Time
}

func New(now func() time.Time) *Handler {
	if now == nil {
		panic("Argument now must not be nil.")
	}
	return &Handler{now: now}
}

type Response struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	timestamp := carbon.Time2Carbon(h.now()).ToLayoutString(timestampLayout, carbon.UTC)
	response.Render(rw, Response{Success: true, Message: message, Timestamp: timestamp}, http.StatusOK)
}
