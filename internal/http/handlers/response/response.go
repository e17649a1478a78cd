package response

import (
	"encoding/json"
	"net/http"
)

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

type successResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

const invalidRequestMessage = "Data permintaan tidak valid"

func RenderInvalidRequest(rw http.ResponseWriter) {
	RenderError(rw, invalidRequestMessage, http.StatusBadRequest)
}

func RenderError(rw http.ResponseWriter, msg string, status int) {
	Render(rw, errorResponse{Error: msg}, status)
}

func RenderErrorWithCode(rw http.ResponseWriter, msg string, code string, status int) {
	Render(rw, errorResponse{Error: msg, Code: code}, status)
}

func RenderErrorWithDetails(rw http.ResponseWriter, msg string, err error, status int) {
	Render(rw, errorResponse{Error: msg, Details: err.Error()}, status)
}

func RenderSuccess(rw http.ResponseWriter, msg string) {
	Render(rw, successResponse{Success: true, Message: msg}, http.StatusOK)
}

func Render(rw http.ResponseWriter, res interface{}, status int) {
	rw.Header().Set("Content-Type", "application/json")

	content, err := json.Marshal(res)
	if err != nil {
		rw.WriteHeader(http.StatusInternalServerError)
		return
	}

	rw.WriteHeader(status)
	rw.Write(content)
}
