package errors

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the envelope every failing endpoint returns. Error carries
// the HTTP status code so clients can branch without reading headers.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// Respond writes a standardized error envelope with the given status and message.
func Respond(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{
		Success: false,
		Error:   status,
		Message: message,
	})
}

// RespondNotFound writes a not found error response.
func RespondNotFound(w http.ResponseWriter) {
	Respond(w, http.StatusNotFound, MsgNotFound)
}

// RespondUnprocessable writes an unprocessable entity error response.
func RespondUnprocessable(w http.ResponseWriter) {
	Respond(w, http.StatusUnprocessableEntity, MsgUnprocessable)
}

// RespondBadRequest writes a bad request error response.
func RespondBadRequest(w http.ResponseWriter) {
	Respond(w, http.StatusBadRequest, MsgBadRequest)
}

// RespondInternalError writes an internal server error response.
func RespondInternalError(w http.ResponseWriter) {
	Respond(w, http.StatusInternalServerError, MsgInternal)
}

// RespondMethodNotAllowed writes a method not allowed error response.
func RespondMethodNotAllowed(w http.ResponseWriter) {
	Respond(w, http.StatusMethodNotAllowed, MsgMethodNotAllowed)
}
