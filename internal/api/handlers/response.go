package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

const (
	msgInternalError = "internal server error"
	msgUnauthorized  = "not authenticated"
)

// maxJSONBody ограничение размера JSON тела запроса
const maxJSONBody = 1 << 20

// ErrorResponse тело ответа с ошибкой
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// MessageResponse тело ответа с сообщением
type MessageResponse struct {
	Message string `json:"message"`
}

// RespondJSON пишет JSON ответ с кодом статуса
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

// RespondMessage пишет {"message": ...} с кодом 200
func RespondMessage(w http.ResponseWriter, message string) {
	RespondJSON(w, http.StatusOK, MessageResponse{Message: message})
}

// RespondError пишет {"detail": ...} с кодом статуса
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Detail: message})
}

func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

// RespondUnauthorized 401 с заголовком WWW-Authenticate
func RespondUnauthorized(w http.ResponseWriter, message string) {
	if message == "" {
		message = msgUnauthorized
	}
	w.Header().Set("WWW-Authenticate", "Bearer")
	RespondError(w, http.StatusUnauthorized, message)
}

// RespondInternalError 500 без деталей
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}

// DecodeJSON декодирует тело запроса в v
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return errors.New("empty request body")
	}
	dec := json.NewDecoder(io.LimitReader(r.Body, maxJSONBody))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("empty request body")
		}
		return err
	}
	return nil
}

// PathUUID достает UUID из параметра пути
func PathUUID(r *http.Request, name string) (uuid.UUID, error) {
	return uuid.Parse(mux.Vars(r)[name])
}
