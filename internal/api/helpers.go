package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
)

const errInternalText = "Erro interno"

// ResponseError is the panel's error envelope. Message carries the
// pt-BR text shown to the attendant, Error the underlying cause.
type ResponseError struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func SendErr(ctx context.Context, w http.ResponseWriter, code int, err error, msg string) {
	slog.ErrorContext(ctx, "request failed", "error", err, "code", code)

	if msg == "" {
		msg = errInternalText
	}

	var cause string
	if err != nil {
		cause = err.Error()
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	encErr := json.NewEncoder(w).Encode(ResponseError{Message: msg, Error: cause})
	if encErr != nil {
		slog.ErrorContext(ctx, "encode error response", "error", encErr)
	}
}

func SendJSON(ctx context.Context, w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	err := json.NewEncoder(w).Encode(data)
	if err != nil {
		slog.ErrorContext(ctx, "encode response", "error", err)
	}
}
