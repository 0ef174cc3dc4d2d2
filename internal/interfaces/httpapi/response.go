package httpapi

import (
	"context"
	"errors"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/club-manager/internal/domain/validation"
	"github.com/riskibarqy/club-manager/internal/usecase"
	"github.com/valyala/bytebufferpool"
)

var errTooManyRequests = errors.New("too many requests")

type errorBody struct {
	Error string `json:"error"`
}

type messageBody struct {
	Message string `json:"message"`
}

// writeJSON encodes into a pooled buffer first so an encoding failure can still become a clean 500.
func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	ctx, span := startSpan(ctx, "httpapi.writeJSON")
	defer span.End()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(payload); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal server error"}` + "\n"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.B)
}

func writeMessage(ctx context.Context, w http.ResponseWriter, status int, msg string) {
	writeJSON(ctx, w, status, messageBody{Message: msg})
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	ctx, span := startSpan(ctx, "httpapi.writeError")
	defer span.End()

	status := mapError(ctx, err)
	writeJSON(ctx, w, status, errorBody{Error: clientMessage(err, status)})
}

func writeInternalError(ctx context.Context, w http.ResponseWriter) {
	writeJSON(ctx, w, http.StatusInternalServerError, errorBody{Error: "internal server error"})
}

// clientMessage never exposes internals for 5xx. Validation failures surface their reason only.
func clientMessage(err error, status int) string {
	switch {
	case status == http.StatusServiceUnavailable:
		return "service temporarily unavailable"
	case status >= http.StatusInternalServerError:
		return "internal server error"
	}
	if f, ok := validation.As(err); ok {
		return f.Reason
	}
	return err.Error()
}

func mapError(ctx context.Context, err error) int {
	_, span := startSpan(ctx, "httpapi.mapError")
	defer span.End()

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, usecase.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, usecase.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, errTooManyRequests):
		return http.StatusTooManyRequests
	case errors.Is(err, usecase.ErrDependencyUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
