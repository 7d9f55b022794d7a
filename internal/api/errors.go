package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Error es una respuesta no exitosa del backend.
type Error struct {
	StatusCode int
	Detail     string
	Body       []byte
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api http error: status=%d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("api http error: status=%d", e.StatusCode)
}

func newError(status int, body []byte) *Error {
	return &Error{
		StatusCode: status,
		Detail:     parseDetail(body),
		Body:       body,
	}
}

// IsUnauthorized reporta si err es un 401 del backend.
func IsUnauthorized(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

// DetailOr devuelve el campo detail del error del backend o fallback.
func DetailOr(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return fallback
}

// parseDetail extrae {"detail": "..."}; para errores de validacion de FastAPI
// ({"detail": [{"msg": ...}, ...]}) une los mensajes.
func parseDetail(body []byte) string {
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || len(payload.Detail) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(payload.Detail, &s); err == nil {
		return strings.TrimSpace(s)
	}

	var issues []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(payload.Detail, &issues); err == nil {
		msgs := make([]string, 0, len(issues))
		for _, issue := range issues {
			if m := strings.TrimSpace(issue.Msg); m != "" {
				msgs = append(msgs, m)
			}
		}
		return strings.Join(msgs, "; ")
	}
	return ""
}
