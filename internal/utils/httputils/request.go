package httputils

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
)

// DecodeJSON decodes a JSON request body into v, enforcing the content type
// and a body size limit.
func DecodeJSON(r *http.Request, v any, maxBytes int64) error {
	ct := r.Header.Get("Content-Type")
	if ct != "application/json" && !strings.HasPrefix(ct, "application/json;") {
		return &HTTPError{
			Code:    http.StatusUnsupportedMediaType,
			Message: "Content-Type must be application/json",
		}
	}

	body := io.LimitReader(r.Body, maxBytes)
	if err := json.NewDecoder(body).Decode(v); err != nil {
		return &HTTPError{
			Code:    http.StatusBadRequest,
			Message: "Invalid JSON payload: " + err.Error(),
		}
	}
	return nil
}
