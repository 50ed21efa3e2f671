// Package httputil provides request and response helpers shared by HTTP
// handlers.
//
// Handlers respond through [RespondJSON], [RespondBytes], and
// [RespondError] so that content types, status codes, and error bodies
// stay uniform across the API. [RespondError] maps application error
// codes to HTTP status codes via [errors.HTTPStatus].
package httputil

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/charmbracelet/log"

	"github.com/svgsmith/svgsmith/pkg/errors"
)

// MaxBodyBytes caps request body reads. Scene manifests are small; a
// megabyte leaves generous headroom.
const MaxBodyBytes = 1 << 20

// ErrorResponse is the JSON body returned for failed requests.
type ErrorResponse struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

// RespondJSON writes v as a JSON response with the given status code.
func RespondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// RespondBytes writes a raw response body with the given content type.
func RespondBytes(w http.ResponseWriter, status int, contentType string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

// RespondError writes the JSON error body for err, with the status code
// derived from its error code. Server faults are logged as errors, client
// faults at debug level.
func RespondError(w http.ResponseWriter, logger *log.Logger, err error) {
	status := errors.HTTPStatus(err)
	if logger != nil {
		if status >= http.StatusInternalServerError {
			logger.Error("request failed", "err", err)
		} else {
			logger.Debug("request rejected", "err", err)
		}
	}
	RespondJSON(w, status, ErrorResponse{
		Code:  string(errors.GetCode(err)),
		Error: errors.UserMessage(err),
	})
}

// DecodeJSON unmarshals a JSON request body into v, limiting the read to
// [MaxBodyBytes].
func DecodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	body := http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	if err := json.NewDecoder(body).Decode(v); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid request body")
	}
	return nil
}

// ReadBody reads a raw request body, limiting the read to [MaxBodyBytes].
func ReadBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "failed to read request body")
	}
	return data, nil
}
