package static

import (
	"errors"
	"net/http"
)

var (
	// ErrForbidden is returned for traversal attempts and directory requests
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound is returned when neither the path nor its .html fallback exists
	ErrNotFound = errors.New("not found")
)

// StatusFor maps an error to the status code and body sent to the client.
// Anything that is not a known kind is a server error.
func StatusFor(err error) (int, string) {
	switch {
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden, "Forbidden"
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound, "Not found"
	default:
		return http.StatusInternalServerError, "Server error"
	}
}

// sendError writes a short plain-text error response
func sendError(w http.ResponseWriter, status int, message string) {
	h := w.Header()
	h.Del("Content-Length")
	h.Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	w.Write([]byte(message))
}
