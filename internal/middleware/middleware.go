// Package middleware provides the HTTP middleware wrapped around the vehicle routes.
package middleware

import (
	"net/http"
	"time"
)

// Middleware wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain applies middlewares to h left-to-right, so the first one is outermost.
func Chain(h http.Handler, mw ...Middleware) http.Handler {
	for i := len(mw) - 1; i >= 0; i-- {
		h = mw[i](h)
	}
	return h
}

// responseRecorder captures the status code and runs onHeader just before
// the header is written, once.
type responseRecorder struct {
	http.ResponseWriter
	start       time.Time
	status      int
	wroteHeader bool
	onHeader    func(*responseRecorder)
}

func newResponseRecorder(w http.ResponseWriter, onHeader func(*responseRecorder)) *responseRecorder {
	return &responseRecorder{
		ResponseWriter: w,
		start:          time.Now(),
		status:         http.StatusOK,
		onHeader:       onHeader,
	}
}

func (w *responseRecorder) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
		if w.onHeader != nil {
			w.onHeader(w)
		}
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *responseRecorder) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(b)
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (w *responseRecorder) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
