package middleware

import (
	"net/http"
	"strconv"
	"time"
)

// TimingHeader carries the request processing time in microseconds.
const TimingHeader = "X-Processing-Time-Micros"

// Timing is a middleware that adds X-Processing-Time-Micros header to all responses.
// The value is measured when the handler first writes the status line.
func Timing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		wrapped := newResponseRecorder(w, func(rec *responseRecorder) {
			micros := time.Since(rec.start).Microseconds()
			rec.Header().Set(TimingHeader, strconv.FormatInt(micros, 10))
		})

		next.ServeHTTP(wrapped, r)
	})
}
