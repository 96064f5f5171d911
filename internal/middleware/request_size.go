package middleware

import (
	"net/http"
)

// RequestSizeLimitMiddleware rejects request bodies larger than maxRequestSize bytes.
// Bodies without a declared length are capped while being read.
func RequestSizeLimitMiddleware(maxRequestSize int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > maxRequestSize {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusRequestEntityTooLarge)
				w.Write([]byte(`{"error":"request body too large"}`))
				return
			}

			r.Body = http.MaxBytesReader(w, r.Body, maxRequestSize)
			next.ServeHTTP(w, r)
		})
	}
}
