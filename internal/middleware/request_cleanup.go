package middleware

import (
	"io"
	"net/http"
)

// MaxRequestBodyBytes caps request bodies. Every trainlog request body is a
// small JSON document.
const MaxRequestBodyBytes = 1 << 20

// LimitAndDrainBody caps the request body at maxBytes and drains whatever
// the handler left unread, so the connection can be reused.
func LimitAndDrainBody(maxBytes int64) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body == nil || r.Body == http.NoBody {
				next.ServeHTTP(w, r)
				return
			}

			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)

			_, _ = io.Copy(io.Discard, r.Body)
			_ = r.Body.Close()
		})
	}
}
