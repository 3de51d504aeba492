package middleware

import "net/http"

// AllowFraming marks responses as embeddable so the SPA can live inside
// an iframe. Nothing in the stack sets X-Frame-Options, but the CSP
// directive makes the intent explicit to browsers and proxies.
func AllowFraming(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Security-Policy", "frame-ancestors *")
		next.ServeHTTP(w, r)
	})
}
