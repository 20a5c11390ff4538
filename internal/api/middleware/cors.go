package middleware

import (
	"net/http"
	"strings"
)

const (
	corsMethods = "GET,POST,PUT,DELETE,OPTIONS"
	corsHeaders = "Content-Type,Authorization,X-Request-ID"
	corsMaxAge  = "86400"
)

// CORS echoes the caller's Origin with credentials allowed and answers
// preflight requests itself.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		if origin := r.Header.Get("Origin"); origin != "" {
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Access-Control-Allow-Credentials", "true")
			h.Set("Access-Control-Max-Age", corsMaxAge)
			h.Add("Vary", "Origin")
		}

		if r.Method == http.MethodOptions {
			methods := corsMethods
			if m := r.Header.Get("Access-Control-Request-Method"); m != "" && !strings.Contains(corsMethods, strings.ToUpper(m)) {
				methods = corsMethods + "," + strings.ToUpper(m)
			}
			h.Set("Access-Control-Allow-Methods", methods)
			headers := corsHeaders
			if rh := r.Header.Get("Access-Control-Request-Headers"); rh != "" {
				headers = rh
			}
			h.Set("Access-Control-Allow-Headers", headers)
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
