package auth

import (
	"crypto/subtle"
	"encoding/base64"
	"net/http"
	"strings"
)

// BasicAuth guards the catalog admin routes. Credentials come from the
// service config; comparison is constant-time.
func BasicAuth(login, password string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			encoded, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Basic ")
			if !ok {
				challenge(w)
				return
			}

			raw, err := base64.StdEncoding.DecodeString(encoded)
			if err != nil {
				challenge(w)
				return
			}

			gotLogin, gotPass, ok := strings.Cut(string(raw), ":")
			if !ok {
				challenge(w)
				return
			}

			loginOK := subtle.ConstantTimeCompare([]byte(gotLogin), []byte(login)) == 1
			passOK := subtle.ConstantTimeCompare([]byte(gotPass), []byte(password)) == 1
			if !loginOK || !passOK {
				challenge(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func challenge(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", `Basic realm="Catalog Admin"`)
	http.Error(w, "unauthorized", http.StatusUnauthorized)
}
