package middleware

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"log"
	"net/http"
	"strings"
)

const PasswordHeader = "X-Access-Password"

// PasswordGate libera a rota quando o sha256 da senha enviada bate com o hash configurado.
// Sem hash configurado, nada passa.
func PasswordGate(passwordHash string) func(http.Handler) http.Handler {
	expected := strings.ToLower(strings.TrimSpace(passwordHash))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if expected == "" {
				log.Println("⚠️ PASSWORD_HASH não configurado, acesso negado")
				deny(w)
				return
			}

			password := r.Header.Get(PasswordHeader)
			if password == "" {
				if _, pass, ok := r.BasicAuth(); ok {
					password = pass
				}
			}

			if password == "" || !CheckPassword(password, expected) {
				deny(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func CheckPassword(password, expectedHash string) bool {
	sum := sha256.Sum256([]byte(password))
	got := hex.EncodeToString(sum[:])
	return subtle.ConstantTimeCompare([]byte(got), []byte(strings.ToLower(expectedHash))) == 1
}

func deny(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", `Basic realm="outreach"`)
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{
		"error":   "UNAUTHORIZED",
		"message": "Incorrect password",
	})
}
