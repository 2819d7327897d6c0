package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"sync"

	"github.com/2beens/trainlog/internal/telemetry/tracing"
	"github.com/2beens/trainlog/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

const TokenHeader = "X-Trainlog-Token"

// TokenAuth guards the /api routes with a shared token, checked against its
// bcrypt hash. The last verified token is remembered, so bcrypt only runs
// when a different token shows up.
type TokenAuth struct {
	tokenHash string
	openPaths map[string]bool

	mu            sync.Mutex
	verifiedToken []byte
}

func NewTokenAuth(tokenHash string) *TokenAuth {
	if tokenHash == "" {
		log.Warnln("api token hash not set, api routes are not protected")
	}
	return &TokenAuth{
		tokenHash: tokenHash,
		openPaths: map[string]bool{
			"/":        true,
			"/healthz": true,
		},
	}
}

func (a *TokenAuth) tokenValid(token string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.verifiedToken != nil && subtle.ConstantTimeCompare(a.verifiedToken, []byte(token)) == 1 {
		return true
	}
	if !pkg.TokenMatchesHash(token, a.tokenHash) {
		return false
	}
	a.verifiedToken = []byte(token)
	return true
}

func (a *TokenAuth) Check() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			if r.Method == http.MethodOptions {
				w.Header().Add("Allow", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
				w.WriteHeader(http.StatusOK)
				span.SetStatus(codes.Ok, "options-ok")
				return
			}

			if a.tokenHash == "" || a.openPaths[r.URL.Path] || !strings.HasPrefix(r.URL.Path, "/api/") {
				span.SetStatus(codes.Ok, "ok")
				next.ServeHTTP(w, r)
				return
			}

			authToken := r.Header.Get(TokenHeader)
			if authToken == "" {
				log.Tracef("[missing token] [auth middleware] unauthorized => %s", r.URL.Path)
				http.Error(w, "no can do", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "missing-auth-token")
				return
			}

			if !a.tokenValid(authToken) {
				log.Tracef("[invalid token] [auth middleware] unauthorized => %s", r.URL.Path)
				http.Error(w, "no can do", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "invalid-token")
				return
			}

			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r)
		})
	}
}
