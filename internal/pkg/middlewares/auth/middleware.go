package auth

import (
	"errors"
	"net/http"
	"strings"

	"pathport/internal/pkg/httpjson"
	"pathport/internal/pkg/requestcontext"
	authservice "pathport/internal/service/auth"
	"pathport/pkg/logger"
)

var ErrMissingToken = errors.New("missing bearer token")

// Middleware проверяет Bearer токен и кладет Actor в контекст запроса
func Middleware(log handlerLogger, authenticator Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				httpjson.WriteError(w, log, http.StatusUnauthorized, ErrMissingToken)
				return
			}

			actor, err := authenticator.Authenticate(r.Context(), token)
			if err != nil {
				switch {
				case errors.Is(err, authservice.ErrInvalidToken):
					log.With(
						logger.NewField("error", err),
						logger.NewField("path", r.URL.Path),
					).Debug("token rejected")
					httpjson.WriteError(w, log, http.StatusUnauthorized, authservice.ErrInvalidToken)
				case errors.Is(err, authservice.ErrAccountSuspended):
					httpjson.WriteError(w, log, http.StatusForbidden, authservice.ErrAccountSuspended)
				default:
					httpjson.WriteError(w, log, http.StatusInternalServerError, err)
				}
				return
			}

			next.ServeHTTP(w, r.WithContext(requestcontext.WithActor(r.Context(), actor)))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
