package capability

import (
	"net/http"

	"pathport/internal/pkg/access"
	"pathport/internal/pkg/httpjson"
	"pathport/internal/pkg/requestcontext"
	"pathport/pkg/logger"
)

// Require пропускает запрос только если у роли актора есть capability.
// Ставится после auth middleware.
func Require(log handlerLogger, capability access.Capability) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, ok := requestcontext.Actor(r.Context())
			if !ok {
				httpjson.WriteError(w, log, http.StatusUnauthorized, requestcontext.ErrNoActor)
				return
			}

			err := access.Require(actor, capability)
			if err != nil {
				log.With(
					logger.NewField("user_id", actor.UserID),
					logger.NewField("role", actor.Role.String()),
					logger.NewField("capability", string(capability)),
				).Warn("capability denied")
				httpjson.WriteError(w, log, http.StatusForbidden, err)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
