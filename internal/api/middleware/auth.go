package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

const (
	headerUserID   = "X-User-ID"
	headerUserRole = "X-User-Role"

	msgMissingIdentity = "認証情報が見つかりません"
	msgInvalidIdentity = "認証情報が正しくありません"
)

type actorCtxKey struct{}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// Auth извлекает актора из identity-заголовков и кладет его в контекст
// Аутентификацию выполняет вышестоящий gateway, здесь только разбор заголовков
func Auth(log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rawID := r.Header.Get(headerUserID)
			rawRole := r.Header.Get(headerUserRole)

			if rawID == "" || rawRole == "" {
				log.Warn("Auth: missing identity headers for %s %s", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingIdentity)
				return
			}

			userID, err := strconv.ParseInt(rawID, 10, 64)
			if err != nil || userID <= 0 {
				log.Warn("Auth: invalid %s=%q for %s %s", headerUserID, rawID, r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgInvalidIdentity)
				return
			}

			role := domain.Role(rawRole)
			switch role {
			case domain.RoleCustomer, domain.RoleOwner, domain.RoleDeveloper:
			default:
				log.Warn("Auth: invalid %s=%q for %s %s", headerUserRole, rawRole, r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgInvalidIdentity)
				return
			}

			actor := domain.Actor{UserID: userID, Role: role}
			ctx := context.WithValue(r.Context(), actorCtxKey{}, actor)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ActorFromContext возвращает актора, положенного Auth-middleware
func ActorFromContext(ctx context.Context) (domain.Actor, bool) {
	actor, ok := ctx.Value(actorCtxKey{}).(domain.Actor)
	return actor, ok
}
