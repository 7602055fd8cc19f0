package identity

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/academico/portal-service/pkg/utils"
)

// Middleware проверяет Bearer-токен и кладёт личность в контекст запроса.
func Middleware(verifier *TokenVerifier, logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				utils.ErrorResponse(w, http.StatusUnauthorized, "Authorization header is required")
				return
			}

			tokenString := strings.TrimPrefix(header, "Bearer ")
			if tokenString == header {
				utils.ErrorResponse(w, http.StatusUnauthorized, "Invalid authorization header format")
				return
			}

			user, err := verifier.Verify(tokenString)
			if err != nil {
				logger.Debug().Err(err).Msg("Token verification failed")
				utils.ErrorResponse(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

// RequireProfessor пропускает только преподавателей; записи оценок и
// посещаемости студентам недоступны.
func RequireProfessor(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := FromContext(r.Context())
		if !ok || user.Role != RoleProfessor {
			utils.ErrorResponse(w, http.StatusForbidden, "Professor role is required")
			return
		}

		next.ServeHTTP(w, r)
	})
}
