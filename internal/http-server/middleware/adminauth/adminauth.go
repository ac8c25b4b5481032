package adminauth

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"eventTicketing/internal/lib/api/response"

	"github.com/go-chi/render"
)

type ctxKey struct{}

type SessionChecker interface {
	User(token string) (string, bool)
}

// New rejects requests without a valid "Authorization: Bearer <token>" header.
func New(log *slog.Logger, sessions SessionChecker) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		log := log.With(slog.String("component", "middleware/adminauth"))

		fn := func(w http.ResponseWriter, r *http.Request) {
			token := BearerToken(r)
			if token == "" {
				log.Warn("missing admin token", slog.String("path", r.URL.Path))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("authorization required"))
				return
			}

			user, ok := sessions.User(token)
			if !ok {
				log.Warn("invalid admin token", slog.String("path", r.URL.Path))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid or expired session"))
				return
			}

			ctx := context.WithValue(r.Context(), ctxKey{}, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		}

		return http.HandlerFunc(fn)
	}
}

func BearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if len(h) < 7 || !strings.EqualFold(h[:7], "bearer ") {
		return ""
	}
	return strings.TrimSpace(h[7:])
}

// UserFromContext returns the admin username set by the middleware.
func UserFromContext(ctx context.Context) string {
	user, _ := ctx.Value(ctxKey{}).(string)
	return user
}
