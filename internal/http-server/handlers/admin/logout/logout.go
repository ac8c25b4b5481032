package logout

import (
	"log/slog"
	"net/http"

	"eventTicketing/internal/http-server/middleware/adminauth"
	"eventTicketing/internal/lib/api/response"

	"github.com/go-chi/render"
)

type SessionCloser interface {
	Logout(token string)
}

func New(log *slog.Logger, sessions SessionCloser) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.logout.New"

		sessions.Logout(adminauth.BearerToken(r))

		log.Info("admin logged out",
			slog.String("op", op),
			slog.String("username", adminauth.UserFromContext(r.Context())),
		)

		render.JSON(w, r, response.OK())
	}
}
