package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"forwarding/internal/core/domain/model/account"
	"forwarding/internal/core/ports"
)

const actorContextKey = "actor"

// ActorMiddleware resolves the bearer session token through the account
// service and stores the verified actor in the request context. Requests
// without a valid session never reach the handlers.
func ActorMiddleware(verifier ports.IdentityVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "Missing bearer token",
				})
			}

			actor, err := verifier.Verify(ctx.Request().Context(), token)
			if err != nil {
				return ctx.JSON(http.StatusUnauthorized, Error{
					Code:    http.StatusUnauthorized,
					Message: "Session verification failed",
				})
			}

			ctx.Set(actorContextKey, actor)
			return next(ctx)
		}
	}
}

// actorFrom returns the verified actor stored by ActorMiddleware.
func actorFrom(ctx echo.Context) account.Actor {
	actor, _ := ctx.Get(actorContextKey).(account.Actor)
	return actor
}
