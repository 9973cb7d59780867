package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gashorafarm/farmconnect/internal/access"
	"github.com/gashorafarm/farmconnect/internal/service"
	loggingmw "github.com/gashorafarm/farmconnect/pkg/middleware/logging"
	"github.com/gashorafarm/farmconnect/pkg/logging"
)

const (
	actorKey   = "actor"
	profileKey = "profile"
)

type SessionMiddleware struct {
	Auth         *service.AuthService
	CookieSecure bool
}

func NewSessionMiddleware(auth *service.AuthService, secure bool) *SessionMiddleware {
	return &SessionMiddleware{Auth: auth, CookieSecure: secure}
}

// Load resolves the session cookie, if any, into the request's actor.
// Unknown or tampered sessions are cleared and the request continues as a guest.
func (m *SessionMiddleware) Load(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		setActor(c, service.Actor{Role: access.RoleGuest}, nil)

		ck, err := c.Cookie(SessionCookie)
		if err != nil || ck.Value == "" {
			return next(c)
		}

		ctx := c.Request().Context()
		p, err := m.Auth.Resolve(ctx, ck.Value)
		switch {
		case err == nil:
			setActor(c, p.Actor(), p)
		case errors.Is(err, service.ErrInvalidSession):
			logging.FromContext(ctx).Info("session_discarded", "reason", err.Error())
			c.SetCookie(DeleteCookie(SessionCookie, "/", m.CookieSecure))
		default:
			logging.FromContext(ctx).Error("session_error", "status", 503, "error", err)
			return echo.NewHTTPError(http.StatusServiceUnavailable, map[string]any{
				"code":    "remote_unavailable",
				"message": "session store unavailable",
			})
		}
		return next(c)
	}
}

// RequireRoles admits actors holding one of roles. Guests get 401 with the login
// page to visit; signed-in actors with another role get 403.
func RequireRoles(roles ...access.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor := ActorFrom(c)
			d := access.AuthorizeRoute(roles, actor.Role)
			if d.Allowed {
				return next(c)
			}
			if !actor.Role.Authenticated() {
				return echo.NewHTTPError(http.StatusUnauthorized, map[string]any{
					"code":        "unauthenticated",
					"message":     "sign in required",
					"redirect_to": d.RedirectTo,
				})
			}
			return echo.NewHTTPError(http.StatusForbidden, map[string]any{
				"code":        "forbidden",
				"message":     "insufficient role",
				"redirect_to": d.RedirectTo,
			})
		}
	}
}

func setActor(c echo.Context, a service.Actor, p *service.Profile) {
	c.Set(actorKey, a)
	c.Set(loggingmw.ActorKey, string(a.Role))
	if p != nil {
		c.Set(profileKey, p)
	}
}

// ActorFrom returns the request's actor; requests never seen by Load act as guests.
func ActorFrom(c echo.Context) service.Actor {
	if a, ok := c.Get(actorKey).(service.Actor); ok {
		return a
	}
	return service.Actor{Role: access.RoleGuest}
}

func ProfileFrom(c echo.Context) *service.Profile {
	p, _ := c.Get(profileKey).(*service.Profile)
	return p
}

// SetActor lets handlers and tests attach an actor without a session cookie.
func SetActor(c echo.Context, a service.Actor) {
	setActor(c, a, nil)
}
