package httpserver

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gashorafarm/farmconnect/internal/access"
	"github.com/gashorafarm/farmconnect/internal/service"
	"github.com/gashorafarm/farmconnect/internal/transport"
	"github.com/gashorafarm/farmconnect/pkg/config"
	"github.com/gashorafarm/farmconnect/pkg/logging"
	middleware "github.com/gashorafarm/farmconnect/pkg/middleware/auth"
)

type AuthHTTP struct {
	Svc          *service.AuthService
	CookieSecure bool
}

func (h *AuthHTTP) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.register")

	var req transport.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(l, "register_error", "invalid body", err)
	}

	p, err := h.Svc.Register(ctx, req)
	if err != nil {
		return fail(l, "register_error", err)
	}
	return c.JSON(http.StatusCreated, p)
}

// Login sets the session cookie. The cookie has no expiry and lasts for the browser session.
func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req transport.LoginRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(l, "login_error", "invalid body", err)
	}

	token, p, err := h.Svc.Login(ctx, req.Email, req.Password)
	if err != nil {
		return fail(l, "login_error", err)
	}

	c.SetCookie(middleware.CreateCookie(middleware.SessionCookie, token, "/", time.Time{}, h.CookieSecure))
	l.Info("login_success", "user_id", p.UserID, "role", p.Role)
	return c.JSON(http.StatusOK, p)
}

func (h *AuthHTTP) Logout(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.logout")

	if ck, err := c.Cookie(middleware.SessionCookie); err == nil && ck.Value != "" {
		if err := h.Svc.SignOut(ctx, ck.Value); err != nil {
			return fail(l, "logout_error", err)
		}
	}
	c.SetCookie(middleware.DeleteCookie(middleware.SessionCookie, "/", h.CookieSecure))
	return c.NoContent(http.StatusNoContent)
}

func (h *AuthHTTP) Me(c echo.Context) error {
	p := middleware.ProfileFrom(c)
	if p == nil {
		return apiError(http.StatusUnauthorized, "unauthenticated", "sign in required")
	}
	return c.JSON(http.StatusOK, p)
}

// Authorize answers whether the caller may open a page guarded by the given roles.
func (h *AuthHTTP) Authorize(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.authorize")

	var required []access.Role
	for _, s := range config.CSV(c.QueryParam("roles")) {
		r, err := access.ParseRole(s)
		if err != nil {
			return badRequest(l, "authorize_error", "unknown role", err)
		}
		required = append(required, r)
	}
	return c.JSON(http.StatusOK, access.AuthorizeRoute(required, middleware.ActorFrom(c).Role))
}
