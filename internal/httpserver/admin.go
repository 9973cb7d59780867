package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gashorafarm/farmconnect/internal/service"
	"github.com/gashorafarm/farmconnect/internal/transport"
	"github.com/gashorafarm/farmconnect/pkg/logging"
	middleware "github.com/gashorafarm/farmconnect/pkg/middleware/auth"
)

type AdminHTTP struct {
	Admin *service.AdminService
	Users *service.UserService
}

func (h *AdminHTTP) Dashboard(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.dashboard")

	stats, err := h.Admin.DashboardStats(ctx)
	if err != nil {
		return fail(l, "dashboard_error", err)
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *AdminHTTP) GetUsers(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.get_users")

	users, err := h.Users.ListUsers(ctx)
	if err != nil {
		return fail(l, "get_users_error", err)
	}
	return c.JSON(http.StatusOK, map[string]any{"data": users})
}

func (h *AdminHTTP) UpdateRole(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.update_role")

	id, err := uuidParam(c, l, "update_role_error")
	if err != nil {
		return err
	}
	var req transport.UpdateRoleRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(l, "update_role_error", "invalid body", err)
	}

	u, err := h.Users.UpdateRole(ctx, middleware.ActorFrom(c), id, req.Role)
	if err != nil {
		return fail(l, "update_role_error", err)
	}
	l.Info("update_role_success", "user_id", id, "role", u.Role)
	return c.JSON(http.StatusOK, u)
}

func (h *AdminHTTP) DeleteUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "admin.delete_user")

	id, err := uuidParam(c, l, "delete_user_error")
	if err != nil {
		return err
	}
	if err := h.Users.DeleteUser(ctx, middleware.ActorFrom(c), id); err != nil {
		return fail(l, "delete_user_error", err)
	}
	l.Info("delete_user_success", "user_id", id)
	return c.NoContent(http.StatusNoContent)
}
