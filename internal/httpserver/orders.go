package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gashorafarm/farmconnect/internal/lifecycle"
	"github.com/gashorafarm/farmconnect/internal/service"
	"github.com/gashorafarm/farmconnect/internal/transport"
	"github.com/gashorafarm/farmconnect/internal/util"
	"github.com/gashorafarm/farmconnect/pkg/logging"
	middleware "github.com/gashorafarm/farmconnect/pkg/middleware/auth"
)

type OrderHTTP struct {
	Svc          *service.OrderService
	CookieSecure bool
}

func (h *OrderHTTP) Checkout(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "orders.checkout")

	var req transport.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(l, "checkout_error", "invalid body", err)
	}

	order, err := h.Svc.Checkout(ctx, cartKey(c, h.CookieSecure), middleware.ActorFrom(c), req)
	if err != nil {
		return fail(l, "checkout_error", err)
	}
	return c.JSON(http.StatusCreated, order)
}

func (h *OrderHTTP) GetOrders(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "orders.get_orders")

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	offset, limit := util.Calculate(page, size)

	total, orders, err := h.Svc.ListOrders(ctx, middleware.ActorFrom(c), c.QueryParam("status"), offset, limit)
	if err != nil {
		return fail(l, "get_orders_error", err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"data": orders,
		"meta": util.Meta(page, offset, limit, total),
	})
}

// GetOrder includes the statuses the caller may move the order to next.
func (h *OrderHTTP) GetOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "orders.get_order")

	id, err := uuidParam(c, l, "get_order_error")
	if err != nil {
		return err
	}
	actor := middleware.ActorFrom(c)
	order, err := h.Svc.GetOrder(ctx, actor, id)
	if err != nil {
		return fail(l, "get_order_error", err)
	}

	next := []lifecycle.Status{}
	if st, err := lifecycle.Parse(order.Status); err == nil {
		if n := lifecycle.Next(st, actor.Role); n != nil {
			next = n
		}
	}
	return c.JSON(http.StatusOK, map[string]any{"data": order, "next_statuses": next})
}

func (h *OrderHTTP) UpdateStatus(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "orders.update_status")

	id, err := uuidParam(c, l, "update_status_error")
	if err != nil {
		return err
	}
	var req transport.UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(l, "update_status_error", "invalid body", err)
	}

	order, err := h.Svc.UpdateStatus(ctx, middleware.ActorFrom(c), id, req.Status, req.Version)
	if err != nil {
		return fail(l, "update_status_error", err)
	}
	return c.JSON(http.StatusOK, order)
}

func (h *OrderHTTP) DeleteOrder(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "orders.delete_order")

	id, err := uuidParam(c, l, "delete_order_error")
	if err != nil {
		return err
	}
	if err := h.Svc.DeleteOrder(ctx, middleware.ActorFrom(c), id); err != nil {
		return fail(l, "delete_order_error", err)
	}
	l.Info("delete_order_success", "order_id", id)
	return c.NoContent(http.StatusNoContent)
}
