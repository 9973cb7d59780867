package httpserver

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/gashorafarm/farmconnect/internal/service"
	"github.com/gashorafarm/farmconnect/internal/transport"
	"github.com/gashorafarm/farmconnect/pkg/logging"
	middleware "github.com/gashorafarm/farmconnect/pkg/middleware/auth"
)

const cartCookieTTL = 30 * 24 * time.Hour

type CartHTTP struct {
	Svc          *service.CartService
	CookieSecure bool
}

// cartKey returns the browser's cart key, issuing a new one when the cookie is absent or malformed.
func cartKey(c echo.Context, secure bool) string {
	if ck, err := c.Cookie(middleware.CartCookie); err == nil {
		if _, err := uuid.Parse(ck.Value); err == nil {
			return ck.Value
		}
	}
	key := uuid.NewString()
	c.SetCookie(middleware.CreateCookie(middleware.CartCookie, key, "/", time.Now().Add(cartCookieTTL), secure))
	return key
}

func (h *CartHTTP) GetCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.get_cart")

	v, err := h.Svc.View(ctx, cartKey(c, h.CookieSecure), c.QueryParam("delivery_method"))
	if err != nil {
		return fail(l, "get_cart_error", err)
	}
	return c.JSON(http.StatusOK, v)
}

func (h *CartHTTP) AddItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.add_item")

	var req transport.AddToCartRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(l, "add_item_error", "invalid body", err)
	}

	v, err := h.Svc.Add(ctx, cartKey(c, h.CookieSecure), req)
	if err != nil {
		return fail(l, "add_item_error", err)
	}

	l.Info("add_item_success", "item_id", req.ItemID, "total_quantity", v.TotalQuantity)
	return c.JSON(http.StatusOK, v)
}

func (h *CartHTTP) SetQuantity(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.set_quantity")

	var req transport.SetQuantityRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(l, "set_quantity_error", "invalid body", err)
	}
	v, err := h.Svc.SetQuantity(ctx, cartKey(c, h.CookieSecure), c.Param("id"), req.Quantity)
	if err != nil {
		return fail(l, "set_quantity_error", err)
	}
	return c.JSON(http.StatusOK, v)
}

func (h *CartHTTP) RemoveItem(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.remove_item")

	v, err := h.Svc.Remove(ctx, cartKey(c, h.CookieSecure), c.Param("id"))
	if err != nil {
		return fail(l, "remove_item_error", err)
	}
	return c.JSON(http.StatusOK, v)
}

func (h *CartHTTP) ClearCart(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "cart.clear")

	if err := h.Svc.Clear(ctx, cartKey(c, h.CookieSecure)); err != nil {
		return fail(l, "clear_cart_error", err)
	}
	return c.NoContent(http.StatusNoContent)
}
