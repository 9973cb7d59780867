package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gashorafarm/farmconnect/internal/pricing"
	"github.com/gashorafarm/farmconnect/internal/service"
	"github.com/gashorafarm/farmconnect/internal/transport"
	"github.com/gashorafarm/farmconnect/internal/util"
	"github.com/gashorafarm/farmconnect/pkg/logging"
	middleware "github.com/gashorafarm/farmconnect/pkg/middleware/auth"
)

type CatalogHTTP struct {
	Svc *service.CatalogService
}

func (h *CatalogHTTP) GetProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.get_products")

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	offset, limit := util.Calculate(page, size)

	total, items, err := h.Svc.ListProducts(ctx, c.QueryParam("category"), offset, limit)
	if err != nil {
		return fail(l, "get_products_error", err)
	}

	l.Info("get_products_success", "total", total)
	return c.JSON(http.StatusOK, map[string]any{
		"data": items,
		"meta": util.Meta(page, offset, limit, total),
	})
}

// GetProduct also reports the price converted to the display currency.
func (h *CatalogHTTP) GetProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.get_product")

	id, err := uuidParam(c, l, "get_product_error")
	if err != nil {
		return err
	}
	p, err := h.Svc.GetProduct(ctx, id)
	if err != nil {
		return fail(l, "get_product_error", err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"data":             p,
		"display_price":    pricing.ToDisplay(p.Price),
		"display_currency": pricing.DisplayCurrency,
	})
}

func (h *CatalogHTTP) SearchProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.search_products")

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	offset, limit := util.Calculate(page, size)

	total, items, err := h.Svc.SearchProducts(ctx, c.QueryParam("q"), offset, limit)
	if err != nil {
		return fail(l, "search_products_error", err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"data": items,
		"meta": util.Meta(page, offset, limit, total),
	})
}

func (h *CatalogHTTP) CreateProduct(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.create_product")

	var req transport.CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(l, "create_product_error", "invalid body", err)
	}

	p, err := h.Svc.AddProduct(ctx, middleware.ActorFrom(c), req)
	if err != nil {
		return fail(l, "create_product_error", err)
	}

	l.Info("create_product_success", "product_id", p.ID)
	return c.JSON(http.StatusCreated, p)
}

func (h *CatalogHTTP) UpdateStock(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.update_stock")

	id, err := uuidParam(c, l, "update_stock_error")
	if err != nil {
		return err
	}
	var req transport.UpdateStockRequest
	if err := c.Bind(&req); err != nil || req.Stock == nil {
		return badRequest(l, "update_stock_error", "stock is required", err)
	}

	p, err := h.Svc.UpdateStock(ctx, middleware.ActorFrom(c), id, *req.Stock)
	if err != nil {
		return fail(l, "update_stock_error", err)
	}
	return c.JSON(http.StatusOK, p)
}

// MyProducts lists the signed-in farmer's own produce.
func (h *CatalogHTTP) MyProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "catalog.my_products")

	actor := middleware.ActorFrom(c)
	if actor.FarmerID == nil {
		return fail(l, "my_products_error", service.ErrForbidden)
	}
	items, err := h.Svc.ProductsByFarmer(ctx, *actor.FarmerID)
	if err != nil {
		return fail(l, "my_products_error", err)
	}
	return c.JSON(http.StatusOK, map[string]any{"data": items})
}
