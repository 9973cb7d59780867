package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gashorafarm/farmconnect/internal/transport"
	"github.com/gashorafarm/farmconnect/pkg/logging"
)

func (h *CatalogHTTP) GetSupplies(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "supplies.get_supplies")

	items, err := h.Svc.ListSupplies(ctx, c.QueryParam("category"))
	if err != nil {
		return fail(l, "get_supplies_error", err)
	}
	return c.JSON(http.StatusOK, map[string]any{"data": items})
}

func (h *CatalogHTTP) GetSupply(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "supplies.get_supply")

	id, err := uuidParam(c, l, "get_supply_error")
	if err != nil {
		return err
	}
	item, err := h.Svc.GetSupply(ctx, id)
	if err != nil {
		return fail(l, "get_supply_error", err)
	}
	return c.JSON(http.StatusOK, item)
}

func (h *CatalogHTTP) CreateSupply(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "supplies.create_supply")

	var req transport.CreateSupplyRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(l, "create_supply_error", "invalid body", err)
	}
	item, err := h.Svc.AddSupply(ctx, req)
	if err != nil {
		return fail(l, "create_supply_error", err)
	}

	l.Info("create_supply_success", "supply_id", item.ID)
	return c.JSON(http.StatusCreated, item)
}

func (h *CatalogHTTP) UpdateSupplyStock(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "supplies.update_stock")

	id, err := uuidParam(c, l, "update_supply_stock_error")
	if err != nil {
		return err
	}
	var req transport.UpdateStockRequest
	if err := c.Bind(&req); err != nil || req.Stock == nil {
		return badRequest(l, "update_supply_stock_error", "stock is required", err)
	}
	item, err := h.Svc.UpdateSupplyStock(ctx, id, *req.Stock)
	if err != nil {
		return fail(l, "update_supply_stock_error", err)
	}
	return c.JSON(http.StatusOK, item)
}

func (h *CatalogHTTP) DeleteSupply(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "supplies.delete_supply")

	id, err := uuidParam(c, l, "delete_supply_error")
	if err != nil {
		return err
	}
	if err := h.Svc.DeleteSupply(ctx, id); err != nil {
		return fail(l, "delete_supply_error", err)
	}

	l.Info("delete_supply_success", "supply_id", id)
	return c.NoContent(http.StatusNoContent)
}
