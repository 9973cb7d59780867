package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gashorafarm/farmconnect/internal/service"
	"github.com/gashorafarm/farmconnect/pkg/logging"
	middleware "github.com/gashorafarm/farmconnect/pkg/middleware/auth"
)

type FarmerHTTP struct {
	Svc     *service.FarmerService
	Catalog *service.CatalogService
}

// GetFarmers lists verified farmers unless an admin asks for all of them.
func (h *FarmerHTTP) GetFarmers(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "farmers.get_farmers")

	verifiedOnly := !(middleware.ActorFrom(c).IsAdmin() && c.QueryParam("all") == "true")
	farmers, err := h.Svc.ListFarmers(ctx, verifiedOnly)
	if err != nil {
		return fail(l, "get_farmers_error", err)
	}
	return c.JSON(http.StatusOK, map[string]any{"data": farmers})
}

func (h *FarmerHTTP) GetFarmer(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "farmers.get_farmer")

	id, err := uuidParam(c, l, "get_farmer_error")
	if err != nil {
		return err
	}
	f, err := h.Svc.GetFarmer(ctx, id)
	if err != nil {
		return fail(l, "get_farmer_error", err)
	}
	products, err := h.Catalog.ProductsByFarmer(ctx, id)
	if err != nil {
		return fail(l, "get_farmer_error", err)
	}
	return c.JSON(http.StatusOK, map[string]any{"data": f, "products": products})
}

func (h *FarmerHTTP) PendingFarmers(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "farmers.pending")

	farmers, err := h.Svc.PendingFarmers(ctx)
	if err != nil {
		return fail(l, "pending_farmers_error", err)
	}
	return c.JSON(http.StatusOK, map[string]any{"data": farmers})
}

func (h *FarmerHTTP) VerifyFarmer(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "farmers.verify")

	id, err := uuidParam(c, l, "verify_farmer_error")
	if err != nil {
		return err
	}
	f, err := h.Svc.VerifyFarmer(ctx, middleware.ActorFrom(c), id)
	if err != nil {
		return fail(l, "verify_farmer_error", err)
	}

	l.Info("verify_farmer_success", "farmer_id", f.ID)
	return c.JSON(http.StatusOK, f)
}
