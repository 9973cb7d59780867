package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gashorafarm/farmconnect/internal/access"
	middleware "github.com/gashorafarm/farmconnect/pkg/middleware/auth"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type Deps struct {
	Catalog *CatalogHTTP
	Farmers *FarmerHTTP
	Cart    *CartHTTP
	Orders  *OrderHTTP
	Auth    *AuthHTTP
	Admin   *AdminHTTP

	Sessions     *middleware.SessionMiddleware
	LoginLimiter echo.MiddlewareFunc
	Ready        []Pinger
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()
		for _, p := range d.Ready {
			if err := p.Ping(ctx); err != nil {
				return c.JSON(http.StatusServiceUnavailable, map[string]any{"status": "unavailable", "error": err.Error()})
			}
		}
		return c.NoContent(http.StatusOK)
	})

	api := e.Group("", d.Sessions.Load)

	farmerOrAdmin := middleware.RequireRoles(access.RoleFarmer, access.RoleAdmin)
	adminOnly := middleware.RequireRoles(access.RoleAdmin)
	farmerOnly := middleware.RequireRoles(access.RoleFarmer)
	signedIn := middleware.RequireRoles(access.RoleUser, access.RoleFarmer, access.RoleAdmin)

	auth := api.Group("/auth")
	login := []echo.MiddlewareFunc{}
	if d.LoginLimiter != nil {
		login = append(login, d.LoginLimiter)
	}
	auth.POST("/register", d.Auth.Register, login...)
	auth.POST("/login", d.Auth.Login, login...)
	auth.POST("/logout", d.Auth.Logout)
	auth.GET("/me", d.Auth.Me, signedIn)
	auth.GET("/authorize", d.Auth.Authorize)

	products := api.Group("/catalog/products")
	products.GET("", d.Catalog.GetProducts)
	products.GET("/search", d.Catalog.SearchProducts)
	products.GET("/mine", d.Catalog.MyProducts, farmerOnly)
	products.GET("/:id", d.Catalog.GetProduct)
	products.POST("", d.Catalog.CreateProduct, farmerOrAdmin)
	products.PATCH("/:id/stock", d.Catalog.UpdateStock, farmerOrAdmin)

	supplies := api.Group("/catalog/supplies")
	supplies.GET("", d.Catalog.GetSupplies)
	supplies.GET("/:id", d.Catalog.GetSupply)
	supplies.POST("", d.Catalog.CreateSupply, adminOnly)
	supplies.PATCH("/:id/stock", d.Catalog.UpdateSupplyStock, adminOnly)
	supplies.DELETE("/:id", d.Catalog.DeleteSupply, adminOnly)

	farmers := api.Group("/farmers")
	farmers.GET("", d.Farmers.GetFarmers)
	farmers.GET("/pending", d.Farmers.PendingFarmers, adminOnly)
	farmers.GET("/:id", d.Farmers.GetFarmer)
	farmers.POST("/:id/verify", d.Farmers.VerifyFarmer, adminOnly)

	cart := api.Group("/cart")
	cart.GET("", d.Cart.GetCart)
	cart.POST("/items", d.Cart.AddItem)
	cart.PATCH("/items/:id", d.Cart.SetQuantity)
	cart.DELETE("/items/:id", d.Cart.RemoveItem)
	cart.DELETE("", d.Cart.ClearCart)

	orders := api.Group("/orders")
	orders.POST("/checkout", d.Orders.Checkout)
	orders.GET("", d.Orders.GetOrders, signedIn)
	orders.GET("/:id", d.Orders.GetOrder, signedIn)
	orders.PATCH("/:id/status", d.Orders.UpdateStatus, farmerOrAdmin)

	admin := api.Group("/admin", adminOnly)
	admin.GET("/dashboard", d.Admin.Dashboard)
	admin.GET("/users", d.Admin.GetUsers)
	admin.PATCH("/users/:id/role", d.Admin.UpdateRole)
	admin.DELETE("/users/:id", d.Admin.DeleteUser)
	admin.DELETE("/orders/:id", d.Orders.DeleteOrder)
}
