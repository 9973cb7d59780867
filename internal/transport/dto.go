package transport

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateProductRequest struct {
	FarmerID    *uuid.UUID      `json:"farmer_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Unit        string          `json:"unit"`
	Stock       int             `json:"stock"`
	Organic     bool            `json:"is_organic"`
	HarvestDate string          `json:"harvest_date"`
	ImageURL    string          `json:"image_url"`
}

type CreateSupplyRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Unit        string          `json:"unit"`
	Stock       int             `json:"stock"`
	ImageURL    string          `json:"image_url"`
}

type UpdateStockRequest struct {
	Stock *int `json:"stock"`
}

type FarmerFields struct {
	Location   string `json:"location"`
	Phone      string `json:"phone"`
	NationalID string `json:"id_number"`
	ImageURL   string `json:"image_url"`
}

type RegisterRequest struct {
	Email    string        `json:"email"`
	Password string        `json:"password"`
	Name     string        `json:"name"`
	Role     string        `json:"role"`
	Farmer   *FarmerFields `json:"farmer"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateRoleRequest struct {
	Role string `json:"role"`
}

type AddToCartRequest struct {
	ItemID   string `json:"item_id"`
	Kind     string `json:"kind"`
	Quantity *int   `json:"quantity"`
}

type SetQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type CheckoutRequest struct {
	DeliveryMethod  string `json:"delivery_method"`
	DeliveryAddress string `json:"delivery_address"`
	PaymentMethod   string `json:"payment_method"`
}

type UpdateStatusRequest struct {
	Status  string `json:"status"`
	Version *int   `json:"version"`
}
