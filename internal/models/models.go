package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ProduceCategories = []string{"Vegetables", "Fruits", "Dairy", "Honey", "Herbs", "Grains"}

var SupplyCategories = []string{"Tools", "Seeds", "Fertilizers", "Equipment", "Pesticides"}

type Farmer struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"    json:"id"`
	Name       string    `gorm:"not null"                json:"name"`
	Location   string    `gorm:"not null"                json:"location"`
	Phone      string    `json:"phone,omitempty"`
	NationalID string    `json:"id_number,omitempty"`
	Rating     float64   `gorm:"not null;default:0"      json:"rating"`
	Verified   bool      `gorm:"not null;default:false;index" json:"verified"`
	ImageURL   string    `json:"image_url"`
	JoinedDate string    `gorm:"not null;index"          json:"joined_date"`
	CreatedAt  time.Time `json:"-"`
}

// Product is produce sold by a farmer. Prices are in the base currency.
type Product struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"        json:"id"`
	FarmerID     uuid.UUID       `gorm:"type:uuid;not null;index"    json:"farmer_id"`
	Name         string          `gorm:"not null"                    json:"name"`
	Description  string          `gorm:"not null"                    json:"description"`
	Category     string          `gorm:"not null;index"              json:"category"`
	Price        decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	Unit         string          `gorm:"not null"                    json:"unit"`
	Stock        int             `gorm:"not null;check:stock >= 0"   json:"stock"`
	Organic      bool            `gorm:"not null;default:false"      json:"is_organic"`
	HarvestDate  string          `json:"harvest_date"`
	ImageURL     string          `json:"image_url"`
	Rating       float64         `gorm:"not null;default:0"          json:"rating"`
	ReviewsCount int             `gorm:"not null;default:0"          json:"reviews_count"`
	CreatedAt    time.Time       `json:"-"`
	UpdatedAt    time.Time       `json:"-"`
}

// Supply is a farm input sold by the marketplace itself.
type Supply struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"        json:"id"`
	Name         string          `gorm:"not null"                    json:"name"`
	Description  string          `gorm:"not null"                    json:"description"`
	Category     string          `gorm:"not null;index"              json:"category"`
	Price        decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	Unit         string          `gorm:"not null"                    json:"unit"`
	Stock        int             `gorm:"not null;check:stock >= 0"   json:"stock"`
	ImageURL     string          `json:"image_url"`
	Rating       float64         `gorm:"not null;default:0"          json:"rating"`
	ReviewsCount int             `gorm:"not null;default:0"          json:"reviews_count"`
	CreatedAt    time.Time       `json:"-"`
}

type User struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"       json:"id"`
	Email        string     `gorm:"uniqueIndex;not null"       json:"email"`
	PasswordHash string     `gorm:"not null"                   json:"-"`
	Name         string     `gorm:"not null"                   json:"name"`
	Phone        string     `json:"phone,omitempty"`
	Role         string     `gorm:"not null;index"             json:"role"`
	FarmerID     *uuid.UUID `gorm:"type:uuid"                  json:"farmer_id,omitempty"`
	Farmer       *Farmer    `gorm:"foreignKey:FarmerID"        json:"farmer,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// Order holds a priced snapshot of a cart. Subtotal, Tax, DeliveryFee and Total are in
// the display currency named by Currency; BaseSubtotal and BaseTax, like item prices,
// stay in the base currency.
type Order struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"        json:"id"`
	CustomerID      *uuid.UUID      `gorm:"type:uuid;index"             json:"customer_id,omitempty"`
	Date            time.Time       `gorm:"not null;index"              json:"date"`
	Items           []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Subtotal        decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"subtotal"`
	Tax             decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"tax"`
	DeliveryFee     decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"delivery_fee"`
	Total           decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"total"`
	Currency        string          `gorm:"not null"                    json:"currency"`
	BaseSubtotal    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"base_subtotal"`
	BaseTax         decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"base_tax"`
	Status          string          `gorm:"not null;index"              json:"status"`
	DeliveryMethod  string          `gorm:"not null"                    json:"delivery_method"`
	DeliveryAddress string          `gorm:"not null"                    json:"delivery_address"`
	PaymentMethod   string          `gorm:"not null"                    json:"payment_method"`
	Version         int             `gorm:"not null;default:1"          json:"version"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// OrderItem is a line snapshot. Price is the unit price in the base currency at checkout.
type OrderItem struct {
	ID       uuid.UUID       `gorm:"type:uuid;primaryKey"        json:"-"`
	OrderID  uuid.UUID       `gorm:"type:uuid;not null;index"    json:"-"`
	Position int             `gorm:"not null"                    json:"-"`
	ItemID   string          `gorm:"not null"                    json:"product_id"`
	Kind     string          `gorm:"not null"                    json:"kind"`
	Name     string          `gorm:"not null"                    json:"name"`
	Price    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	Quantity int             `gorm:"not null;check:quantity > 0" json:"quantity"`
	Unit     string          `gorm:"not null"                    json:"unit"`
	ImageURL string          `json:"image_url"`
}

func (f *Farmer) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

func (s *Supply) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

func (Supply) TableName() string {
	return "supplies"
}

// All lists the models managed by AutoMigrate.
func All() []any {
	return []any{&Farmer{}, &Product{}, &Supply{}, &User{}, &Order{}, &OrderItem{}}
}
