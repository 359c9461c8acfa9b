package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProductType string

const (
	ProductTypeDownloadable ProductType = "downloadable"
	ProductTypeDeliverable  ProductType = "deliverable"
)

// ProductTypes lists the accepted values in display order.
var ProductTypes = []ProductType{ProductTypeDownloadable, ProductTypeDeliverable}

// Product is the expediente record managed from the admin panel.
// Slug is assigned once at creation and never rewritten.
type Product struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name        string          `gorm:"type:varchar(255);not null" json:"name"`
	Slug        string          `gorm:"type:varchar(255);not null;uniqueIndex" json:"slug"`
	Description string          `gorm:"type:text" json:"description"`
	SKU         string          `gorm:"column:sku;type:varchar(255);not null" json:"sku"`
	Price       decimal.Decimal `gorm:"type:decimal(8,2);not null" json:"price"`
	Quantity    int             `gorm:"not null;default:0" json:"quantity"`
	Type        ProductType     `gorm:"type:varchar(32);not null" json:"type"`
	IsVisible   bool            `gorm:"not null" json:"is_visible"`
	IsFeatured  bool            `gorm:"not null" json:"is_featured"`
	PublishedAt time.Time       `gorm:"type:timestamptz;not null" json:"published_at"`
	Image       string          `gorm:"type:varchar(512);not null" json:"image"`
	BrandID     *uuid.UUID      `gorm:"type:uuid;index" json:"brand_id,omitempty"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	Brand *Brand `gorm:"foreignKey:BrandID" json:"brand,omitempty"`
}

func (Product) TableName() string {
	return "products"
}
