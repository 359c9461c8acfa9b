package dto

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

// PriceInput keeps the submitted price text as-is. Both JSON strings and
// JSON numbers are accepted so "12.50" and 12.50 keep their decimals.
type PriceInput string

func (p *PriceInput) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*p = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*p = PriceInput(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*p = PriceInput(n.String())
	return nil
}

// ProductRequest carries the raw, unvalidated fields of a create or edit
// submission. Slug is accepted for form round-trips but never trusted.
type ProductRequest struct {
	Name        string     `json:"name"`
	Slug        string     `json:"slug,omitempty"`
	Description string     `json:"description"`
	SKU         string     `json:"sku"`
	Price       PriceInput `json:"price"`
	Quantity    *int       `json:"quantity"`
	Type        string     `json:"type"`
	IsVisible   *bool      `json:"is_visible"`
	IsFeatured  *bool      `json:"is_featured"`
	PublishedAt string     `json:"published_at"`
	Image       string     `json:"image"`
	BrandID     *uuid.UUID `json:"brand_id"`
}

type BulkDeleteProductRequest struct {
	IDs []uuid.UUID `json:"ids" validate:"required,min=1"`
}

// Response DTOs

type ProductResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Slug        string          `json:"slug"`
	Description string          `json:"description"`
	SKU         string          `json:"sku"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	Type        string          `json:"type"`
	IsVisible   bool            `json:"is_visible"`
	IsFeatured  bool            `json:"is_featured"`
	PublishedAt time.Time       `json:"published_at"`
	Image       string          `json:"image"`
	BrandID     *uuid.UUID      `json:"brand_id,omitempty"`
	Brand       *BrandResponse  `json:"brand,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
}

type BulkDeleteProductResponse struct {
	Deleted int `json:"deleted"`
}
