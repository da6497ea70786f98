package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
// Los precios y stocks no pueden ser negativos (se valida en el caso de uso).
type CreateProductRequest struct {
	Name          string          `json:"name" validate:"required,min=1,max=200"`
	Description   string          `json:"description"`
	SKU           string          `json:"sku" validate:"required,min=1,max=100"`
	Barcode       string          `json:"barcode"`
	CategoryID    string          `json:"category_id"`
	SupplierID    string          `json:"supplier_id"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	CurrentStock  int             `json:"current_stock" validate:"gte=0"`
	MinStock      int             `json:"min_stock" validate:"gte=0"`
	MaxStock      int             `json:"max_stock" validate:"gte=0"`
	Unit          string          `json:"unit"`
	ImageURL      string          `json:"image_url"`
	IsActive      *bool           `json:"is_active"`
}

// UpdateProductRequest entrada para actualizar un producto (parcial).
type UpdateProductRequest struct {
	Name          *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description   *string          `json:"description"`
	SKU           *string          `json:"sku" validate:"omitempty,min=1,max=100"`
	Barcode       *string          `json:"barcode"`
	CategoryID    *string          `json:"category_id"`
	SupplierID    *string          `json:"supplier_id"`
	PurchasePrice *decimal.Decimal `json:"purchase_price"`
	SalePrice     *decimal.Decimal `json:"sale_price"`
	CurrentStock  *int             `json:"current_stock" validate:"omitempty,gte=0"`
	MinStock      *int             `json:"min_stock" validate:"omitempty,gte=0"`
	MaxStock      *int             `json:"max_stock" validate:"omitempty,gte=0"`
	Unit          *string          `json:"unit"`
	ImageURL      *string          `json:"image_url"`
	IsActive      *bool            `json:"is_active"`
}

// ProductResponse salida de un producto con referencias resueltas.
// LowStock replica el indicador visual del listado: current_stock <= min_stock.
type ProductResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	SKU           string          `json:"sku"`
	Barcode       string          `json:"barcode"`
	CategoryID    string          `json:"category_id"`
	CategoryName  string          `json:"category_name"`
	SupplierID    string          `json:"supplier_id"`
	SupplierName  string          `json:"supplier_name"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	CurrentStock  int             `json:"current_stock"`
	MinStock      int             `json:"min_stock"`
	MaxStock      int             `json:"max_stock"`
	Unit          string          `json:"unit"`
	ImageURL      string          `json:"image_url"`
	IsActive      bool            `json:"is_active"`
	LowStock      bool            `json:"low_stock"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ProductListResponse listado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
}
