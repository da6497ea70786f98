package dto

import "time"

// AlertResponse salida de una alerta con los datos mínimos del producto.
type AlertResponse struct {
	ID           string     `json:"id"`
	ProductID    string     `json:"product_id"`
	ProductName  string     `json:"product_name"`
	ProductSKU   string     `json:"product_sku"`
	CurrentStock int        `json:"current_stock"`
	MinStock     int        `json:"min_stock"`
	MaxStock     int        `json:"max_stock"`
	AlertType    string     `json:"alert_type"`
	IsResolved   bool       `json:"is_resolved"`
	CreatedAt    time.Time  `json:"created_at"`
	ResolvedAt   *time.Time `json:"resolved_at"`
}

// AlertListResponse listado de alertas.
type AlertListResponse struct {
	Items []AlertResponse `json:"items"`
}
