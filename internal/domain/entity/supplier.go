package entity

import "time"

// Supplier representa un proveedor de productos. Todos los datos de contacto son opcionales.
type Supplier struct {
	ID          string
	Name        string
	ContactName string
	Email       string
	Phone       string
	Address     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
