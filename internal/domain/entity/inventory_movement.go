package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario.
const (
	MovementTypeEntrada = "entrada" // aumenta el stock
	MovementTypeSalida  = "salida"  // disminuye el stock
)

// ValidMovementType indica si el tipo está dentro del catálogo conocido.
func ValidMovementType(t string) bool {
	return t == MovementTypeEntrada || t == MovementTypeSalida
}

// InventoryMovement representa un movimiento de stock (entrada o salida).
// Es inmutable una vez creado: no existe camino de actualización ni borrado.
// TotalPrice se fija al registrar el movimiento (Quantity × UnitPrice) y no se
// recalcula nunca, aunque el precio del producto cambie después.
type InventoryMovement struct {
	ID         string
	ProductID  string
	Type       string // entrada | salida
	Quantity   int    // siempre positivo
	UnitPrice  decimal.Decimal
	TotalPrice decimal.Decimal
	Reference  string
	Notes      string
	CreatedBy  string // vacío si no hay usuario asociado
	CreatedAt  time.Time
}
