package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MovementTypeIN  = "IN"  // entrada
	MovementTypeOUT = "OUT" // salida
)

// InventoryMovement es una entrada inmutable del libro de movimientos.
// Se escribe una vez por movimiento y nunca se actualiza ni elimina.
type InventoryMovement struct {
	ID          string
	InventoryID string
	Date        time.Time
	Reference   string // factura, transferencia, ajuste, etc.
	Type        string // IN | OUT
	StorageID   string
	ItemID      string
	ProductID   string
	Before      int64
	Quantity    int64 // delta con signo: negativo en salidas
	After       int64
	Remark      string
	CreatedBy   string
	CreatedAt   time.Time
}

// IsValidMovementType valida el tipo de movimiento.
func IsValidMovementType(t string) bool {
	return t == MovementTypeIN || t == MovementTypeOUT
}
