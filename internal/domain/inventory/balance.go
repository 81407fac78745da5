package inventory

import (
	"time"

	"github.com/jhoicas/erp-inventario/internal/domain/entity"
)

// Balance resultado de aplicar un movimiento a una posición.
// Before/After son los valores que se registran en el libro; Stored es la cantidad
// que queda guardada en la posición.
type Balance struct {
	Before  int64
	After   int64
	Stored  int64
	Clamped bool
}

// ApplyMovement aplica el delta con signo qty sobre before.
// Si la bodega no permite stock negativo y el resultado es < 0, la posición se guarda en 0
// pero el libro conserva la aritmética real: Before = before, After = before + qty.
func ApplyMovement(before, qty int64, allowNegative bool) Balance {
	after := before + qty
	b := Balance{Before: before, After: after, Stored: after}
	if !allowNegative && after < 0 {
		b.Stored = 0
		b.Clamped = true
	}
	return b
}

// ApplyMovementLegacy reproduce la aritmética histórica del piso en cero:
// Before = before - qty y After = Before + qty (el After del libro queda igual al stock previo).
// Sin piso activo se comporta igual que ApplyMovement.
func ApplyMovementLegacy(before, qty int64, allowNegative bool) Balance {
	b := ApplyMovement(before, qty, allowNegative)
	if b.Clamped {
		b.Before = before - qty
		b.After = b.Before + qty
	}
	return b
}

// Signed aplica el signo del tipo de movimiento sobre |qty|: OUT resta, IN suma.
func Signed(movementType string, qty int64) int64 {
	if qty < 0 {
		qty = -qty
	}
	if movementType == entity.MovementTypeOUT {
		return -qty
	}
	return qty
}

const millisPerDay = int64(24 * time.Hour / time.Millisecond)

// StockAgeDays devuelve los días completos transcurridos desde la última entrada:
// floor((now - last) / 86400000 ms). Truncado hacia cero como $trunc.
func StockAgeDays(now, lastInbound time.Time) int64 {
	return now.Sub(lastInbound).Milliseconds() / millisPerDay
}
