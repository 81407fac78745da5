package entity

import "github.com/shopspring/decimal"

// Product representa un producto terminado (catálogo de venta), alternativo a Item
// como clave de una posición de inventario.
type Product struct {
	ID    string
	Code  string
	Name  string
	Price decimal.Decimal
}

// ProductSnapshot copia desnormalizada del producto guardada dentro de cada posición.
type ProductSnapshot struct {
	ID    string          `json:"_id"`
	Code  string          `json:"code"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// Snapshot devuelve la copia desnormalizada del producto.
func (p *Product) Snapshot() *ProductSnapshot {
	return &ProductSnapshot{ID: p.ID, Code: p.Code, Name: p.Name, Price: p.Price}
}
