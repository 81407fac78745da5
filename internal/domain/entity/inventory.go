package entity

// Inventory representa la posición de stock actual de un par (bodega, artículo) o
// (bodega, producto). Se crea de forma perezosa en el primer movimiento y se modifica
// en cada movimiento; Quantity siempre coincide con el After del último movimiento,
// salvo cuando la bodega aplica el piso en cero.
type Inventory struct {
	ID        string
	StorageID string
	ItemID    string // vacío si la posición es de producto
	ProductID string // vacío si la posición es de artículo
	Quantity  int64  // con signo: las bodegas que lo permiten registran sobreventa
	Storage   StorageSnapshot
	Item      *ItemSnapshot
	Product   *ProductSnapshot
	Stamp
}

// IsProduct indica si la posición está indexada por producto en lugar de artículo.
func (i *Inventory) IsProduct() bool {
	return i.ItemID == "" && i.ProductID != ""
}
