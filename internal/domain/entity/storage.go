package entity

// Storage representa una bodega o punto de venta donde se almacena inventario (dato maestro).
// AllowNegativeStock=false activa el piso en cero de la posición (ver inventory.ApplyMovement).
type Storage struct {
	ID                 string
	Code               string
	Name               string
	Description        string
	AllowNegativeStock bool
}

// StorageSnapshot copia desnormalizada de la bodega guardada dentro de cada posición.
type StorageSnapshot struct {
	ID                 string `json:"_id"`
	Code               string `json:"code"`
	Name               string `json:"name"`
	AllowNegativeStock bool   `json:"allowNegativeStock"`
}

// Snapshot devuelve la copia desnormalizada de la bodega.
func (s *Storage) Snapshot() StorageSnapshot {
	return StorageSnapshot{ID: s.ID, Code: s.Code, Name: s.Name, AllowNegativeStock: s.AllowNegativeStock}
}
