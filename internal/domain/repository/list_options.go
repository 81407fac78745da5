package repository

// Claves de orden lógicas aceptadas por los listados (se traducen a columnas en cada adaptador).
const (
	OrderByID          = "_id"
	OrderByCreatedDate = "_createdDate"
	OrderByUpdatedDate = "_updatedDate"
	OrderByCode        = "code"
	OrderByName        = "name"
	OrderByQuantity    = "quantity"
	OrderByDate        = "date"
)

// ListOptions paginación, orden y búsqueda por palabra clave para los listados.
// Keyword se busca como texto literal (los metacaracteres se escapan), sin distinguir mayúsculas.
type ListOptions struct {
	Offset  int
	Limit   int
	OrderBy string
	Asc     bool
	Keyword string
}
