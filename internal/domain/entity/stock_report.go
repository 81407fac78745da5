package entity

import "time"

// StockQuantityRow fila de la vista de cantidad actual (una por bodega + código de artículo).
type StockQuantityRow struct {
	StorageID   string `db:"storage_id"`
	StorageCode string `db:"storage_code"`
	StorageName string `db:"storage_name"`
	ItemCode    string `db:"item_code"`
	ItemName    string `db:"item_name"`
	Quantity    int64  `db:"quantity"`
}

// StockAgeRow fila de la vista de antigüedad: última entrada (IN) por bodega + código de artículo.
type StockAgeRow struct {
	StorageID     string    `db:"storage_id"`
	StorageCode   string    `db:"storage_code"`
	StorageName   string    `db:"storage_name"`
	ItemCode      string    `db:"item_code"`
	ItemName      string    `db:"item_name"`
	LastInboundAt time.Time `db:"last_inbound_at"`
}

// OverallStock fila del reporte combinado de stock. StorageCode y DaysSinceLastInbound
// quedan en nil cuando el artículo no tiene entradas registradas en la bodega.
type OverallStock struct {
	StorageName          string
	ItemCode             string
	ItemName             string
	Quantity             int64
	StorageCode          *string
	DaysSinceLastInbound *int64
}
