package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryRequest body para crear/actualizar una posición de inventario.
// Si ItemID está vacío la posición se resuelve por ProductID.
type InventoryRequest struct {
	StorageID string `json:"storageId"`
	ItemID    string `json:"itemId,omitempty"`
	ProductID string `json:"productId,omitempty"`
	Quantity  *int64 `json:"quantity"`
}

// StorageSnapshotResponse copia de la bodega dentro de la posición.
type StorageSnapshotResponse struct {
	ID   string `json:"_id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// ItemSnapshotResponse copia del artículo o producto dentro de la posición.
type ItemSnapshotResponse struct {
	ID               string           `json:"_id"`
	Code             string           `json:"code"`
	Name             string           `json:"name"`
	RealizationOrder string           `json:"realizationOrder,omitempty"`
	DomesticSale     *decimal.Decimal `json:"domesticSale,omitempty"`
	Price            *decimal.Decimal `json:"price,omitempty"`
}

// InventoryResponse salida de una posición de inventario.
type InventoryResponse struct {
	ID        string                  `json:"_id"`
	StorageID string                  `json:"storageId"`
	ItemID    string                  `json:"itemId,omitempty"`
	ProductID string                  `json:"productId,omitempty"`
	Quantity  int64                   `json:"quantity"`
	Storage   StorageSnapshotResponse `json:"storage"`
	Item      *ItemSnapshotResponse   `json:"item,omitempty"`
	Product   *ItemSnapshotResponse   `json:"product,omitempty"`
	Deleted   bool                    `json:"_deleted"`
	CreatedBy string                  `json:"_createdBy"`
	CreatedAt time.Time               `json:"_createdDate"`
	UpdatedBy string                  `json:"_updatedBy"`
	UpdatedAt time.Time               `json:"_updatedDate"`
}

// InventoryListResponse lista paginada de posiciones.
type InventoryListResponse struct {
	Items []InventoryResponse `json:"data"`
	Page  PageResponse        `json:"page"`
}

// MovementRequest body para POST /api/inventories/movements/{in|out}.
// Exactamente uno de ItemID / ProductID debe venir informado.
type MovementRequest struct {
	StorageID string `json:"storageId"`
	Reference string `json:"reference"`
	ItemID    string `json:"itemId,omitempty"`
	ProductID string `json:"productId,omitempty"`
	Quantity  int64  `json:"quantity"`
	Remark    string `json:"remark"`
}

// InventoryMovementRequest body para registrar directamente una entrada del libro.
type InventoryMovementRequest struct {
	InventoryID string `json:"inventoryId"`
	Reference   string `json:"reference"`
	Type        string `json:"type"`
	Before      int64  `json:"before"`
	Quantity    int64  `json:"quantity"`
	After       int64  `json:"after"`
	Remark      string `json:"remark"`
}

// InventoryMovementResponse salida de una entrada del libro de movimientos.
type InventoryMovementResponse struct {
	ID          string    `json:"_id"`
	InventoryID string    `json:"inventoryId"`
	Date        time.Time `json:"date"`
	Reference   string    `json:"reference"`
	Type        string    `json:"type"`
	StorageID   string    `json:"storageId"`
	ItemID      string    `json:"itemId,omitempty"`
	ProductID   string    `json:"productId,omitempty"`
	Before      int64     `json:"before"`
	Quantity    int64     `json:"quantity"`
	After       int64     `json:"after"`
	Remark      string    `json:"remark"`
	CreatedBy   string    `json:"_createdBy"`
}

// InventoryMovementListResponse lista paginada del libro de movimientos.
type InventoryMovementListResponse struct {
	Items []InventoryMovementResponse `json:"data"`
	Page  PageResponse                `json:"page"`
}

// OverallStockResponse fila del reporte combinado de stock.
type OverallStockResponse struct {
	StorageName          string  `json:"storageName"`
	ItemCode             string  `json:"itemCode"`
	ItemName             string  `json:"itemName"`
	Quantity             int64   `json:"quantity"`
	StorageCode          *string `json:"storageCode,omitempty"`
	DaysSinceLastInbound *int64  `json:"daysSinceLastInbound,omitempty"`
}
