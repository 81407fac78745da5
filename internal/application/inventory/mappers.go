package inventory

import (
	"github.com/jhoicas/erp-inventario/internal/application/dto"
	"github.com/jhoicas/erp-inventario/internal/domain/entity"
)

func toInventoryResponse(inv *entity.Inventory) *dto.InventoryResponse {
	if inv == nil {
		return nil
	}
	out := &dto.InventoryResponse{
		ID:        inv.ID,
		StorageID: inv.StorageID,
		ItemID:    inv.ItemID,
		ProductID: inv.ProductID,
		Quantity:  inv.Quantity,
		Storage: dto.StorageSnapshotResponse{
			ID:   inv.Storage.ID,
			Code: inv.Storage.Code,
			Name: inv.Storage.Name,
		},
		Deleted:   inv.Deleted,
		CreatedBy: inv.CreatedBy,
		CreatedAt: inv.CreatedAt,
		UpdatedBy: inv.UpdatedBy,
		UpdatedAt: inv.UpdatedAt,
	}
	if inv.Item != nil {
		sale := inv.Item.DomesticSale
		out.Item = &dto.ItemSnapshotResponse{
			ID:               inv.Item.ID,
			Code:             inv.Item.Code,
			Name:             inv.Item.Name,
			RealizationOrder: inv.Item.ArticleRealizationOrder,
			DomesticSale:     &sale,
		}
	}
	if inv.Product != nil {
		price := inv.Product.Price
		out.Product = &dto.ItemSnapshotResponse{
			ID:    inv.Product.ID,
			Code:  inv.Product.Code,
			Name:  inv.Product.Name,
			Price: &price,
		}
	}
	return out
}

func toInventoryResponses(list []*entity.Inventory) []dto.InventoryResponse {
	out := make([]dto.InventoryResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, *toInventoryResponse(inv))
	}
	return out
}

func toMovementResponse(m *entity.InventoryMovement) *dto.InventoryMovementResponse {
	if m == nil {
		return nil
	}
	return &dto.InventoryMovementResponse{
		ID:          m.ID,
		InventoryID: m.InventoryID,
		Date:        m.Date,
		Reference:   m.Reference,
		Type:        m.Type,
		StorageID:   m.StorageID,
		ItemID:      m.ItemID,
		ProductID:   m.ProductID,
		Before:      m.Before,
		Quantity:    m.Quantity,
		After:       m.After,
		Remark:      m.Remark,
		CreatedBy:   m.CreatedBy,
	}
}

func toMovementResponses(list []*entity.InventoryMovement) []dto.InventoryMovementResponse {
	out := make([]dto.InventoryMovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, *toMovementResponse(m))
	}
	return out
}

func toOverallStockResponse(s entity.OverallStock) dto.OverallStockResponse {
	return dto.OverallStockResponse{
		StorageName:          s.StorageName,
		ItemCode:             s.ItemCode,
		ItemName:             s.ItemName,
		Quantity:             s.Quantity,
		StorageCode:          s.StorageCode,
		DaysSinceLastInbound: s.DaysSinceLastInbound,
	}
}
