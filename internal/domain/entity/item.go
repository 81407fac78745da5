package entity

import "github.com/shopspring/decimal"

// Item representa un artículo (SKU de prenda) del catálogo maestro.
type Item struct {
	ID                      string
	Code                    string
	Name                    string
	ArticleRealizationOrder string          // orden de realización del artículo
	DomesticSale            decimal.Decimal // precio de venta nacional
}

// ItemSnapshot copia desnormalizada del artículo guardada dentro de cada posición.
type ItemSnapshot struct {
	ID                      string          `json:"_id"`
	Code                    string          `json:"code"`
	Name                    string          `json:"name"`
	ArticleRealizationOrder string          `json:"realizationOrder"`
	DomesticSale            decimal.Decimal `json:"domesticSale"`
}

// Snapshot devuelve la copia desnormalizada del artículo.
func (i *Item) Snapshot() *ItemSnapshot {
	return &ItemSnapshot{
		ID:                      i.ID,
		Code:                    i.Code,
		Name:                    i.Name,
		ArticleRealizationOrder: i.ArticleRealizationOrder,
		DomesticSale:            i.DomesticSale,
	}
}
