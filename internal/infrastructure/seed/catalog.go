// Package seed lee el catálogo maestro (bodegas, artículos, productos) desde el CSV
// exportado por el ERP contable, codificado en ISO-8859-1 y separado por punto y coma.
//
// Columnas: tipo;codigo;nombre;detalle;valor
//
//	BODEGA    detalle = descripción, valor = S/N (admite sobreventa; vacío = S)
//	ARTICULO  detalle = orden de realización, valor = precio de venta nacional
//	PRODUCTO  valor = precio
package seed

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/erp-inventario/internal/domain/entity"
)

// Tipos de fila del CSV.
const (
	KindStorage = "BODEGA"
	KindItem    = "ARTICULO"
	KindProduct = "PRODUCTO"
)

// Catalog datos maestros leídos del CSV, en el orden del archivo.
type Catalog struct {
	Storages []entity.Storage
	Items    []entity.Item
	Products []entity.Product
}

// Putter destino de carga del catálogo (p. ej. memory.Store).
type Putter interface {
	PutStorage(*entity.Storage)
	PutItem(*entity.Item)
	PutProduct(*entity.Product)
}

// Apply carga todo el catálogo en dst.
func (c *Catalog) Apply(dst Putter) {
	for i := range c.Storages {
		dst.PutStorage(&c.Storages[i])
	}
	for i := range c.Items {
		dst.PutItem(&c.Items[i])
	}
	for i := range c.Products {
		dst.PutProduct(&c.Products[i])
	}
}

// LoadFile abre y parsea el CSV en path.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("abrir catálogo: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodifica ISO-8859-1 y lee las filas. La cabecera (primera columna "tipo")
// y las líneas que empiezan por # se ignoran.
func Parse(r io.Reader) (*Catalog, error) {
	cr := csv.NewReader(transform.NewReader(r, charmap.ISO8859_1.NewDecoder()))
	cr.Comma = ';'
	cr.Comment = '#'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	cat := &Catalog{}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return cat, nil
		}
		if err != nil {
			return nil, fmt.Errorf("leer catálogo: %w", err)
		}
		line, _ := cr.FieldPos(0)
		if err := cat.add(rec); err != nil {
			return nil, fmt.Errorf("línea %d: %w", line, err)
		}
	}
}

func (c *Catalog) add(rec []string) error {
	field := func(i int) string {
		if i < len(rec) {
			return strings.TrimSpace(rec[i])
		}
		return ""
	}
	kind := strings.ToUpper(field(0))
	if kind == "" || kind == "TIPO" {
		return nil
	}
	code, name := field(1), field(2)
	if code == "" || name == "" {
		return fmt.Errorf("codigo y nombre son requeridos")
	}

	switch kind {
	case KindStorage:
		allow := true
		switch strings.ToUpper(field(4)) {
		case "", "S", "SI", "SÍ":
		case "N", "NO":
			allow = false
		default:
			return fmt.Errorf("sobreventa inválida %q (S/N)", field(4))
		}
		c.Storages = append(c.Storages, entity.Storage{
			ID:                 StableID(KindStorage, code),
			Code:               code,
			Name:               name,
			Description:        field(3),
			AllowNegativeStock: allow,
		})
	case KindItem:
		price, err := parsePrice(field(4))
		if err != nil {
			return err
		}
		c.Items = append(c.Items, entity.Item{
			ID:                      StableID(KindItem, code),
			Code:                    code,
			Name:                    name,
			ArticleRealizationOrder: field(3),
			DomesticSale:            price,
		})
	case KindProduct:
		price, err := parsePrice(field(4))
		if err != nil {
			return err
		}
		c.Products = append(c.Products, entity.Product{
			ID:    StableID(KindProduct, code),
			Code:  code,
			Name:  name,
			Price: price,
		})
	default:
		return fmt.Errorf("tipo desconocido %q", kind)
	}
	return nil
}

// parsePrice acepta coma decimal ("89000,50") además de punto.
func parsePrice(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(s, ",", "."))
	if err != nil {
		return decimal.Zero, fmt.Errorf("precio inválido %q", s)
	}
	return d, nil
}

// StableID deriva un UUID v5 del tipo y el código, de modo que recargar el mismo
// catálogo produce los mismos IDs en memoria y en el SQL generado.
func StableID(kind, code string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(strings.ToLower(kind)+":"+code)).String()
}
