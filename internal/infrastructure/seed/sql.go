package seed

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// WriteSQL escribe los INSERT idempotentes del catálogo (upsert por código).
func WriteSQL(w io.Writer, c *Catalog) error {
	bw := bufio.NewWriter(w)

	bw.WriteString("-- Datos maestros generados desde el catálogo CSV\n\n")
	if len(c.Storages) > 0 {
		bw.WriteString("INSERT INTO storages (id, code, name, description, allow_negative_stock) VALUES\n")
		for i, s := range c.Storages {
			fmt.Fprintf(bw, "  ('%s', '%s', '%s', '%s', %t)%s\n",
				s.ID, escapeSQL(s.Code), escapeSQL(s.Name), escapeSQL(s.Description), s.AllowNegativeStock, sep(i, len(c.Storages)))
		}
		bw.WriteString("ON CONFLICT (code) DO UPDATE SET name = EXCLUDED.name, description = EXCLUDED.description,\n")
		bw.WriteString("  allow_negative_stock = EXCLUDED.allow_negative_stock;\n\n")
	}
	if len(c.Items) > 0 {
		bw.WriteString("INSERT INTO items (id, code, name, article_realization_order, domestic_sale) VALUES\n")
		for i, it := range c.Items {
			fmt.Fprintf(bw, "  ('%s', '%s', '%s', '%s', %s)%s\n",
				it.ID, escapeSQL(it.Code), escapeSQL(it.Name), escapeSQL(it.ArticleRealizationOrder), it.DomesticSale.StringFixed(2), sep(i, len(c.Items)))
		}
		bw.WriteString("ON CONFLICT (code) DO UPDATE SET name = EXCLUDED.name,\n")
		bw.WriteString("  article_realization_order = EXCLUDED.article_realization_order, domestic_sale = EXCLUDED.domestic_sale;\n\n")
	}
	if len(c.Products) > 0 {
		bw.WriteString("INSERT INTO products (id, code, name, price) VALUES\n")
		for i, p := range c.Products {
			fmt.Fprintf(bw, "  ('%s', '%s', '%s', %s)%s\n",
				p.ID, escapeSQL(p.Code), escapeSQL(p.Name), p.Price.StringFixed(2), sep(i, len(c.Products)))
		}
		bw.WriteString("ON CONFLICT (code) DO UPDATE SET name = EXCLUDED.name, price = EXCLUDED.price;\n")
	}
	return bw.Flush()
}

func sep(i, n int) string {
	if i < n-1 {
		return ","
	}
	return ""
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
