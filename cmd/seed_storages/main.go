// seed_storages genera el script SQL de datos maestros (bodegas, artículos y productos)
// a partir del catálogo CSV exportado por el ERP contable (ISO-8859-1, separado por ;).
//
// Uso: go run ./cmd/seed_storages [ruta/catalogo.csv] [salida.sql]
// Por defecto lee catalogo.csv del directorio actual y escribe
// internal/infrastructure/postgres/seeds/master_data.sql.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jhoicas/erp-inventario/internal/infrastructure/seed"
)

func main() {
	csvPath := "catalogo.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}
	outPath := filepath.Join(findModuleRoot(), "internal", "infrastructure", "postgres", "seeds", "master_data.sql")
	if len(os.Args) > 2 {
		outPath = os.Args[2]
	}

	cat, err := seed.LoadFile(csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Leer catálogo: %v\n", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Crear directorio: %v\n", err)
		os.Exit(1)
	}
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	if err := seed.WriteSQL(out, cat); err != nil {
		fmt.Fprintf(os.Stderr, "Escribir SQL: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Generado %s: %d bodegas, %d artículos, %d productos\n",
		outPath, len(cat.Storages), len(cat.Items), len(cat.Products))
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
