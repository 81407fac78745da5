// inventoryctl herramienta de operación: movimientos de stock, reporte combinado,
// exportación PDF y emisión de tokens para la API.
//
// Uso: go run ./cmd/inventoryctl move in --storage GDG.01 --item A --qty 10 --ref OC-001
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(&cliApp{out: os.Stdout}).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
