package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jhoicas/erp-inventario/internal/application/inventory"
)

func newStockCmd(app *cliApp) *cobra.Command {
	var storage, keyword string
	cmd := &cobra.Command{
		Use:   "stock",
		Short: "Stock actual y días desde la última entrada por artículo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := app.ctx(cmd)
			st, err := app.uc.MasterData.StorageByCode(ctx, storage)
			if err != nil {
				return err
			}
			rows, err := app.uc.StockReport.GetOverallStock(ctx, st.ID, inventory.StockFilter{Keyword: keyword})
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(app.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "CÓDIGO\tNOMBRE\tCANTIDAD\tDÍAS")
			for _, r := range rows {
				days := "-"
				if r.DaysSinceLastInbound != nil {
					days = fmt.Sprint(*r.DaysSinceLastInbound)
				}
				fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", r.ItemCode, r.ItemName, r.Quantity, days)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&storage, "storage", "", "código de la bodega")
	cmd.Flags().StringVar(&keyword, "keyword", "", "filtra por código, nombre u orden de realización")
	_ = cmd.MarkFlagRequired("storage")
	return cmd
}

func newPDFCmd(app *cliApp) *cobra.Command {
	var storage, keyword, out string
	cmd := &cobra.Command{
		Use:   "pdf",
		Short: "Exporta el reporte de stock de una bodega a PDF",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := app.ctx(cmd)
			st, err := app.uc.MasterData.StorageByCode(ctx, storage)
			if err != nil {
				return err
			}
			pdf, filename, err := app.uc.StockReport.ExportOverallStockPDF(ctx, st.ID, inventory.StockFilter{Keyword: keyword})
			if err != nil {
				return err
			}
			if out == "" {
				out = filename
			}
			if err := os.WriteFile(out, pdf, 0o644); err != nil {
				return fmt.Errorf("escribir PDF: %w", err)
			}
			fmt.Fprintf(app.out, "generado %s (%d bytes)\n", out, len(pdf))
			return nil
		},
	}
	cmd.Flags().StringVar(&storage, "storage", "", "código de la bodega")
	cmd.Flags().StringVar(&keyword, "keyword", "", "filtro por palabra clave")
	cmd.Flags().StringVarP(&out, "out", "o", "", "archivo de salida (por defecto stock-<bodega>-<fecha>.pdf)")
	_ = cmd.MarkFlagRequired("storage")
	return cmd
}
