package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/erp-inventario/internal/domain/entity"
)

type moveFlags struct {
	storage string
	item    string
	product string
	qty     int64
	ref     string
	remark  string
}

func newMoveCmd(app *cliApp) *cobra.Command {
	move := &cobra.Command{
		Use:   "move",
		Short: "Registrar entradas y salidas de stock",
	}
	move.AddCommand(
		newMoveTypeCmd(app, "in", entity.MovementTypeIN, "Entrada: suma |qty| a la posición"),
		newMoveTypeCmd(app, "out", entity.MovementTypeOUT, "Salida: resta |qty| (piso en cero si la bodega no admite sobreventa)"),
	)
	return move
}

func newMoveTypeCmd(app *cliApp, use, movementType, short string) *cobra.Command {
	var f moveFlags
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if (f.item == "") == (f.product == "") {
				return fmt.Errorf("indique --item o --product (solo uno)")
			}
			ctx := app.ctx(cmd)
			st, err := app.uc.MasterData.StorageByCode(ctx, f.storage)
			if err != nil {
				return err
			}

			var id string
			if f.product != "" {
				p, err := app.uc.MasterData.ProductByCode(ctx, f.product)
				if err != nil {
					return err
				}
				if movementType == entity.MovementTypeIN {
					id, err = app.uc.Movement.InProduct(ctx, st.ID, f.ref, p.ID, f.qty, f.remark)
				} else {
					id, err = app.uc.Movement.OutProduct(ctx, st.ID, f.ref, p.ID, f.qty, f.remark)
				}
				if err != nil {
					return err
				}
			} else {
				it, err := app.uc.MasterData.ItemByCode(ctx, f.item)
				if err != nil {
					return err
				}
				if movementType == entity.MovementTypeIN {
					id, err = app.uc.Movement.In(ctx, st.ID, f.ref, it.ID, f.qty, f.remark)
				} else {
					id, err = app.uc.Movement.Out(ctx, st.ID, f.ref, it.ID, f.qty, f.remark)
				}
				if err != nil {
					return err
				}
			}

			mov, err := app.uc.Ledger.GetByID(ctx, id)
			if err != nil {
				return err
			}
			fmt.Fprintf(app.out, "%s %s %s: %d -> %d (movimiento %s)\n", movementType, st.Code, f.ref, mov.Before, mov.After, id)
			return nil
		},
	}
	cmd.Flags().StringVar(&f.storage, "storage", "", "código de la bodega (p. ej. GDG.01)")
	cmd.Flags().StringVar(&f.item, "item", "", "código del artículo")
	cmd.Flags().StringVar(&f.product, "product", "", "código del producto")
	cmd.Flags().Int64Var(&f.qty, "qty", 0, "cantidad (se usa el valor absoluto)")
	cmd.Flags().StringVar(&f.ref, "ref", "", "número de referencia del documento")
	cmd.Flags().StringVar(&f.remark, "remark", "", "observación")
	_ = cmd.MarkFlagRequired("storage")
	_ = cmd.MarkFlagRequired("qty")
	return cmd
}
