package main

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/erp-inventario/internal/application/auth"
	"github.com/jhoicas/erp-inventario/internal/infrastructure/backend"
	"github.com/jhoicas/erp-inventario/pkg/config"
	"github.com/jhoicas/erp-inventario/pkg/logger"
)

// cliApp estado compartido por los subcomandos. store y uc se abren en el pre-run
// salvo que ya vengan inyectados (tests).
type cliApp struct {
	cfg   *config.Config
	log   *logger.Logger
	store *backend.Backend
	uc    *backend.UseCases
	out   io.Writer

	user string
}

func newRootCmd(app *cliApp) *cobra.Command {
	root := &cobra.Command{
		Use:           "inventoryctl",
		Short:         "Operación de inventario: movimientos, stock y reportes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if app.out == nil {
				app.out = cmd.OutOrStdout()
			}
			if cmd.Annotations["store"] == "none" {
				return app.loadConfig()
			}
			return app.open(cmd.Context())
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app.store != nil {
				app.store.Close()
			}
		},
	}
	root.PersistentFlags().StringVar(&app.user, "user", "inventoryctl", "usuario registrado como autor en la auditoría")

	root.AddCommand(newMoveCmd(app), newStockCmd(app), newPDFCmd(app), newTokenCmd(app))
	return root
}

func (a *cliApp) loadConfig() error {
	if a.cfg != nil {
		return nil
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	a.cfg = cfg
	// stdout queda para la salida del comando
	a.log = logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level, Out: os.Stderr})
	return nil
}

func (a *cliApp) open(ctx context.Context) error {
	if a.uc != nil {
		return nil
	}
	if err := a.loadConfig(); err != nil {
		return err
	}
	store, err := backend.Open(ctx, a.cfg, a.log)
	if err != nil {
		return err
	}
	a.store = store
	a.uc = backend.NewUseCases(store, a.cfg.Inventory, a.log)
	return nil
}

// ctx contexto con el usuario de --user como actor.
func (a *cliApp) ctx(cmd *cobra.Command) context.Context {
	return auth.WithActor(cmd.Context(), a.user)
}
