package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/erp-inventario/pkg/jwt"
)

func newTokenCmd(app *cliApp) *cobra.Command {
	var role string
	var minutes int
	cmd := &cobra.Command{
		Use:         "token",
		Short:       "Emite un Bearer token para la API firmado con JWT_SECRET",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{"store": "none"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if minutes <= 0 {
				minutes = app.cfg.JWT.Expiration
			}
			tok, err := jwt.Generate(app.cfg.JWT.Secret, app.user, role, app.cfg.JWT.Issuer, minutes)
			if err != nil {
				return err
			}
			fmt.Fprintln(app.out, tok)
			return nil
		},
	}
	cmd.Flags().StringVar(&role, "role", "consulta", "rol: admin, bodeguero o consulta")
	cmd.Flags().IntVar(&minutes, "minutes", 0, "vigencia en minutos (por defecto JWT_EXPIRATION_MINUTES)")
	return cmd
}
