package main

import (
	"fmt"

	"github.com/spf13/cobra"

	challanapp "github.com/zumech/backend/internal/application/challan"
	"github.com/zumech/backend/internal/infrastructure/persistence"
)

func newCompaniesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "companies",
		Short: "Print the distinct company names used on challans",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := persistence.NewDatabase(&a.cfg.Database, persistence.WithLogger(a.log))
			if err != nil {
				return fmt.Errorf("connect to database: %w", err)
			}
			defer db.Close()

			svc := challanapp.NewService(persistence.NewGormChallanRepository(db.DB),
				challanapp.WithLogger(a.log),
			)
			companies, err := svc.Companies(cmd.Context())
			if err != nil {
				return err
			}
			for _, name := range companies {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
