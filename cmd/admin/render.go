package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	printapp "github.com/zumech/backend/internal/application/printing"
	"github.com/zumech/backend/internal/domain/printing"
	"github.com/zumech/backend/internal/infrastructure/persistence"
	infra "github.com/zumech/backend/internal/infrastructure/printing"
)

func newRenderCmd(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "render challan|invoice|quotation <number>",
		Short: "Render a document to PDF without the HTTP server",
		Long: `Renders one document with the same templates and browser settings as
the server. Challans are addressed by challan number, invoices by bill
number and quotations by id. Without -o the file is written to the
current directory under its download name.`,
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{string(printing.DocKindChallan), string(printing.DocKindInvoice), string(printing.DocKindQuotation)},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := printing.DocKind(args[0])
			if !kind.IsValid() || kind == printing.DocKindBillSummary {
				return fmt.Errorf("unknown document kind %q", args[0])
			}

			db, err := persistence.NewDatabase(&a.cfg.Database, persistence.WithLogger(a.log))
			if err != nil {
				return fmt.Errorf("connect to database: %w", err)
			}
			defer db.Close()

			renderer, err := infra.NewChromedpRenderer(&infra.ChromedpConfig{
				DefaultTimeout: a.cfg.Printing.RenderTimeout,
				RemoteURL:      a.cfg.Printing.ChromeRemoteURL,
				NoSandbox:      a.cfg.Printing.NoSandbox,
				Logger:         a.log,
			})
			if err != nil {
				return fmt.Errorf("start renderer: %w", err)
			}
			defer renderer.Close()

			templates, err := infra.NewTemplateEngine(infra.LetterheadFrom(a.cfg.Printing))
			if err != nil {
				return err
			}

			svc := printapp.NewPrintService(
				persistence.NewGormChallanRepository(db.DB),
				persistence.NewGormInvoiceRepository(db.DB),
				persistence.NewGormQuotationRepository(db.DB),
				templates,
				renderer,
				printapp.WithLogger(a.log),
			)
			doc, err := svc.Render(cmd.Context(), kind, args[1])
			if err != nil {
				return err
			}

			path := output
			if path == "" {
				path = doc.FileName
			}
			if err := os.WriteFile(path, doc.Data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			a.log.Info("Document rendered",
				zap.String("kind", string(kind)),
				zap.String("number", args[1]),
				zap.String("path", path),
				zap.Int("bytes", len(doc.Data)),
			)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
			return err
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file")
	return cmd
}
