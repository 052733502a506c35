package commands

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"quotecalc/services"
)

func newImportCmd(env *Env) *cobra.Command {
	var (
		output    string
		errorsOut string
		number    string
		client    string
	)

	cmd := &cobra.Command{
		Use:   "import <file.csv|file.xlsx>",
		Short: "Turn a line-item sheet into a quote document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open %s: %w", args[0], err)
			}
			defer f.Close()

			result, err := services.ParseLineItems(f, filepath.Base(args[0]))
			if err != nil {
				return errorNotice(cmd.ErrOrStderr(), err, "Failed to read "+filepath.Base(args[0]))
			}

			stderr := cmd.ErrOrStderr()
			for _, col := range result.Unrecognized {
				setNotice(stderr, noticeWarning, fmt.Sprintf("column %q was ignored", col))
			}
			for _, w := range result.Warnings {
				setNotice(stderr, noticeWarning, fmt.Sprintf("row %d, %s: %s", w.Row, w.Field, w.Message))
			}
			if errorsOut != "" && len(result.Warnings) > 0 {
				report, err := services.GenerateErrorReport(result.Warnings)
				if err != nil {
					return fmt.Errorf("build error report: %w", err)
				}
				if err := writeOutput(env, "import", errorsOut, report); err != nil {
					return err
				}
			}

			q := services.Quote{
				Number:   number,
				Client:   services.Party{Name: client},
				Date:     env.now().Format("2006-01-02"),
				Currency: env.Config.Currency,
				Status:   "draft",
				TaxRate:  env.Config.TaxRate,
				Discount: services.Empty(),
				Items:    result.Items,
			}

			var buf bytes.Buffer
			if err := services.WriteQuote(&buf, q); err != nil {
				return err
			}
			if output == "" {
				_, err := cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}
			if err := writeOutput(env, "import", output, buf.Bytes()); err != nil {
				return err
			}
			setNotice(cmd.OutOrStdout(), noticeSuccess, fmt.Sprintf(
				"imported %s lines (%s blank rows skipped, %s warnings) into %s",
				humanize.Comma(int64(result.TotalRows)),
				humanize.Comma(int64(result.SkippedRows)),
				humanize.Comma(int64(len(result.Warnings))),
				output,
			))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the quote to this file instead of stdout")
	cmd.Flags().StringVar(&errorsOut, "errors", "", "write row warnings to this xlsx file")
	cmd.Flags().StringVar(&number, "number", "", "quote number for the new document")
	cmd.Flags().StringVar(&client, "client", "", "client name for the new document")
	return cmd
}
