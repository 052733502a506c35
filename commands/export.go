package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"quotecalc/services"
)

// Export formats.
const (
	formatXLSX = "xlsx"
	formatPDF  = "pdf"
)

func newExportCmd(env *Env) *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Write a document as an Excel workbook or a PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format = exportFormat(format, output)
			if format != formatXLSX && format != formatPDF {
				return errorNotice(cmd.ErrOrStderr(), nil, fmt.Sprintf("unknown export format %q, use xlsx or pdf", format))
			}

			doc, err := loadDocument(env, args[0])
			if err != nil {
				return err
			}
			if err := doc.Quote.Validate(); err != nil {
				setNotice(cmd.ErrOrStderr(), noticeWarning, fmt.Sprintf("exporting a document that cannot be saved: %v", err))
			}

			data := services.BuildExportData(doc.Quote, env.Config.Company)

			var content []byte
			switch format {
			case formatPDF:
				content, err = services.GeneratePDF(data)
			default:
				content, err = services.GenerateExcel(data)
			}
			if err != nil {
				env.Logger.Error().Err(err).Str("file", doc.Path).Str("format", format).Msg("export: generation failed")
				return errorNotice(cmd.ErrOrStderr(), err, "Failed to generate "+strings.ToUpper(format))
			}

			if output == "" {
				output = fmt.Sprintf("Quote_%s_%s.%s", documentName(doc.Quote), env.now().Format("20060102"), format)
			}
			if err := writeOutput(env, "export", output, content); err != nil {
				return err
			}
			setNotice(cmd.OutOrStdout(), noticeSuccess, fmt.Sprintf("%s written to %s", data.Title, output))
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: xlsx or pdf (default from --output, else xlsx)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file")
	return cmd
}

// exportFormat picks the format from the flag, then the output extension.
func exportFormat(format, output string) string {
	format = strings.ToLower(strings.TrimSpace(format))
	if format != "" {
		return format
	}
	if strings.EqualFold(filepath.Ext(output), ".pdf") {
		return formatPDF
	}
	return formatXLSX
}
