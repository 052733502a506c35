package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"quotecalc/services"
)

// totalsOutput is the --json form of the totals command.
type totalsOutput struct {
	Number   string                  `json:"number,omitempty"`
	Currency string                  `json:"currency"`
	Lines    []lineOutput            `json:"lines"`
	Totals   services.DocumentTotals `json:"totals"`
}

type lineOutput struct {
	Name      string  `json:"name"`
	Totalled  bool    `json:"totalled"`
	LineTotal float64 `json:"line_total"`
}

func newTotalsCmd(env *Env) *cobra.Command {
	var (
		taxRate  string
		discount string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "totals <file>",
		Short: "Price a quote (.json) or a line-item sheet (.csv, .xlsx)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(env, args[0])
			if err != nil {
				return err
			}
			q := doc.Quote
			if cmd.Flags().Changed("tax-rate") {
				q.TaxRate = services.Raw(taxRate)
			}
			if cmd.Flags().Changed("discount") {
				q.Discount = services.Raw(discount)
			}

			totals := q.Totals()
			env.Logger.Debug().
				Str("file", doc.Path).
				Float64("total", totals.TotalAmount).
				Msg("totals: priced")

			if asJSON {
				return writeTotalsJSON(cmd.OutOrStdout(), q, totals)
			}
			if q.Number != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\n\n", q.Number)
			}
			if err := writeLinesTable(cmd.OutOrStdout(), q); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout())
			return writeTotalsTable(cmd.OutOrStdout(), totals, q.Currency)
		},
	}

	cmd.Flags().StringVar(&taxRate, "tax-rate", "", "tax rate in percent, overrides the document")
	cmd.Flags().StringVar(&discount, "discount", "", "flat header discount, overrides the document")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print totals as JSON")
	return cmd
}

func writeTotalsJSON(w io.Writer, q services.Quote, totals services.DocumentTotals) error {
	out := totalsOutput{
		Number:   q.Number,
		Currency: q.Currency,
		Lines:    make([]lineOutput, 0, len(q.Items)),
		Totals:   totals,
	}
	for i, lt := range q.LineTotals() {
		out.Lines = append(out.Lines, lineOutput{
			Name:      q.Items[i].Name,
			Totalled:  q.Items[i].Named(),
			LineTotal: lt,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
