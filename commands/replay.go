package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"quotecalc/services"
)

func newReplayCmd(env *Env) *cobra.Command {
	var (
		all    bool
		asJSON bool
		output string
	)

	cmd := &cobra.Command{
		Use:   "replay <quote.json> <edits.jsonl>",
		Short: "Apply a stream of edits to a quote and print the totals it would publish",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(env, args[0])
			if err != nil {
				return err
			}
			edits, err := os.Open(args[1])
			if err != nil {
				return fmt.Errorf("open %s: %w", args[1], err)
			}
			defer edits.Close()

			q := doc.Quote
			tw := newTable(cmd.OutOrStdout())
			enc := json.NewEncoder(cmd.OutOrStdout())
			if !asJSON {
				row(tw, "LINE", "OP", "SUBTOTAL", "TAX", "TOTAL", "PUBLISHED")
			}

			var steps, published int
			err = services.Replay(&q, edits, func(step services.ReplayStep) error {
				steps++
				if step.Emitted {
					published++
					env.Logger.Debug().Int("line", step.Line).Float64("total", step.Totals.TotalAmount).Msg("replay: totals changed")
				}
				if !step.Emitted && !all {
					return nil
				}
				if asJSON {
					return enc.Encode(step)
				}
				row(tw,
					fmt.Sprint(step.Line),
					step.Op,
					services.FormatAmount(step.Totals.Subtotal, q.Currency),
					services.FormatAmount(step.Totals.TaxAmount, q.Currency),
					services.FormatAmount(step.Totals.TotalAmount, q.Currency),
					yesNo(step.Emitted),
				)
				return nil
			})
			if !asJSON {
				if ferr := tw.Flush(); ferr != nil && err == nil {
					err = ferr
				}
			}
			if err != nil {
				return errorNotice(cmd.ErrOrStderr(), err, "Replay stopped")
			}

			env.Logger.Info().Int("edits", steps).Int("published", published).Msg("replay: done")
			if output != "" {
				// hand-written documents may carry lines without IDs
				q.EnsureItemIDs()
				var buf bytes.Buffer
				if err := services.WriteQuote(&buf, q); err != nil {
					return err
				}
				return writeOutput(env, "replay", output, buf.Bytes())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "also print edits that did not change the totals")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print one JSON object per edit")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the edited quote to this file")
	return cmd
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
