package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"quotecalc/services"
)

func newReportCmd(env *Env) *cobra.Command {
	var (
		asJSON   bool
		markdown bool
		xlsxOut  string
		title    string
	)

	cmd := &cobra.Command{
		Use:   "report [files...]",
		Short: "Summarize quotes by status (defaults to every .json file in the quote directory)",
		RunE: func(cmd *cobra.Command, args []string) error {
			files := args
			if len(files) == 0 {
				var err error
				files, err = quoteFiles(env.Config.QuoteDir)
				if err != nil {
					return err
				}
			}

			var quotes []services.Quote
			for _, path := range files {
				doc, err := loadDocument(env, path)
				if err != nil {
					env.Logger.Warn().Err(err).Str("file", path).Msg("report: skipped file")
					setNotice(cmd.ErrOrStderr(), noticeWarning, "skipped "+path)
					continue
				}
				quotes = append(quotes, doc.Quote)
			}
			if len(quotes) == 0 {
				return errorNotice(cmd.ErrOrStderr(), nil, "no quotes to report on")
			}

			summary := services.SummarizeQuotes(quotes)
			if xlsxOut != "" {
				content, err := services.GenerateRegisterExcel(title, summary)
				if err != nil {
					return errorNotice(cmd.ErrOrStderr(), err, "Failed to generate register")
				}
				if err := writeOutput(env, "report", xlsxOut, content); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			switch {
			case asJSON:
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(summary)
			case markdown:
				r, err := glamour.NewTermRenderer(
					glamour.WithStandardStyle("notty"),
					glamour.WithWordWrap(120),
				)
				if err != nil {
					return fmt.Errorf("markdown renderer: %w", err)
				}
				rendered, err := r.Render(registerMarkdown(title, summary, env.Config.Currency))
				if err != nil {
					return fmt.Errorf("render markdown: %w", err)
				}
				_, err = io.WriteString(out, rendered)
				return err
			}
			return writeRegisterTable(out, summary, env.Config.Currency)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the summary as JSON")
	cmd.Flags().BoolVar(&markdown, "markdown", false, "print the summary as rendered markdown")
	cmd.Flags().StringVar(&xlsxOut, "xlsx", "", "also write the register to this xlsx file")
	cmd.Flags().StringVar(&title, "title", "Quote Register", "register title")
	return cmd
}

func writeRegisterTable(w io.Writer, summary services.DashboardSummary, currency string) error {
	amount := func(v float64) string { return services.FormatAmount(v, currency) }

	tw := newTable(w)
	row(tw, "QUOTE", "CLIENT", "DATE", "STATUS", "LINES", "TOTAL")
	for _, q := range summary.Quotes {
		row(tw, q.Number, q.Client, q.Date, q.Status, fmt.Sprint(q.Lines), services.FormatAmount(q.Totals.TotalAmount, q.Currency))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	tw = newTable(w)
	row(tw, "STATUS", "COUNT", "VALUE")
	for _, s := range summary.ByStatus {
		row(tw, s.Status, humanize.Comma(int64(s.Count)), amount(s.Value))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\n%s quotes, total value %s, tax %s, average %s\n",
		humanize.Comma(int64(summary.Count)),
		amount(summary.TotalValue),
		amount(summary.TotalTax),
		amount(summary.AverageValue),
	)
	fmt.Fprintf(w, "header discounts %s (%s non-numeric skipped)\n",
		amount(summary.HeaderDiscounts),
		humanize.Comma(int64(summary.DiscountsSkipped)),
	)
	return nil
}

func registerMarkdown(title string, summary services.DashboardSummary, currency string) string {
	amount := func(v float64) string { return services.FormatAmount(v, currency) }
	cell := func(s string) string { return strings.ReplaceAll(s, "|", `\|`) }

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)
	b.WriteString("| Quote | Client | Status | Total |\n|---|---|---|---:|\n")
	for _, q := range summary.Quotes {
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", cell(q.Number), cell(q.Client), q.Status, services.FormatAmount(q.Totals.TotalAmount, q.Currency))
	}
	b.WriteString("\n## By status\n\n| Status | Count | Value |\n|---|---:|---:|\n")
	for _, s := range summary.ByStatus {
		fmt.Fprintf(&b, "| %s | %d | %s |\n", s.Status, s.Count, amount(s.Value))
	}
	fmt.Fprintf(&b, "\n**%d quotes**, total value %s, average %s.\n", summary.Count, amount(summary.TotalValue), amount(summary.AverageValue))
	return b.String()
}
