package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"quotecalc/services"
)

func newNumberCmd(env *Env) *cobra.Command {
	var (
		ref    string
		dir    string
		prefix string
	)

	cmd := &cobra.Command{
		Use:   "number",
		Short: "Print the next quote number for the current fiscal year",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if dir == "" {
				dir = env.Config.QuoteDir
			}
			if prefix == "" {
				prefix = env.Config.QuotePrefix
			}

			existing, err := existingNumbers(env, dir)
			if err != nil {
				return err
			}
			next := services.NextQuoteNumber(prefix, ref, env.now(), existing)
			env.Logger.Debug().Str("dir", dir).Int("existing", len(existing)).Str("next", next).Msg("number: generated")
			fmt.Fprintln(cmd.OutOrStdout(), next)
			return nil
		},
	}

	cmd.Flags().StringVar(&ref, "ref", "", "client or project reference in the number")
	cmd.Flags().StringVar(&dir, "dir", "", "directory of issued quotes (default from config)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "number prefix (default from config)")
	return cmd
}

// existingNumbers collects the numbers of the quotes saved in dir. Files that
// do not decode are skipped.
func existingNumbers(env *Env, dir string) ([]string, error) {
	files, err := quoteFiles(dir)
	if err != nil {
		return nil, err
	}
	var numbers []string
	for _, path := range files {
		doc, err := loadDocument(env, path)
		if err != nil {
			env.Logger.Debug().Err(err).Str("file", path).Msg("number: skipped file")
			continue
		}
		if doc.Quote.Number != "" {
			numbers = append(numbers, doc.Quote.Number)
		}
	}
	return numbers, nil
}
