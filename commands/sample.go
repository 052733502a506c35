package commands

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"quotecalc/services"
)

func newSampleCmd(env *Env) *cobra.Command {
	var (
		dir   string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Write demo quote documents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if dir == "" {
				dir = env.Config.QuoteDir
			}

			written := 0
			for _, q := range services.SampleQuotes() {
				path := filepath.Join(dir, documentName(q)+".json")
				if !force {
					if _, err := os.Stat(path); err == nil {
						setNotice(cmd.ErrOrStderr(), noticeWarning, path+" exists, use --force to overwrite")
						continue
					} else if !errors.Is(err, fs.ErrNotExist) {
						return fmt.Errorf("stat %s: %w", path, err)
					}
				}

				var buf bytes.Buffer
				if err := services.WriteQuote(&buf, q); err != nil {
					return err
				}
				if err := writeOutput(env, "sample", path, buf.Bytes()); err != nil {
					return err
				}
				written++
			}
			setNotice(cmd.OutOrStdout(), noticeSuccess, fmt.Sprintf("%d sample quotes written to %s", written, dir))
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "output", "o", "", "directory to write to (default from config)")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing files")
	return cmd
}
