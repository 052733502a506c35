package commands

import (
	"github.com/spf13/cobra"

	"quotecalc/services"
)

func newTemplateCmd(env *Env) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "template",
		Short: "Write the line-item import template",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			content, err := services.GenerateLineItemTemplate()
			if err != nil {
				env.Logger.Error().Err(err).Msg("template: generation failed")
				return errorNotice(cmd.ErrOrStderr(), err, "Failed to generate template")
			}
			if err := writeOutput(env, "template", output, content); err != nil {
				return err
			}
			setNotice(cmd.OutOrStdout(), noticeSuccess, "template written to "+output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "line_items_template.xlsx", "output file")
	return cmd
}
