package commands

import (
	"errors"
	"fmt"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/cobra"
)

// ErrInvalidDocument is returned when a document fails save validation.
var ErrInvalidDocument = errors.New("document cannot be saved")

func newValidateCmd(env *Env) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>",
		Short: "Check that a document can be saved",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := loadDocument(env, args[0])
			if err != nil {
				return err
			}
			stderr := cmd.ErrOrStderr()
			if doc.Import != nil {
				for _, w := range doc.Import.Warnings {
					setNotice(stderr, noticeWarning, fmt.Sprintf("row %d, %s: %s", w.Row, w.Field, w.Message))
				}
			}

			if err := doc.Quote.Validate(); err != nil {
				var fieldErrs validation.Errors
				if errors.As(err, &fieldErrs) {
					for _, line := range flattenErrors("", fieldErrs) {
						setNotice(stderr, noticeError, line)
					}
				}
				return fmt.Errorf("%s: %w", doc.Path, ErrInvalidDocument)
			}

			named := len(doc.Quote.NamedItems())
			setNotice(cmd.OutOrStdout(), noticeSuccess, fmt.Sprintf("%s is valid (%d of %d lines totalled)", doc.Path, named, len(doc.Quote.Items)))
			return nil
		},
	}
}

// flattenErrors turns nested ozzo errors into "client.gstin: message" lines,
// sorted by field.
func flattenErrors(prefix string, errs validation.Errors) []string {
	var lines []string
	for field, err := range errs {
		key := field
		if prefix != "" {
			key = prefix + "." + field
		}
		var nested validation.Errors
		if errors.As(err, &nested) {
			lines = append(lines, flattenErrors(key, nested)...)
			continue
		}
		lines = append(lines, key+": "+err.Error())
	}
	sort.Strings(lines)
	return lines
}
