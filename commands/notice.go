package commands

import (
	"errors"
	"fmt"
	"io"
)

// Notice kinds.
const (
	noticeSuccess = "success"
	noticeWarning = "warning"
	noticeError   = "error"
)

// setNotice prints a one-line message for the user. Notices go to stderr so
// that stdout carries only the command's result.
func setNotice(w io.Writer, kind, message string) {
	fmt.Fprintf(w, "%s: %s\n", kind, message)
}

// errorNotice prints an error notice and returns an error with the same
// message, so the command exits non-zero.
func errorNotice(w io.Writer, err error, message string) error {
	setNotice(w, noticeError, message)
	if err == nil {
		return errors.New(message)
	}
	return fmt.Errorf("%s: %w", message, err)
}
