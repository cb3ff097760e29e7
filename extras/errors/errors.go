package errors

import (
	"fmt"

	"github.com/go-errors/errors"
)

// Base creates an error without a useful stack trace. Use it for package-level sentinels that
// callers compare against with Is.
func Base(format string, a ...interface{}) error {
	return errors.Errorf(format, a...)
}

// Err intelligently creates/handles errors, while preserving the stack trace.
// It works with errors from github.com/pkg/errors too.
func Err(err interface{}, fmtParams ...interface{}) error {
	if err == nil {
		return nil
	}

	type causer interface {
		Cause() error
	}

	if _, ok := err.(causer); ok {
		err = fmt.Errorf("%+v", err)
	} else if errString, ok := err.(string); ok && len(fmtParams) > 0 {
		err = fmt.Errorf(errString, fmtParams...)
	}

	return errors.Wrap(err, 1)
}

// Wrap adds a stack trace to err, skipping the given number of frames.
func Wrap(err interface{}, skip int) *errors.Error {
	if err == nil {
		return nil
	}
	return errors.Wrap(err, skip+1)
}

// Is compares two wrapped errors to determine if the underlying errors are the same
func Is(e error, original error) bool {
	return errors.Is(e, original)
}

// Prefix prefixes the message of the error with the given string
func Prefix(prefix string, err interface{}) error {
	if err == nil {
		return nil
	}
	return errors.WrapPrefix(Err(err), prefix, 0)
}

// HasTrace reports whether err carries a stack trace.
func HasTrace(err error) bool {
	_, ok := err.(*errors.Error)
	return ok
}

// Trace returns the stack trace
func Trace(err error) string {
	if err == nil {
		return ""
	}
	return string(errors.Wrap(Err(err), 0).Stack())
}

// FullTrace returns the error type, message, and stack trace
func FullTrace(err error) string {
	if err == nil {
		return ""
	}
	return errors.Wrap(Err(err), 0).ErrorStack()
}
