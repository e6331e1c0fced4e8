package main

import (
	"strings"
)

// usageError is a command line mistake, reported with a hint to --help
type usageError struct {
	msg string
}

func (e *usageError) Error() string {
	return e.msg
}

// reportedError wraps action failures the printer has already shown
type reportedError struct {
	err error
}

func (e *reportedError) Error() string {
	return e.err.Error()
}

func (e *reportedError) Unwrap() error {
	return e.err
}

// unrecognized rewrites a flag parsing error in the classic getopt form
func unrecognized(err error) string {
	msg := err.Error()
	switch {
	case strings.HasPrefix(msg, "unknown flag: "):
		return "unrecognized option `" + strings.TrimPrefix(msg, "unknown flag: ") + "'"
	case strings.HasPrefix(msg, "unknown shorthand flag: "):
		// unknown shorthand flag: 'x' in -x
		if i := strings.LastIndex(msg, " in "); i >= 0 {
			return "unrecognized option `" + msg[i+len(" in "):] + "'"
		}
	}
	return msg
}
