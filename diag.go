// diag.go: the global error hook and diagnostic taxonomy
//
// Wraps github.com/agilira/go-errors to give every failure a stable Code
// plus structured Context. The taxonomy is small and entirely
// fatal-by-policy: a Code, a Message, an optional Cause, and a hook
// configured per Logger (LoggerConfig.ErrorHook).
//
// Copyright (c) 2025 AGILira
// Series: an AGILira fragment
// SPDX-License-Identifier: MPL-2.0

package nanolog

import (
	"fmt"
	"os"

	goerrors "github.com/agilira/go-errors"

	"github.com/agilira/nanolog/internal/clock"
)

// Diagnostic codes for every fatal condition this package can raise. All
// are routed through the configurable ErrorHook, and all are fatal by
// policy: these conditions indicate configuration errors or bugs, not
// transient faults.
const (
	ErrCodeLoggerFull         goerrors.ErrorCode = "NANOLOG_LOGGER_FULL"
	ErrCodeEntryTooLarge      goerrors.ErrorCode = "NANOLOG_ENTRY_TOO_LARGE"
	ErrCodeUnregisteredLogger goerrors.ErrorCode = "NANOLOG_UNREGISTERED_LOGGER"
	ErrCodeRegistryFull       goerrors.ErrorCode = "NANOLOG_REGISTRY_FULL"
	ErrCodeSemaphoreUnderflow goerrors.ErrorCode = "NANOLOG_SEMAPHORE_UNDERFLOW"
)

// ErrorHook is the host-supplied invariant-violation handler. It is
// invoked with a diagnostic error. It is expected to terminate the
// process; if it returns, the triggering operation becomes a no-op and the
// event (or registration, or take) is dropped.
type ErrorHook func(err *goerrors.Error)

// defaultErrorHook prints the diagnostic to stderr and exits the process.
func defaultErrorHook(err *goerrors.Error) {
	fmt.Fprintf(os.Stderr, "[nanolog] %s: %s\n", err.Code, err.Message)
	os.Exit(2)
}

// newDiagnostic builds the *goerrors.Error for a taxonomy entry with the
// context a postmortem would want.
func newDiagnostic(code goerrors.ErrorCode, message string) *goerrors.Error {
	return goerrors.New(code, message).
		WithSeverity("fatal").
		WithContext("component", "nanolog").
		WithContext("at", clock.String())
}
