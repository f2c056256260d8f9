package main

import (
	"errors"
	"flag"
)

var (
	ErrInvalidDimensions = errors.New("invalid image dimensions")
	ErrDecode            = errors.New("cannot decode image")
	ErrUnsupportedFormat = errors.New("unsupported image format")
	ErrUsage             = errors.New("usage error")
	ErrImageExists       = errors.New("image already exists")
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

type exitCoder interface {
	ExitCode() int
}

type exitError struct {
	code int
	err  error
}

func (e exitError) Error() string {
	if e.err == nil {
		return ""
	}
	return e.err.Error()
}

func (e exitError) Unwrap() error {
	return e.err
}

func (e exitError) ExitCode() int {
	if e.code == 0 {
		return exitFailure
	}
	return e.code
}

func withExitCode(err error, code int) error {
	if err == nil {
		return nil
	}
	return exitError{code: code, err: err}
}

// exitCodeForError maps startup errors to process exit codes. Usage and
// dimension errors are reported as usage failures unless already coded.
// Asking for help is not a failure.
func exitCodeForError(err error) int {
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	var coded exitCoder
	if errors.As(err, &coded) {
		return coded.ExitCode()
	}
	if errors.Is(err, ErrUsage) || errors.Is(err, ErrInvalidDimensions) {
		return exitUsage
	}
	return exitFailure
}
