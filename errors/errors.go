// Package errors defines all exported error sentinels for the mixprobe library.
//
// This is the single source of truth for error values. The top-level mixprobe
// package, the internal config loader and the commands all import from here,
// so errors.Is checks work across package boundaries.
package errors

import "errors"

// Configuration errors
var (
	ErrInvalidTableSize  = errors.New("mixprobe: table size must be positive")
	ErrTableSizeTooLarge = errors.New("mixprobe: table size exceeds maximum (2^32-1)")
	ErrInvalidTrialCount = errors.New("mixprobe: trial count must be positive")
	ErrInvalidKeyRange   = errors.New("mixprobe: key range minimum exceeds maximum")
	ErrKeyRangeTooSmall  = errors.New("mixprobe: key range holds fewer distinct keys than the table size")
	ErrUnknownReduction  = errors.New("mixprobe: unknown reduction mode")
	ErrUnknownFormat     = errors.New("mixprobe: unknown report format")
)

// Trial errors
var (
	ErrKeySourceExhausted = errors.New("mixprobe: key source exhausted")
)
