package types

import "errors"

// Domain errors for type validation
var (
	ErrInvalidChunkRange  = errors.New("chunk range must satisfy 0 <= start <= end")
	ErrInvalidContainer   = errors.New("invalid JSON container")
	ErrInvalidItemRange   = errors.New("item range start must not exceed end")
	ErrInvalidSymbolRange = errors.New("symbol line range must satisfy 1 <= start <= end")
	ErrEmptySymbolName    = errors.New("symbol name cannot be empty")
)
