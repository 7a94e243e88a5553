package command

import "errors"

// MaxKeyLength is the maximum allowed length for a derived cache key.
const MaxKeyLength = 512

// Sentinel errors for command construction and key derivation.
var (
	ErrEmptyCommand = errors.New("command: command has no arguments")
	ErrInvalidKey   = errors.New("command: key is invalid")
	ErrKeyTooLong   = errors.New("command: key exceeds max length")
)
