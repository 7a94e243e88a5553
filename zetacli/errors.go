package zetacli

import (
	"errors"
	"fmt"
)

// Sentinel errors for operation building.
var (
	ErrUnknownOperation = errors.New("zetacli: unknown operation")
	ErrMissingArgument  = errors.New("zetacli: missing required argument")
)

func missingArg(name string) error {
	return fmt.Errorf("%w: %s", ErrMissingArgument, name)
}
