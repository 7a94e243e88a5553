package gateway

import (
	"errors"

	"github.com/zetaops/zetagate/invoke"
	"github.com/zetaops/zetagate/resolve"
)

// Kind tags the failure classes a caller must handle explicitly.
type Kind int

const (
	// KindOK means the call succeeded.
	KindOK Kind = iota
	// KindNotFound means the CLI is unreachable; terminal until installed.
	KindNotFound
	// KindTimeout means the process exceeded its wall-clock budget.
	KindTimeout
	// KindOutputTooLarge means combined output exceeded the ceiling.
	KindOutputTooLarge
	// KindCommandError means the process ran and exited nonzero.
	KindCommandError
	// KindOther covers everything else (bad spec, canceled context).
	KindOther
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindOK:
		return "ok"
	case KindNotFound:
		return "not_found"
	case KindTimeout:
		return "timeout"
	case KindOutputTooLarge:
		return "output_too_large"
	case KindCommandError:
		return "command_error"
	default:
		return "other"
	}
}

// Classify maps an Execute error to its Kind. A nil error is KindOK.
func Classify(err error) Kind {
	switch {
	case err == nil:
		return KindOK
	case errors.Is(err, resolve.ErrCLINotFound):
		return KindNotFound
	case errors.Is(err, invoke.ErrTimeout):
		return KindTimeout
	case errors.Is(err, invoke.ErrOutputTooLarge):
		return KindOutputTooLarge
	}

	var exitErr *invoke.ExitError
	if errors.As(err, &exitErr) {
		return KindCommandError
	}
	return KindOther
}
