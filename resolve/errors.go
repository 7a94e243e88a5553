package resolve

import "errors"

// ErrCLINotFound indicates the external CLI is installed neither in the
// project-local location nor on PATH. Terminal and user-actionable:
// install the program. Never auto-retried internally.
var ErrCLINotFound = errors.New("resolve: zetachain cli not found (install it locally or globally)")
