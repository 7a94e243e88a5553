package zetacli

import (
	"fmt"
	"sort"

	"github.com/zetaops/zetagate/command"
)

// Builder turns a protocol-level argument map into a command spec.
type Builder func(args map[string]string) (command.Spec, error)

// catalog maps operation names, as a protocol handler sees them, to
// builders. The vocabulary is closed: unknown names are rejected rather
// than passed through to the CLI.
var catalog = map[string]Builder{
	"create_account": func(a map[string]string) (command.Spec, error) {
		return CreateAccount(a["name"])
	},
	"import_account": func(a map[string]string) (command.Spec, error) {
		return ImportAccount(a["name"], a["private_key"])
	},
	"list_accounts": func(map[string]string) (command.Spec, error) {
		return ListAccounts()
	},
	"show_account": func(a map[string]string) (command.Spec, error) {
		return ShowAccount(a["name"])
	},
	"get_balance": func(a map[string]string) (command.Spec, error) {
		return GetBalance(a["address"], a["chain"])
	},
	"list_chains": func(map[string]string) (command.Spec, error) {
		return ListChains()
	},
	"show_chain": func(a map[string]string) (command.Spec, error) {
		return ShowChain(a["chain"])
	},
	"get_fees": func(a map[string]string) (command.Spec, error) {
		return GetFees(a["chain"])
	},
	"list_validators": func(map[string]string) (command.Spec, error) {
		return ListValidators()
	},
	"cctx_status": func(a map[string]string) (command.Spec, error) {
		return CCTXStatus(a["tx_hash"])
	},
	"cctx_history": func(a map[string]string) (command.Spec, error) {
		return CCTXHistory(a["address"], a["limit"])
	},
	"send_transfer": func(a map[string]string) (command.Spec, error) {
		return SendTransfer(a["from"], a["to_chain"], a["amount"], a["recipient"])
	},
}

// Build resolves an operation name and builds its command spec.
func Build(operation string, args map[string]string) (command.Spec, error) {
	builder, ok := catalog[operation]
	if !ok {
		return command.Spec{}, fmt.Errorf("%w: %q", ErrUnknownOperation, operation)
	}
	return builder(args)
}

// Operations returns the sorted names of all known operations.
func Operations() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
