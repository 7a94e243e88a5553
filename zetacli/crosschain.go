package zetacli

import "github.com/zetaops/zetagate/command"

// CCTXStatus builds the command fetching the status of a cross-chain
// transaction by hash.
func CCTXStatus(txHash string) (command.Spec, error) {
	if txHash == "" {
		return command.Spec{}, missingArg("tx_hash")
	}
	return command.New("cctx_status", "query", "cctx", txHash).WithTTL(TTLStatus), nil
}

// CCTXHistory builds the command listing cross-chain transactions for an
// address. Limit is optional; zero means the CLI default.
func CCTXHistory(address string, limit string) (command.Spec, error) {
	if address == "" {
		return command.Spec{}, missingArg("address")
	}
	args := []string{"query", "cctx", "list", address}
	if limit != "" {
		args = append(args, "--limit", limit)
	}
	return command.New("cctx_history", args...).WithTTL(TTLStatus), nil
}

// SendTransfer builds the command submitting a cross-chain transfer.
// Mutating: never cacheable.
func SendTransfer(from, toChain, amount, recipient string) (command.Spec, error) {
	switch {
	case from == "":
		return command.Spec{}, missingArg("from")
	case toChain == "":
		return command.Spec{}, missingArg("to_chain")
	case amount == "":
		return command.Spec{}, missingArg("amount")
	case recipient == "":
		return command.Spec{}, missingArg("recipient")
	}
	return command.New("send_transfer",
		"tx", "send", "--from", from, "--to-chain", toChain,
		"--amount", amount, "--recipient", recipient), nil
}
