package zetacli

import "github.com/zetaops/zetagate/command"

// ListChains builds the command listing supported chains.
func ListChains() (command.Spec, error) {
	return command.New("list_chains", "chains", "list").WithTTL(TTLChains), nil
}

// ShowChain builds the command describing one chain.
func ShowChain(chain string) (command.Spec, error) {
	if chain == "" {
		return command.Spec{}, missingArg("chain")
	}
	return command.New("show_chain", "chains", "show", chain).WithTTL(TTLChains), nil
}

// GetFees builds the command estimating cross-chain fees toward a chain.
func GetFees(chain string) (command.Spec, error) {
	if chain == "" {
		return command.Spec{}, missingArg("chain")
	}
	return command.New("get_fees", "fees", chain).WithTTL(TTLFees), nil
}

// ListValidators builds the command listing active validators.
func ListValidators() (command.Spec, error) {
	return command.New("list_validators", "validators", "list").WithTTL(TTLValidators), nil
}
