package zetacli

import "github.com/zetaops/zetagate/command"

// CreateAccount builds the command creating a named account. Mutating:
// never cacheable.
func CreateAccount(name string) (command.Spec, error) {
	if name == "" {
		return command.Spec{}, missingArg("name")
	}
	return command.New("create_account", "accounts", "create", name), nil
}

// ImportAccount builds the command importing an account from a private
// key. The key is passed through to the CLI and masked in log output.
func ImportAccount(name, privateKey string) (command.Spec, error) {
	if name == "" {
		return command.Spec{}, missingArg("name")
	}
	if privateKey == "" {
		return command.Spec{}, missingArg("private_key")
	}
	return command.New("import_account", "accounts", "import", name, "--private-key", privateKey), nil
}

// ListAccounts builds the command listing all known accounts.
func ListAccounts() (command.Spec, error) {
	return command.New("list_accounts", "accounts", "list").WithTTL(TTLAccounts), nil
}

// ShowAccount builds the command describing one account.
func ShowAccount(name string) (command.Spec, error) {
	if name == "" {
		return command.Spec{}, missingArg("name")
	}
	return command.New("show_account", "accounts", "show", name).WithTTL(TTLAccounts), nil
}

// GetBalance builds the command fetching an address balance on a chain.
// Chain defaults to zetachain.
func GetBalance(address, chain string) (command.Spec, error) {
	if address == "" {
		return command.Spec{}, missingArg("address")
	}
	if chain == "" {
		chain = "zetachain"
	}
	return command.New("get_balance", "balances", address, "--chain", chain).WithTTL(TTLBalances), nil
}
