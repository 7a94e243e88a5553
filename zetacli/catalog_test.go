package zetacli

import (
	"errors"
	"strings"
	"testing"

	"github.com/zetaops/zetagate/command"
)

func TestBuild_KnownOperations(t *testing.T) {
	tests := []struct {
		name          string
		operation     string
		args          map[string]string
		wantKey       string
		wantCacheable bool
	}{
		{
			"list chains",
			"list_chains", nil,
			"chains list", true,
		},
		{
			"show chain",
			"show_chain", map[string]string{"chain": "ethereum"},
			"chains show ethereum", true,
		},
		{
			"get balance defaults chain",
			"get_balance", map[string]string{"address": "zeta1abc"},
			"balances zeta1abc --chain zetachain", true,
		},
		{
			"get fees",
			"get_fees", map[string]string{"chain": "bsc"},
			"fees bsc", true,
		},
		{
			"cctx status",
			"cctx_status", map[string]string{"tx_hash": "0xabc"},
			"query cctx 0xabc", true,
		},
		{
			"cctx history with limit",
			"cctx_history", map[string]string{"address": "zeta1abc", "limit": "10"},
			"query cctx list zeta1abc --limit 10", true,
		},
		{
			"list validators",
			"list_validators", nil,
			"validators list", true,
		},
		{
			"list accounts",
			"list_accounts", nil,
			"accounts list", true,
		},
		{
			"create account",
			"create_account", map[string]string{"name": "bob"},
			"accounts create bob", false,
		},
		{
			"send transfer",
			"send_transfer", map[string]string{
				"from": "bob", "to_chain": "ethereum", "amount": "1.5", "recipient": "0xdef",
			},
			"tx send --from bob --to-chain ethereum --amount 1.5 --recipient 0xdef", false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := Build(tt.operation, tt.args)
			if err != nil {
				t.Fatalf("Build failed: %v", err)
			}
			if spec.Key() != tt.wantKey {
				t.Errorf("Key() = %q, want %q", spec.Key(), tt.wantKey)
			}
			if spec.Cacheable != tt.wantCacheable {
				t.Errorf("Cacheable = %v, want %v", spec.Cacheable, tt.wantCacheable)
			}
			if spec.Operation != tt.operation {
				t.Errorf("Operation = %q, want %q", spec.Operation, tt.operation)
			}
		})
	}
}

func TestBuild_UnknownOperation(t *testing.T) {
	_, err := Build("mint_money", nil)
	if !errors.Is(err, ErrUnknownOperation) {
		t.Errorf("Build = %v, want ErrUnknownOperation", err)
	}
}

func TestBuild_MissingArguments(t *testing.T) {
	tests := []struct {
		operation string
		args      map[string]string
	}{
		{"create_account", nil},
		{"import_account", map[string]string{"name": "bob"}},
		{"show_chain", nil},
		{"get_balance", nil},
		{"cctx_status", nil},
		{"send_transfer", map[string]string{"from": "bob"}},
	}

	for _, tt := range tests {
		t.Run(tt.operation, func(t *testing.T) {
			if _, err := Build(tt.operation, tt.args); !errors.Is(err, ErrMissingArgument) {
				t.Errorf("Build(%s) = %v, want ErrMissingArgument", tt.operation, err)
			}
		})
	}
}

func TestImportAccount_RedactsKeyInString(t *testing.T) {
	spec, err := ImportAccount("bob", "0xdeadbeef")
	if err != nil {
		t.Fatalf("ImportAccount failed: %v", err)
	}
	if strings.Contains(spec.String(), "0xdeadbeef") {
		t.Errorf("String() leaked private key: %q", spec.String())
	}
	if !strings.Contains(spec.Key(), "0xdeadbeef") {
		t.Error("Key() must carry the raw command text")
	}
}

func TestMutatingOperationsNeverCacheable(t *testing.T) {
	mutating := []string{"create_account", "import_account", "send_transfer"}
	args := map[string]string{
		"name": "bob", "private_key": "k",
		"from": "bob", "to_chain": "eth", "amount": "1", "recipient": "r",
	}

	for _, op := range mutating {
		spec, err := Build(op, args)
		if err != nil {
			t.Fatalf("Build(%s) failed: %v", op, err)
		}
		if spec.Cacheable {
			t.Errorf("%s classified cacheable; mutations must never be", op)
		}
		if spec.TTL != 0 {
			t.Errorf("%s has TTL %v; mutations take none", op, spec.TTL)
		}
	}
}

func TestOperations_SortedAndComplete(t *testing.T) {
	ops := Operations()
	if len(ops) != len(catalog) {
		t.Fatalf("Operations() length = %d, want %d", len(ops), len(catalog))
	}
	for i := 1; i < len(ops); i++ {
		if ops[i-1] >= ops[i] {
			t.Fatalf("Operations() not sorted: %q before %q", ops[i-1], ops[i])
		}
	}
}

func TestDeterministicKeys(t *testing.T) {
	a, _ := Build("get_balance", map[string]string{"address": "zeta1abc", "chain": "bsc"})
	b, _ := Build("get_balance", map[string]string{"chain": "bsc", "address": "zeta1abc"})
	if a.Key() != b.Key() {
		t.Errorf("identical logical requests derived different keys: %q vs %q", a.Key(), b.Key())
	}
	var _ command.Spec = a
}
