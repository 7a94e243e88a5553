package zetacli

import "time"

// Call-site TTLs. Chain topology changes rarely; balances and transaction
// statuses go stale quickly.
const (
	TTLChains     = 5 * time.Minute
	TTLValidators = 2 * time.Minute
	TTLFees       = 30 * time.Second
	TTLAccounts   = 30 * time.Second
	TTLBalances   = 15 * time.Second
	TTLStatus     = 15 * time.Second
)
