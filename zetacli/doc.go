// Package zetacli builds the CLI command specs for the operations the
// gateway exposes: account management, balances, chain topology, fee
// estimation, cross-chain transactions, and validators.
//
// Builders produce deterministic argument ordering so identical logical
// requests derive identical cache keys, and pick the call-site TTL for
// cacheable operations: long for slow-changing data like chain topology,
// short for balances and statuses, none for mutations.
package zetacli
