// Package config loads gateway configuration from a YAML file with
// ZETAGATE_* environment overrides, hydrating defaults for anything
// unset.
package config
