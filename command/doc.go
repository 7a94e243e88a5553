// Package command defines the vocabulary shared by the execution gateway:
// the command specification handed to the invoker, the captured result,
// cache-key derivation, the cacheability policy, and redaction of secret
// arguments.
package command
