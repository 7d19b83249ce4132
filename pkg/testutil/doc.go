// Package testutil provides test helpers, notably an in-memory
// implementation of types.FS with error injection.
package testutil
