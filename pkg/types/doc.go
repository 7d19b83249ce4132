// Package types defines the shared interfaces and data structures used
// across shortstage: the FS abstraction, staging operations, and the
// result types returned by commands.
package types
