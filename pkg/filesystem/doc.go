// Package filesystem provides filesystem implementations for shortstage.
//
// This package contains implementations of the types.FS interface,
// currently the standard OS filesystem. Test filesystems live in
// pkg/testutil.
package filesystem
