// Package staging plans and executes the bootstrap of the project
// skeleton. Plan produces the ordered operation list from a manifest;
// Executor runs it fail-fast, with dry-run support.
package staging
