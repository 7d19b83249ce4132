package types

// StageResult is returned by the stage command after a run.
type StageResult struct {
	// Root is the absolute path of the staged project root
	Root string

	// SourceDir is the absolute path of the flat source directory
	SourceDir string

	// DryRun reports whether the run only simulated operations
	DryRun bool

	// Operations holds one result per planned operation, in execution order.
	// On failure the slice ends with the failing operation.
	Operations []OperationResult

	// EntryPoint is the staged path that carries the executable bit
	EntryPoint string

	// NextCommand is the suggested command to run after staging
	NextCommand string
}

// EntryState describes the condition of a staged destination file.
type EntryState string

const (
	// StateStaged means the destination exists and matches its source
	StateStaged EntryState = "staged"
	// StateModified means the destination exists but differs from its source
	StateModified EntryState = "modified"
	// StateMissing means the destination does not exist
	StateMissing EntryState = "missing"
)

// EntryStatus is the status of a single manifest destination.
type EntryStatus struct {
	Dest  string
	State EntryState
}

// StatusResult is returned by the status command.
type StatusResult struct {
	Root    string
	Entries []EntryStatus
}
