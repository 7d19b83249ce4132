package types

// OperationType defines the type of file system operation
type OperationType string

const (
	// OperationCreateDir creates a directory
	OperationCreateDir OperationType = "create_dir"

	// OperationCopyFile copies a file byte-for-byte
	OperationCopyFile OperationType = "copy_file"

	// OperationWriteFile writes content to a file, overwriting any existing file
	OperationWriteFile OperationType = "write_file"

	// OperationChmod sets permission bits on an existing file
	OperationChmod OperationType = "chmod"
)

// Operation represents a single file system operation in the staging plan.
// Operations are executed strictly in plan order.
type Operation struct {
	// Type is the type of operation
	Type OperationType

	// Source is the source path (for copies)
	Source string

	// Target is the target path
	Target string

	// Content is the content to write (for write operations)
	Content string

	// Mode is the file permissions (optional)
	Mode *uint32

	// Description is a human-readable description
	Description string
}

// OperationResult captures the outcome of a single executed operation.
type OperationResult struct {
	Operation Operation
	Success   bool
	Message   string
	Error     error
}
