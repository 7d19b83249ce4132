package staging

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/evanmartell/shortstage/pkg/errors"
	"github.com/evanmartell/shortstage/pkg/logging"
	"github.com/evanmartell/shortstage/pkg/types"
)

// Executor runs a staging plan. Operations execute strictly in order; the
// first failure stops the run and no later operation is attempted.
type Executor struct {
	fileSystem types.FS
	dryRun     bool
}

// NewExecutor creates a new staging executor.
func NewExecutor(filesystem types.FS, dryRun bool) *Executor {
	return &Executor{
		fileSystem: filesystem,
		dryRun:     dryRun,
	}
}

// Execute runs the operations sequentially, returning a result per executed
// operation. On failure the returned slice ends with the failing operation
// and the error is returned alongside it.
func (e *Executor) Execute(ops []types.Operation) ([]types.OperationResult, error) {
	logger := logging.GetLogger("staging.executor").With().
		Int("operation_count", len(ops)).
		Bool("dry_run", e.dryRun).
		Logger()

	var results []types.OperationResult

	for _, op := range ops {
		logger.Debug().
			Str("type", string(op.Type)).
			Str("target", op.Target).
			Msg("Executing operation")

		result := e.executeOne(op)
		results = append(results, result)

		if result.Error != nil {
			logger.Error().Err(result.Error).Str("target", op.Target).Msg("Operation failed")
			return results, result.Error
		}
	}

	return results, nil
}

// executeOne executes a single operation against the filesystem.
func (e *Executor) executeOne(op types.Operation) types.OperationResult {
	if e.dryRun {
		return types.OperationResult{
			Operation: op,
			Success:   true,
			Message:   fmt.Sprintf("Would %s", lowerFirst(op.Description)),
		}
	}

	switch op.Type {
	case types.OperationCreateDir:
		if err := e.fileSystem.MkdirAll(op.Target, opMode(op, 0755)); err != nil {
			return failure(op, classify(err, errors.ErrDirCreate, "failed to create directory %s", op.Target))
		}
		return success(op, fmt.Sprintf("Created directory %s", op.Target))

	case types.OperationCopyFile:
		if _, err := e.fileSystem.Stat(op.Source); err != nil {
			if os.IsNotExist(err) {
				return failure(op, errors.Newf(errors.ErrMissingSource, "source file not found: %s", op.Source).
					WithDetail("path", op.Source))
			}
			return failure(op, classify(err, errors.ErrFileCopy, "failed to stat source %s", op.Source))
		}
		data, err := e.fileSystem.ReadFile(op.Source)
		if err != nil {
			return failure(op, classify(err, errors.ErrFileCopy, "failed to read source %s", op.Source))
		}
		if err := e.fileSystem.WriteFile(op.Target, data, opMode(op, 0644)); err != nil {
			return failure(op, classify(err, errors.ErrFileCopy, "failed to write %s", op.Target))
		}
		return success(op, fmt.Sprintf("Copied %s", op.Target))

	case types.OperationWriteFile:
		if err := e.fileSystem.WriteFile(op.Target, []byte(op.Content), opMode(op, 0644)); err != nil {
			return failure(op, classify(err, errors.ErrFileWrite, "failed to write %s", op.Target))
		}
		return success(op, fmt.Sprintf("Wrote %s", op.Target))

	case types.OperationChmod:
		if err := e.fileSystem.Chmod(op.Target, opMode(op, 0755)); err != nil {
			return failure(op, classify(err, errors.ErrChmod, "failed to change mode of %s", op.Target))
		}
		return success(op, fmt.Sprintf("Marked %s executable", op.Target))

	default:
		return failure(op, errors.Newf(errors.ErrInternal, "unknown operation type %s", op.Type))
	}
}

// classify wraps a filesystem error, promoting permission failures to the
// PERMISSION code so callers can report them per the error taxonomy.
func classify(err error, code errors.ErrorCode, format string, args ...interface{}) error {
	if os.IsPermission(err) {
		code = errors.ErrPermission
	}
	return errors.Wrapf(err, code, format, args...)
}

func opMode(op types.Operation, fallback fs.FileMode) fs.FileMode {
	if op.Mode != nil {
		return fs.FileMode(*op.Mode)
	}
	return fallback
}

func success(op types.Operation, msg string) types.OperationResult {
	return types.OperationResult{Operation: op, Success: true, Message: msg}
}

func failure(op types.Operation, err error) types.OperationResult {
	return types.OperationResult{Operation: op, Success: false, Error: err}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'A' && s[0] <= 'Z' {
		return string(s[0]+('a'-'A')) + s[1:]
	}
	return s
}
