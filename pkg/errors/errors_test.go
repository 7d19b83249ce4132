package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	err := New(ErrMissingSource, "source file not found")
	assert.Equal(t, ErrMissingSource, err.Code)
	assert.Equal(t, "[MISSING_SOURCE_FILE] source file not found", err.Error())
}

func TestNewf(t *testing.T) {
	err := Newf(ErrDirCreate, "failed to create %s", "agents")
	assert.Contains(t, err.Error(), "failed to create agents")
	assert.Contains(t, err.Error(), "DIR_CREATE")
}

func TestWrap(t *testing.T) {
	inner := fmt.Errorf("disk full")
	err := Wrap(inner, ErrFileWrite, "failed to write requirements.txt")

	assert.Equal(t, ErrFileWrite, err.Code)
	assert.Contains(t, err.Error(), "disk full")
	assert.Equal(t, inner, errors.Unwrap(err))
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrFileWrite, "ignored"))
	assert.Nil(t, Wrapf(nil, ErrFileWrite, "ignored %s", "too"))
}

func TestIs(t *testing.T) {
	err := Newf(ErrMissingSource, "source file not found: %s", "main.py")
	assert.True(t, errors.Is(err, New(ErrMissingSource, "")))
	assert.False(t, errors.Is(err, New(ErrPermission, "")))
}

func TestIsErrorCode(t *testing.T) {
	err := Wrap(fmt.Errorf("denied"), ErrPermission, "failed to chmod main.py")
	assert.True(t, IsErrorCode(err, ErrPermission))
	assert.False(t, IsErrorCode(err, ErrMissingSource))
	assert.False(t, IsErrorCode(fmt.Errorf("plain"), ErrPermission))
}

func TestGetErrorCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"stage error", New(ErrChmod, "chmod failed"), ErrChmod},
		{"wrapped stage error", fmt.Errorf("outer: %w", New(ErrFileCopy, "copy failed")), ErrFileCopy},
		{"plain error", fmt.Errorf("plain"), ErrUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetErrorCode(tt.err))
		})
	}
}

func TestWithDetail(t *testing.T) {
	err := New(ErrMissingSource, "source file not found").WithDetail("path", "common.py")
	details := GetErrorDetails(err)
	assert.Equal(t, "common.py", details["path"])
}
